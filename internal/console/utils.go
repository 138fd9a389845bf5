// Package console formats the diagnostic text zerv prints to stderr.
// Nothing in this package writes to stdout — that channel is reserved
// for the emitted version string (§5).
package console

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
)

var noColor bool

// SetNoColor forces color off regardless of tty detection, mirroring
// the --no-color flag.
func SetNoColor(v bool) {
	noColor = v
}

// AutoDetectColor disables color when stderr is not a terminal (e.g.
// piped into a log aggregator), the way most CLIs default.
func AutoDetectColor() {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		noColor = true
	}
}

// PrintError writes a single "Error: " line to stderr (§6, §7).
func PrintError(err error) {
	msg := "Error: " + err.Error()
	if noColor {
		fmt.Fprintln(os.Stderr, msg)
		return
	}
	fmt.Fprintf(os.Stderr, "%s%s%s\n", colorRed, msg, colorReset)
}

// PrintWarning writes an advisory line to stderr.
func PrintWarning(msg string) {
	if noColor {
		fmt.Fprintln(os.Stderr, msg)
		return
	}
	fmt.Fprintf(os.Stderr, "%s%s%s\n", colorYellow, msg, colorReset)
}
