// Package testutils collects small test helpers shared across zerv's
// CLI command packages.
package testutils

import (
	"bytes"
	"os"
	"strings"
)

// CaptureStdout captures both stdout and stderr produced while f runs.
func CaptureStdout(f func()) (string, error) {
	origStdout, origStderr := os.Stdout, os.Stderr

	rOut, wOut, err := os.Pipe()
	if err != nil {
		return "", err
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		return "", err
	}

	os.Stdout, os.Stderr = wOut, wErr

	outputChan := make(chan string)
	go func() {
		var bufOut, bufErr bytes.Buffer
		_, _ = bufOut.ReadFrom(rOut)
		_, _ = bufErr.ReadFrom(rErr)
		outputChan <- bufOut.String() + bufErr.String()
	}()

	f()

	wOut.Close()
	wErr.Close()
	os.Stdout, os.Stderr = origStdout, origStderr

	output := <-outputChan
	return strings.TrimSpace(output), nil
}
