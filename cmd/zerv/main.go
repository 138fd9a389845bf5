// Command zerv derives a canonical version string for the current
// commit of a source repository and re-emits it in any of several
// ecosystem-specific grammars.
package main

import (
	"context"
	"os"

	"github.com/zerv-cli/zerv/internal/config"
	"github.com/zerv-cli/zerv/internal/console"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		console.PrintError(err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	cfg, err := config.LoadConfigFn()
	if err != nil {
		return err
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	app := newCLI(cfg)
	return app.Run(context.Background(), args)
}
