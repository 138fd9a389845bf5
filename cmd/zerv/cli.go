package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/zerv-cli/zerv/cmd/zerv/checkcmd"
	"github.com/zerv-cli/zerv/cmd/zerv/versioncmd"
	"github.com/zerv-cli/zerv/internal/config"
	"github.com/zerv-cli/zerv/internal/console"
	"github.com/zerv-cli/zerv/internal/zlog"
)

const zervVersion = "0.1.0"

var (
	noColorFlag bool
	verboseFlag bool
)

// newCLI builds and returns the root CLI command, configuring the
// version/check subcommands and the global flags every subcommand
// shares (§6).
func newCLI(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "zerv",
		Version: fmt.Sprintf("v%s", zervVersion),
		Usage:   "Derive a canonical version string for the current commit",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored diagnostic output",
				Destination: &noColorFlag,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "Emit debug-level diagnostics to stderr",
				Destination: &verboseFlag,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			console.SetNoColor(noColorFlag)
			console.AutoDetectColor()
			zlog.SetVerbose(verboseFlag)
			return ctx, nil
		},
		Commands: []*cli.Command{
			versioncmd.Run(cfg),
			checkcmd.Run(),
		},
	}
}
