// Package versioncmd implements zerv's "version" subcommand: the
// entire §2 pipeline wired to CLI flags (§6).
package versioncmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/zerv-cli/zerv/internal/config"
)

// Run returns the "version" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "version",
		Usage:     "Derive and print the canonical version of the current commit",
		UsageText: "zerv version [options]",
		Flags:     flagSpecs(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			out, err := run(cmd, cfg)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
}
