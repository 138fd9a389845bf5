// Package checkcmd implements zerv's "check" validator (§6): it only
// consumes the grammar parsers defined in §4.2, has no VCS dependency,
// and is its own small collaborator rather than part of the core
// pipeline.
package checkcmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/zerv-cli/zerv/internal/version"
	"github.com/zerv-cli/zerv/internal/version/grammar"
	"github.com/zerv-cli/zerv/internal/zerrors"
)

// Run returns the "check" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Validate a version string, or compare two under PEP 440 or a schema's precedence order",
		UsageText: "zerv check <version> [--format semver|pep440]\n   zerv check --compare <a> <b> [--compare-schema standard|calver]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "Grammar to validate against: semver or pep440",
				Value: "semver",
			},
			&cli.StringFlag{
				Name:  "compare",
				Usage: "Compare this version against the single positional argument",
			},
			&cli.StringFlag{
				Name:  "compare-schema",
				Usage: "With --compare, order by this schema preset's precedence_order instead of PEP 440's fixed segments",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.IsSet("compare") {
				return runCompare(cmd)
			}
			return runCheck(cmd)
		},
	}
}

func runCheck(cmd *cli.Command) error {
	args := cmd.Args()
	if args.Len() < 1 {
		return &zerrors.InvalidVersionError{Msg: "missing required version argument"}
	}
	raw := args.Get(0)

	format := version.InputFormat(cmd.String("format"))
	if format != version.InputSemVer && format != version.InputPep440 {
		return &zerrors.InvalidVersionError{Msg: "--format must be semver or pep440"}
	}

	tv, err := version.ParseTag(raw, format)
	if err != nil {
		return err
	}

	normalized, err := normalize(tv, format)
	if err != nil {
		return err
	}

	if normalized != raw {
		fmt.Printf("%s normalizes to %s\n", raw, normalized)
	} else {
		fmt.Printf("%s is a valid %s version\n", raw, format)
	}
	return nil
}

// runCompare implements the SPEC_FULL.md supplemented `--compare`
// operation: prints <, ==, or > and exits 0, grounded on §4.6's note
// that precedence comparisons are anticipated as useful even though
// spec.md's `check` surface doesn't name them explicitly.
//
// By default this uses the fixed five-segment PEP 440 Cmp
// (grammar.ComparePep440). --compare-schema <preset> switches to
// version.Compare instead, walking that preset's declared
// PrecedenceOrder — the generic, schema-driven ordering §4.6 describes
// ("Precedence ... follows the schema's declared precedence_order
// list"), as distinct from PEP 440's fixed segment set and its
// pre/dev-specific sort asymmetry.
func runCompare(cmd *cli.Command) error {
	a := cmd.String("compare")
	args := cmd.Args()
	if args.Len() < 1 {
		return &zerrors.InvalidVersionError{Msg: "--compare requires a second version as the positional argument"}
	}
	b := args.Get(0)

	za, err := zervFromTag(a)
	if err != nil {
		return err
	}
	zb, err := zervFromTag(b)
	if err != nil {
		return err
	}

	var d int
	if schemaName := cmd.String("compare-schema"); schemaName != "" {
		preset, perr := version.ResolvePreset(schemaName, 3)
		if perr != nil {
			return perr
		}
		za.Schema.PrecedenceOrder = preset.PrecedenceOrder
		zb.Schema.PrecedenceOrder = preset.PrecedenceOrder
		d, err = version.Compare(za, zb)
	} else {
		d, err = grammar.ComparePep440(za, zb)
	}
	if err != nil {
		return err
	}

	switch {
	case d < 0:
		fmt.Println("<")
	case d > 0:
		fmt.Println(">")
	default:
		fmt.Println("==")
	}
	return nil
}

func zervFromTag(raw string) (*version.Zerv, error) {
	tv, err := version.ParseTag(raw, version.InputAuto)
	if err != nil {
		return nil, err
	}
	schema, err := version.ResolvePreset("standard", 1)
	if err != nil {
		return nil, err
	}
	vars := version.ZervVars{
		Major: tv.Major, Minor: tv.Minor, Patch: tv.Patch,
		Epoch: tv.Epoch, PreRelease: tv.PreRelease, Post: tv.Post,
	}
	if tv.Post != nil {
		schema.ExtraCore = append(schema.ExtraCore, version.OptionalVar("post"))
	}
	if tv.PreRelease != nil {
		schema.ExtraCore = append(schema.ExtraCore, version.OptionalVar("pre_release"))
	}
	return version.New(schema, vars)
}

func normalize(tv *version.TagVersion, format version.InputFormat) (string, error) {
	schema, err := version.ResolvePreset("standard", 1)
	if err != nil {
		return "", err
	}
	vars := version.ZervVars{
		Major: tv.Major, Minor: tv.Minor, Patch: tv.Patch,
		Epoch: tv.Epoch, PreRelease: tv.PreRelease, Post: tv.Post,
	}
	z, err := version.New(schema, vars)
	if err != nil {
		return "", err
	}
	if format == version.InputPep440 {
		return grammar.EmitPep440(z)
	}
	return grammar.EmitSemVer(z)
}
