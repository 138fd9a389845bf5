package versioncmd

import "github.com/urfave/cli/v3"

// flagSpecs returns every flag the "version" command accepts (§6). Bump
// flags that carry an optional numeric argument (--bump-major[=N]) are
// modeled as StringFlag so cmd.IsSet can distinguish "not supplied"
// from "supplied with no value", the way urfave/cli v3's BoolFlag
// can't for a flag that also wants a value.
func flagSpecs() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "source",
			Usage: "Where to read repository state from: git or stdin",
			Value: "git",
		},
		&cli.StringFlag{
			Name:    "dir",
			Aliases: []string{"C"},
			Usage:   "Working directory to probe (default: current directory)",
		},
		&cli.StringFlag{
			Name:  "schema",
			Usage: "Named schema preset (standard, calver, or a configured custom preset)",
		},
		&cli.StringFlag{
			Name:  "schema-ron",
			Usage: "Inline schema text in zerv's RON-like schema language",
		},
		&cli.StringFlag{
			Name:  "input-format",
			Usage: "Tag grammar to parse: auto, semver, pep440",
			Value: "auto",
		},
		&cli.StringFlag{
			Name:  "output-format",
			Usage: "Output grammar: semver, pep440, zerv",
		},
		&cli.BoolFlag{
			Name:  "output-prefix",
			Usage: "Prepend a prefix to the emitted version (default prefix 'v')",
		},
		&cli.StringFlag{
			Name:  "output-prefix-char",
			Usage: "Override the --output-prefix prefix string",
			Value: "v",
		},
		&cli.StringFlag{
			Name:  "output-template",
			Usage: "Render through a mustache template instead of a built-in grammar",
		},

		// Absolute overrides (§4.5 stage 1).
		&cli.Uint64Flag{Name: "major", Usage: "Override the major version"},
		&cli.Uint64Flag{Name: "minor", Usage: "Override the minor version"},
		&cli.Uint64Flag{Name: "patch", Usage: "Override the patch version"},
		&cli.Uint64Flag{Name: "epoch", Usage: "Override the epoch"},
		&cli.StringFlag{Name: "pre-release-label", Usage: "Override the pre-release label (alpha, beta, rc)"},
		&cli.Uint64Flag{Name: "distance", Usage: "Override the tag distance"},
		&cli.StringSliceFlag{
			Name:  "custom",
			Usage: "Set a custom field: dotted.path=jsonvalue (repeatable)",
		},
		&cli.StringFlag{
			Name:  "tag-version",
			Usage: "Re-parse a version string through the tag parser, overwriting core/epoch/pre-release/post/dev",
		},
		&cli.BoolFlag{Name: "clean", Usage: "Force distance=0 and dirty=false"},
		&cli.BoolFlag{Name: "dirty", Usage: "Force dirty=true"},
		&cli.BoolFlag{Name: "no-dirty", Usage: "Force dirty=false"},

		// Schema-position overrides (§4.5 stage 2).
		&cli.StringSliceFlag{Name: "core", Usage: "Override a core position: i=literal (repeatable)"},
		&cli.StringSliceFlag{Name: "extra-core", Usage: "Override an extra_core position: i=literal (repeatable)"},
		&cli.StringSliceFlag{Name: "build", Usage: "Override a build position: i=literal (repeatable)"},

		// Relative bumps (§4.5 stage 3).
		&cli.StringFlag{Name: "bump-epoch", Usage: "Bump epoch by N (default 1)"},
		&cli.StringFlag{Name: "bump-major", Usage: "Bump major by N (default 1)"},
		&cli.StringFlag{Name: "bump-minor", Usage: "Bump minor by N (default 1)"},
		&cli.StringFlag{Name: "bump-patch", Usage: "Bump patch by N (default 1)"},
		&cli.StringFlag{Name: "bump-pre-release-num", Usage: "Bump (or create) pre_release.number by N (default 1)"},
		&cli.StringFlag{Name: "bump-pre-release-label", Usage: "Assign (or create) pre_release.label"},
		&cli.StringFlag{Name: "bump-post", Usage: "Bump post by N (default 1)"},
		&cli.StringFlag{Name: "bump-dev", Usage: "Bump dev by N (default 1)"},
		&cli.BoolFlag{Name: "bump-context", Usage: "Let VCS-derived metadata survive into the emitted version (default)"},
		&cli.BoolFlag{Name: "no-bump-context", Usage: "Clear VCS-derived metadata before emission"},
	}
}
