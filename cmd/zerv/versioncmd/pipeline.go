package versioncmd

import (
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/zerv-cli/zerv/internal/config"
	"github.com/zerv-cli/zerv/internal/template"
	"github.com/zerv-cli/zerv/internal/vcs"
	"github.com/zerv-cli/zerv/internal/version"
	"github.com/zerv-cli/zerv/internal/version/grammar"
	"github.com/zerv-cli/zerv/internal/zerrors"
)

// run executes the full §2 pipeline: VCS probe (or stdin parse) → tag
// parse → vars build → schema resolve → Zerv construction → override/
// bump engine → emit. It returns the exact bytes to print to stdout;
// the caller is responsible for writing them (and nothing else) there.
func run(cmd *cli.Command, cfg *config.Config) (string, error) {
	absOverrides, err := buildAbsoluteOverrides(cmd)
	if err != nil {
		return "", err
	}
	posOverrides, err := buildPositionOverrides(cmd)
	if err != nil {
		return "", err
	}
	bumpReq, err := buildBumpRequest(cmd)
	if err != nil {
		return "", err
	}
	if err := version.ValidateNoConflicts(absOverrides, bumpReq); err != nil {
		return "", err
	}

	z, err := buildZerv(cmd, cfg)
	if err != nil {
		return "", err
	}

	touched := &version.Touched{}
	if err := version.ApplyAbsoluteOverrides(z, touched, absOverrides); err != nil {
		return "", err
	}
	if err := version.ApplyPositionOverrides(&z.Schema, posOverrides); err != nil {
		return "", err
	}
	if err := version.ApplyBump(z, touched, bumpReq); err != nil {
		return "", err
	}
	version.ApplyBumpContext(&z.Vars, bumpReq)

	if err := z.Validate(); err != nil {
		return "", err
	}

	return emit(cmd, z)
}

// buildZerv produces the starting *version.Zerv, either by probing a
// live Git repository (§4.1-§4.4) or by parsing a self-describing
// internal-form document from stdin (§6's pipe contract).
func buildZerv(cmd *cli.Command, cfg *config.Config) (*version.Zerv, error) {
	if cmd.String("source") == "stdin" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, &zerrors.IoError{Context: "reading stdin", Err: err}
		}
		return grammar.ParseInternal(string(data))
	}
	return buildZervFromGit(cmd, cfg)
}

func buildZervFromGit(cmd *cli.Command, cfg *config.Config) (*version.Zerv, error) {
	dir := cmd.String("dir")
	if dir == "" && cfg != nil {
		dir = cfg.DefaultPath
	}
	if dir == "" {
		dir = "."
	}

	prober := vcs.NewGitProber()
	data, _, err := vcs.Probe(prober, dir)
	if err != nil {
		return nil, err
	}

	var tag *version.TagVersion
	if data.HasTag() {
		tag, err = version.ParseTag(data.TagName, version.InputFormat(cmd.String("input-format")))
		if err != nil {
			return nil, err
		}
	}

	tier := version.ClassifyTier(data.Dirty, uint64(data.Distance))
	vars := version.BuildVars(tag, toVcsInputs(data), tier)

	schema, err := resolveSchema(cmd, cfg, int(tier))
	if err != nil {
		return nil, err
	}

	return version.New(schema, vars)
}

func toVcsInputs(data *vcs.Data) version.VcsInputs {
	return version.VcsInputs{
		HasTag:        data.HasTag(),
		TagCommitHash: data.TagCommitHash,
		TagTimestamp:  data.TagTimestamp,
		TagBranch:     data.TagBranch,

		HeadCommitHash:      data.HeadCommitHash,
		HeadCommitHashShort: data.HeadCommitHashShort,
		HeadBranch:          data.HeadBranch,
		HeadTimestamp:       data.HeadTimestamp,

		Distance: uint64(data.Distance),
		Dirty:    data.Dirty,
	}
}

// resolveSchema implements §4.4's selection precedence: an explicit
// --schema-ron wins, then --schema (checked first against the
// project's configured custom presets, then the built-ins), then the
// project's configured default, then "standard" at the tier the probe
// classified.
func resolveSchema(cmd *cli.Command, cfg *config.Config, tier int) (version.Schema, error) {
	presetName := cmd.String("schema")
	ronText := cmd.String("schema-ron")

	if presetName != "" && ronText != "" {
		return version.Schema{}, &zerrors.ConflictingSchemasError{}
	}
	if ronText != "" {
		return version.ParseSchemaText(ronText)
	}
	if presetName != "" {
		if ron, ok := cfg.FindSchemaPreset(presetName); ok {
			return version.ParseSchemaText(ron)
		}
		return version.ResolvePreset(presetName, tier)
	}
	if cfg != nil && cfg.DefaultSchema != "" {
		if ron, ok := cfg.FindSchemaPreset(cfg.DefaultSchema); ok {
			return version.ParseSchemaText(ron)
		}
		return version.ResolvePreset(cfg.DefaultSchema, tier)
	}
	return version.ResolvePreset("standard", tier)
}

// emit renders z through the requested output mode and applies the
// optional version prefix (§4.6, §6).
func emit(cmd *cli.Command, z *version.Zerv) (string, error) {
	if tmpl := cmd.String("output-template"); tmpl != "" {
		out, err := template.Render(tmpl, z)
		if err != nil {
			return "", err
		}
		return withPrefix(cmd, out), nil
	}

	format := cmd.String("output-format")
	if format == "" {
		format = "semver"
	}

	switch format {
	case "semver":
		out, err := grammar.EmitSemVer(z)
		if err != nil {
			return "", err
		}
		return withPrefix(cmd, out), nil
	case "pep440":
		out, err := grammar.EmitPep440(z)
		if err != nil {
			return "", err
		}
		return withPrefix(cmd, out), nil
	case "zerv":
		// The internal form must round-trip byte-for-byte; no prefix
		// is ever applied to it.
		return grammar.EmitInternal(z)
	default:
		return "", &zerrors.InvalidVersionError{Msg: "unknown --output-format " + format}
	}
}

func withPrefix(cmd *cli.Command, s string) string {
	if !cmd.Bool("output-prefix") {
		return s
	}
	return cmd.String("output-prefix-char") + s
}
