// Package grammar renders a Zerv into each of the external textual
// forms zerv understands: SemVer, PEP440, and zerv's own internal
// interchange format. Conversion is only defined for schemas whose
// core positions are the major/minor/patch triad (§4.6) — a CalVer
// schema's timestamp-based core has no SemVer/PEP440 equivalent and
// emitting through these functions returns an error for it.
package grammar

import (
	"fmt"
	"strings"

	"github.com/zerv-cli/zerv/internal/version"
	"github.com/zerv-cli/zerv/internal/zerrors"
)

// requireMajorMinorPatchCore validates that a schema's core is exactly
// [var(major), var(minor), var(patch)], the precondition every
// SemVer/PEP440 conversion shares.
func requireMajorMinorPatchCore(schema version.Schema) error {
	if len(schema.Core) != 3 {
		return &zerrors.InvalidVersionError{Msg: "grammar conversion requires a 3-position major/minor/patch core"}
	}
	want := []string{"major", "minor", "patch"}
	for i, c := range schema.Core {
		if c.Kind != version.KindVar || c.VarName != want[i] {
			return &zerrors.InvalidVersionError{Msg: "grammar conversion requires a major/minor/patch core, schema uses " + c.String()}
		}
	}
	return nil
}

// EmitSemVer renders z as "major.minor.patch[-pre][+build]" (§4.6).
func EmitSemVer(z *version.Zerv) (string, error) {
	if err := requireMajorMinorPatchCore(z.Schema); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d.%d.%d", z.Vars.Major, z.Vars.Minor, z.Vars.Patch)

	var pre []string
	if z.Vars.Epoch != nil && *z.Vars.Epoch != 0 {
		pre = append(pre, fmt.Sprintf("epoch.%d", *z.Vars.Epoch))
	}
	if z.Vars.PreRelease != nil {
		pre = append(pre, fmt.Sprintf("%s.%d", z.Vars.PreRelease.Label, z.Vars.PreRelease.Number))
	}
	if z.Vars.Post != nil {
		pre = append(pre, fmt.Sprintf("post.%d", *z.Vars.Post))
	}
	if z.Vars.Dev != nil {
		pre = append(pre, fmt.Sprintf("dev.%d", *z.Vars.Dev))
	}
	if len(pre) > 0 {
		b.WriteString("-")
		b.WriteString(strings.Join(pre, "."))
	}

	build, err := renderBuild(z)
	if err != nil {
		return "", err
	}
	if build != "" {
		b.WriteString("+")
		b.WriteString(build)
	}

	return b.String(), nil
}

func renderBuild(z *version.Zerv) (string, error) {
	if len(z.Schema.Build) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(z.Schema.Build))
	for _, c := range z.Schema.Build {
		val, err := version.RenderComponent(c, &z.Vars, false)
		if err != nil {
			return "", err
		}
		parts = append(parts, val)
	}
	return strings.Join(parts, "."), nil
}
