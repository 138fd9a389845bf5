// Package template renders a Zerv through a user-supplied Mustache
// template (§4.6's `--output-template`), grounded on
// benjaminabbitt/versionator's internal/emit: every field a Zerv
// carries is exposed as a named template variable, plus a set of
// precomputed convenience variants (dashed/dotted prefixes, short
// hashes, a SHA-256 of the commit hash, calendar breakdowns). No
// template functions are registered: there are no arithmetic helpers,
// and hashing and date formatting are available only through these
// precomputed variables.
package template

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/cbroglie/mustache"

	"github.com/zerv-cli/zerv/internal/version"
	"github.com/zerv-cli/zerv/internal/zerrors"
)

// Render renders tmplStr against z's fields, custom data, and the
// derived convenience variables described in the package doc.
func Render(tmplStr string, z *version.Zerv) (string, error) {
	ctx := BuildContext(z)
	out, err := mustache.Render(tmplStr, ctx)
	if err != nil {
		return "", &zerrors.TemplateError{Msg: err.Error()}
	}
	return out, nil
}

// BuildContext assembles the map a template renders against. Every
// ZervVars field is present as a string (empty when absent), plus the
// convenience fields below and a nested "custom" map for dotted
// custom.* access.
func BuildContext(z *version.Zerv) map[string]interface{} {
	v := &z.Vars

	dirty := ""
	if v.Dirty {
		dirty = "dirty"
	}

	preLabel, preNumber, preFull := "", "", ""
	if v.PreRelease != nil {
		preLabel = string(v.PreRelease.Label)
		preNumber = strconv.FormatUint(v.PreRelease.Number, 10)
		preFull = fmt.Sprintf("%s.%s", preLabel, preNumber)
	}

	ctx := map[string]interface{}{
		"major": strconv.FormatUint(v.Major, 10),
		"minor": strconv.FormatUint(v.Minor, 10),
		"patch": strconv.FormatUint(v.Patch, 10),

		"epoch": uintString(v.Epoch),

		"pre_release":          preFull,
		"pre_release_with_dash": withDash(preFull),
		"pre_release_label":    preLabel,
		"pre_release_number":   preNumber,

		"post": uintString(v.Post),
		"dev":  uintString(v.Dev),

		"distance":  strconv.FormatUint(v.Distance, 10),
		"dirty":     dirty,
		"dirty_with_dash": withDash(dirty),
		"dirty_with_dot":  withDot(dirty),

		"bumped_branch":             v.BumpedBranch,
		"bumped_commit_hash":        v.BumpedCommitHash,
		"bumped_commit_hash_short":  v.BumpedCommitHashShort,
		"bumped_timestamp":          uintString(v.BumpedTimestamp),
		"bumped_commit_hash_sha256": sha256Hex(v.BumpedCommitHash),
		"short_hash_with_dot":       withDot(v.BumpedCommitHashShort),
		"short_hash_with_dash":      withDash(v.BumpedCommitHashShort),

		"last_branch":      v.LastBranch,
		"last_commit_hash": v.LastCommitHash,
		"last_timestamp":   uintString(v.LastTimestamp),
	}

	for name, pattern := range map[string]string{
		"bumped_date_compact": "compact_date",
		"bumped_datetime_compact": "compact_datetime",
		"bumped_year":  "YYYY",
		"bumped_month": "MM",
		"bumped_day":   "DD",
	} {
		ctx[name] = formatTsField(v, pattern, false)
	}
	for name, pattern := range map[string]string{
		"last_date_compact": "compact_date",
		"last_year":         "YYYY",
		"last_month":        "MM",
		"last_day":          "DD",
	} {
		ctx[name] = formatTsField(v, pattern, true)
	}

	if len(v.Custom) > 0 {
		ctx["custom"] = v.Custom
	}

	return ctx
}

// formatTsField renders a named timestamp pattern through the schema
// Component formatter, swallowing MissingFieldError (no source
// timestamp) as an empty string — templates should not fail just
// because a convenience field has nothing to read.
func formatTsField(v *version.ZervVars, pattern string, preferLast bool) string {
	s, err := version.RenderComponent(version.Ts(pattern), v, preferLast)
	if err != nil {
		return ""
	}
	return s
}

func uintString(p *uint64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatUint(*p, 10)
}

func withDash(s string) string {
	if s == "" {
		return ""
	}
	return "-" + s
}

func withDot(s string) string {
	if s == "" {
		return ""
	}
	return "." + s
}

func sha256Hex(s string) string {
	if s == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
