package version

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/zerv-cli/zerv/internal/zerrors"
)

// InputFormat selects which tag grammar(s) ParseTag tries.
type InputFormat string

const (
	InputAuto   InputFormat = "auto"
	InputSemVer InputFormat = "semver"
	InputPep440 InputFormat = "pep440"
)

// TagVersion is what a tag string yields once parsed: the core
// numeric triad plus whatever epoch/pre-release/post the grammar
// carried. Build/local metadata is intentionally discarded here — it
// is recovered from live VCS state instead (§4.2).
type TagVersion struct {
	Major      uint64
	Minor      uint64
	Patch      uint64
	Epoch      *uint64
	PreRelease *PreRelease
	Post       *uint64

	// LeftoverPreReleaseTokens holds any compound pre-release
	// identifiers (e.g. "alpha.beta.1") beyond the first recognized
	// label, preserved verbatim rather than interpreted.
	LeftoverPreReleaseTokens []string
}

var (
	semverRe = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-([0-9A-Za-z.-]+))?(?:\+([0-9A-Za-z.-]+))?$`)
	pep440Re = regexp.MustCompile(`^(?:(\d+)!)?(\d+)\.(\d+)\.(\d+)(?:[-_.]?(a|b|c|rc|alpha|beta|pre|preview)[-_.]?(\d*))?(?:[-_.]?(?:post|rev|r)[-_.]?(\d*))?(?:\+([0-9A-Za-z.]+))?$`)
)

// ParseTag strips a leading v/V and parses the remainder under mode.
// Auto tries SemVer then PEP440; a tag matching neither is a
// ParseError.
func ParseTag(tag string, mode InputFormat) (*TagVersion, error) {
	stripped := strings.TrimPrefix(strings.TrimPrefix(tag, "v"), "V")

	switch mode {
	case InputSemVer:
		return parseSemVerTag(stripped, tag)
	case InputPep440:
		return parsePep440Tag(stripped, tag)
	default:
		if tv, err := parseSemVerTag(stripped, tag); err == nil {
			return tv, nil
		}
		if tv, err := parsePep440Tag(stripped, tag); err == nil {
			return tv, nil
		}
		return nil, &zerrors.ParseError{Tag: tag, Format: "auto"}
	}
}

func parseSemVerTag(stripped, original string) (*TagVersion, error) {
	m := semverRe.FindStringSubmatch(stripped)
	if m == nil {
		return nil, &zerrors.ParseError{Tag: original, Format: "semver"}
	}

	major, _ := strconv.ParseUint(m[1], 10, 64)
	minor, _ := strconv.ParseUint(m[2], 10, 64)
	patch, _ := strconv.ParseUint(m[3], 10, 64)

	tv := &TagVersion{Major: major, Minor: minor, Patch: patch}

	if m[4] != "" {
		pre, leftover, err := parsePreReleaseTokens(strings.Split(m[4], "."))
		if err != nil {
			return nil, &zerrors.ParseError{Tag: original, Format: "semver"}
		}
		tv.PreRelease = pre
		tv.LeftoverPreReleaseTokens = leftover
	}

	return tv, nil
}

func parsePep440Tag(stripped, original string) (*TagVersion, error) {
	m := pep440Re.FindStringSubmatch(stripped)
	if m == nil {
		return nil, &zerrors.ParseError{Tag: original, Format: "pep440"}
	}

	tv := &TagVersion{}

	if m[1] != "" {
		e, _ := strconv.ParseUint(m[1], 10, 64)
		tv.Epoch = &e
	}

	tv.Major, _ = strconv.ParseUint(normalizeLeadingZero(m[2]), 10, 64)
	tv.Minor, _ = strconv.ParseUint(normalizeLeadingZero(m[3]), 10, 64)
	tv.Patch, _ = strconv.ParseUint(normalizeLeadingZero(m[4]), 10, 64)

	if m[5] != "" {
		label, ok := ParsePreReleaseLabel(m[5])
		if !ok {
			return nil, &zerrors.ParseError{Tag: original, Format: "pep440"}
		}
		number := uint64(0)
		if m[6] != "" {
			number, _ = strconv.ParseUint(m[6], 10, 64)
		}
		tv.PreRelease = &PreRelease{Label: label, Number: number}
	}

	if m[7] != "" {
		p, _ := strconv.ParseUint(m[7], 10, 64)
		tv.Post = &p
	} else if strings.Contains(stripped, "post") || strings.Contains(stripped, "rev") {
		zero := uint64(0)
		tv.Post = &zero
	}

	return tv, nil
}

// normalizeLeadingZero strips PEP440-permitted leading zeros ("007" -> "7").
func normalizeLeadingZero(s string) string {
	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// parsePreReleaseTokens implements the Open Question decision: the
// first recognized label becomes the PreRelease; everything after it
// is preserved as leftover tokens instead of being interpreted.
func parsePreReleaseTokens(tokens []string) (*PreRelease, []string, error) {
	for i, tok := range tokens {
		if label, ok := ParsePreReleaseLabel(tok); ok {
			number := uint64(0)
			consumed := i + 1
			if i+1 < len(tokens) {
				if n, err := strconv.ParseUint(tokens[i+1], 10, 64); err == nil {
					number = n
					consumed = i + 2
				}
			}
			return &PreRelease{Label: label, Number: number}, tokens[consumed:], nil
		}
	}
	return nil, nil, &zerrors.InvalidVersionError{Msg: "no recognized pre-release label in " + strings.Join(tokens, ".")}
}
