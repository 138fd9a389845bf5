package version

import "strings"

// PreReleaseLabel is the phase of a pre-release identifier. Order
// matters: Alpha sorts before Beta sorts before Rc.
type PreReleaseLabel string

const (
	Alpha PreReleaseLabel = "alpha"
	Beta  PreReleaseLabel = "beta"
	Rc    PreReleaseLabel = "rc"
)

// labelRank gives pre-release labels their comparison order.
var labelRank = map[PreReleaseLabel]int{
	Alpha: 0,
	Beta:  1,
	Rc:    2,
}

// Rank returns the label's sort position, or -1 if unrecognized.
func (l PreReleaseLabel) Rank() int {
	if r, ok := labelRank[l]; ok {
		return r
	}
	return -1
}

// ParsePreReleaseLabel normalizes a SemVer or PEP440 pre-release token
// into a canonical PreReleaseLabel.
func ParsePreReleaseLabel(token string) (PreReleaseLabel, bool) {
	switch strings.ToLower(token) {
	case "alpha", "a":
		return Alpha, true
	case "beta", "b":
		return Beta, true
	case "rc", "c", "pre", "preview":
		return Rc, true
	default:
		return "", false
	}
}

// PreRelease is the (label, number) pair attached to ZervVars.PreRelease.
type PreRelease struct {
	Label  PreReleaseLabel
	Number uint64
}

// ValidateLabelChars enforces the §4.5 constraint that a user-supplied
// pre-release label is ASCII alphanumerics and hyphens only.
func ValidateLabelChars(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return false
		}
	}
	return true
}
