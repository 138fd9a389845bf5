package grammar

import (
	"fmt"
	"strings"

	"github.com/zerv-cli/zerv/internal/version"
)

// EmitPep440 renders z as "[epoch!]major.minor.patch[{label}N][.postN]
// [.devN][+local]" (§4.6). PEP440 has no native label set for "rc" vs
// SemVer's; zerv's three labels map onto PEP440's a/b/rc directly.
func EmitPep440(z *version.Zerv) (string, error) {
	if err := requireMajorMinorPatchCore(z.Schema); err != nil {
		return "", err
	}

	var b strings.Builder
	if z.Vars.Epoch != nil && *z.Vars.Epoch != 0 {
		fmt.Fprintf(&b, "%d!", *z.Vars.Epoch)
	}
	fmt.Fprintf(&b, "%d.%d.%d", z.Vars.Major, z.Vars.Minor, z.Vars.Patch)

	if z.Vars.PreRelease != nil {
		fmt.Fprintf(&b, "%s%d", pep440Label(z.Vars.PreRelease.Label), z.Vars.PreRelease.Number)
	}
	if z.Vars.Post != nil {
		fmt.Fprintf(&b, ".post%d", *z.Vars.Post)
	}
	if z.Vars.Dev != nil {
		fmt.Fprintf(&b, ".dev%d", *z.Vars.Dev)
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

func pep440Label(l version.PreReleaseLabel) string {
	switch l {
	case version.Alpha:
		return "a"
	case version.Beta:
		return "b"
	case version.Rc:
		return "rc"
	default:
		return string(l)
	}
}
