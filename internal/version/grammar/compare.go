package grammar

import "github.com/zerv-cli/zerv/internal/version"

// ComparePep440 orders two Zervs the way PEP 440's PublicVersion.Cmp
// does (grounded on datawire/ocibuild's pkg/python/pep440): epoch, then
// the major/minor/patch release tuple, then pre-release, then post,
// then dev. A missing post segment sorts below a present one, while a
// missing pre-release or dev segment sorts above a present one
// (1.0rc1 < 1.0, 1.0.dev1 < 1.0 < 1.0.post1). version.Compare covers the
// schema-precedence-order case for same-schema comparisons; this
// covers the fixed five-segment case external callers (zerv check
// --compare) use, for any two major/minor/patch-core Zervs regardless
// of schema shape.
func ComparePep440(a, b *version.Zerv) (int, error) {
	if err := requireMajorMinorPatchCore(a.Schema); err != nil {
		return 0, err
	}
	if err := requireMajorMinorPatchCore(b.Schema); err != nil {
		return 0, err
	}

	if d := cmpEpoch(&a.Vars, &b.Vars); d != 0 {
		return d, nil
	}
	if d := cmpRelease(&a.Vars, &b.Vars); d != 0 {
		return d, nil
	}
	if d := cmpPreRelease(&a.Vars, &b.Vars); d != 0 {
		return d, nil
	}
	if d := cmpPost(&a.Vars, &b.Vars); d != 0 {
		return d, nil
	}
	return cmpDev(&a.Vars, &b.Vars), nil
}

func cmpEpoch(a, b *version.ZervVars) int {
	return cmpU64(epochOf(a), epochOf(b))
}

func epochOf(v *version.ZervVars) uint64 {
	if v.Epoch == nil {
		return 0
	}
	return *v.Epoch
}

func cmpRelease(a, b *version.ZervVars) int {
	if d := cmpU64(a.Major, b.Major); d != 0 {
		return d
	}
	if d := cmpU64(a.Minor, b.Minor); d != 0 {
		return d
	}
	return cmpU64(a.Patch, b.Patch)
}

// cmpPreRelease: no pre-release sorts above any pre-release of the
// same release segment (1.0 > 1.0rc1), matching PEP 440's
// devN < aN < bN < rcN < <no suffix>.
func cmpPreRelease(a, b *version.ZervVars) int {
	switch {
	case a.PreRelease == nil && b.PreRelease == nil:
		return 0
	case a.PreRelease == nil:
		return 1
	case b.PreRelease == nil:
		return -1
	}
	if d := a.PreRelease.Label.Rank() - b.PreRelease.Label.Rank(); d != 0 {
		return d
	}
	return cmpU64(a.PreRelease.Number, b.PreRelease.Number)
}

// cmpPost: no post-release sorts below any post-release (1.0 < 1.0.post1).
func cmpPost(a, b *version.ZervVars) int {
	switch {
	case a.Post == nil && b.Post == nil:
		return 0
	case a.Post == nil:
		return -1
	case b.Post == nil:
		return 1
	}
	return cmpU64(*a.Post, *b.Post)
}

// cmpDev: a dev-release sorts below its dev-less counterpart
// (1.0.dev1 < 1.0), the reverse of cmpPost's convention.
func cmpDev(a, b *version.ZervVars) int {
	switch {
	case a.Dev == nil && b.Dev == nil:
		return 0
	case a.Dev == nil:
		return 1
	case b.Dev == nil:
		return -1
	}
	return cmpU64(*a.Dev, *b.Dev)
}

func cmpU64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
