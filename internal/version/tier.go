package version

// Tier classifies how far HEAD has drifted from its nearest tag
// (§4.3). It selects which preset schema tier to use; it has no
// further effect on the override/bump engine.
type Tier int

const (
	// TierClean is an exact, non-dirty tagged commit.
	TierClean Tier = 1
	// TierDistance is a clean commit some distance past the tag.
	TierDistance Tier = 2
	// TierDirty is a working tree with uncommitted changes.
	TierDirty Tier = 3
)

// ClassifyTier implements the §4.3 rule: dirty beats distance beats
// clean-on-tag.
func ClassifyTier(dirty bool, distance uint64) Tier {
	switch {
	case dirty:
		return TierDirty
	case distance > 0:
		return TierDistance
	default:
		return TierClean
	}
}
