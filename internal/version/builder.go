package version

// VcsInputs is the subset of VCS probe results the vars builder needs.
// Keeping this as plain fields (rather than importing the vcs package
// directly) keeps version VCS-agnostic — the CLI wiring layer maps a
// vcs.Data into this shape.
type VcsInputs struct {
	HasTag        bool
	TagCommitHash string
	TagTimestamp  *uint64
	TagBranch     string

	HeadCommitHash      string
	HeadCommitHashShort string
	HeadBranch          string
	HeadTimestamp       uint64

	Distance uint64
	Dirty    bool
}

// BuildVars assembles a ZervVars from a parsed tag (nil if no tag was
// found) and the live VCS state, applying the tier-dependent defaults
// from §9: tier 2/3 pre-populate Post with the tag distance, and tier
// 3 additionally pre-populates Dev with the current HEAD timestamp, so
// an unmodified dirty/distant build already carries a meaningful
// post/dev identity before any bump flag is applied.
func BuildVars(tag *TagVersion, in VcsInputs, tier Tier) ZervVars {
	var vars ZervVars

	if tag != nil {
		vars.Major = tag.Major
		vars.Minor = tag.Minor
		vars.Patch = tag.Patch
		vars.Epoch = tag.Epoch
		vars.PreRelease = tag.PreRelease
		vars.Post = tag.Post
	}

	vars.Distance = in.Distance
	vars.Dirty = in.Dirty

	vars.BumpedBranch = in.HeadBranch
	vars.BumpedCommitHash = in.HeadCommitHash
	vars.BumpedCommitHashShort = in.HeadCommitHashShort
	headTs := in.HeadTimestamp
	vars.BumpedTimestamp = &headTs

	vars.LastBranch = in.TagBranch
	vars.LastCommitHash = in.TagCommitHash
	if in.TagTimestamp != nil {
		vars.LastTimestamp = in.TagTimestamp
	}

	if tier >= TierDistance && vars.Post == nil && in.Distance > 0 {
		d := in.Distance
		vars.Post = &d
	}
	if tier == TierDirty && vars.Dev == nil {
		dev := headTs
		vars.Dev = &dev
	}

	return vars
}
