package version

// ApplyBumpContext implements the §4.5 `--bump-context` /
// `--no-bump-context` switch. Default behavior (neither flag, or
// --bump-context) leaves VCS-derived metadata untouched. With
// --no-bump-context, distance, dirty, branch, commit hashes, and both
// timestamp fields are force-cleared before emission — run this after
// the override and bump stages (so a --clean or --bump-* run still
// computed whatever values it would have) and before schema
// validation/emission (§9's resolution of the open question: the user
// flag wins over tier-derived defaults).
func ApplyBumpContext(vars *ZervVars, req BumpRequest) {
	if !req.NoBumpContextFlagSet {
		return
	}

	vars.Distance = 0
	vars.Dirty = false
	vars.BumpedBranch = ""
	vars.BumpedCommitHash = ""
	vars.BumpedCommitHashShort = ""
	vars.BumpedTimestamp = nil
	vars.LastBranch = ""
	vars.LastCommitHash = ""
	vars.LastTimestamp = nil
}
