package version

import "strings"

// ZervVars is the universal variable bag every schema's Components
// draw from (§3). Numeric core fields are always populated; the rest
// are optional and absent unless a tag, override, or bump populates
// them.
type ZervVars struct {
	Major uint64
	Minor uint64
	Patch uint64

	Epoch      *uint64
	PreRelease *PreRelease
	Post       *uint64
	Dev        *uint64

	Distance uint64
	Dirty    bool

	// Bumped* mirrors HEAD's live state, read by build-position
	// components and tier-3 dev timestamps.
	BumpedBranch          string
	BumpedCommitHash      string
	BumpedCommitHashShort string
	BumpedTimestamp       *uint64

	// Last* mirrors the tag commit's state, read by CalVer-style core
	// components when no live override applies.
	LastBranch     string
	LastCommitHash string
	LastTimestamp  *uint64

	// Custom holds user-defined data reachable from schema Components
	// via dotted var(custom.x.y) paths and from --custom overrides.
	Custom map[string]interface{}
}

// Field looks up a top-level ZervVars field or a dotted custom.*
// path by name, returning (value, true) on success. Unknown names
// return (nil, false) so callers can turn that into MissingFieldError.
func (v *ZervVars) Field(name string) (interface{}, bool) {
	if strings.HasPrefix(name, "custom.") {
		return v.customField(strings.TrimPrefix(name, "custom."))
	}

	switch name {
	case "major":
		return v.Major, true
	case "minor":
		return v.Minor, true
	case "patch":
		return v.Patch, true
	case "epoch":
		if v.Epoch == nil {
			return nil, false
		}
		return *v.Epoch, true
	case "pre_release":
		if v.PreRelease == nil {
			return nil, false
		}
		return *v.PreRelease, true
	case "pre_release_label":
		if v.PreRelease == nil {
			return nil, false
		}
		return v.PreRelease.Label, true
	case "pre_release_number":
		if v.PreRelease == nil {
			return nil, false
		}
		return v.PreRelease.Number, true
	case "post":
		if v.Post == nil {
			return nil, false
		}
		return *v.Post, true
	case "dev":
		if v.Dev == nil {
			return nil, false
		}
		return *v.Dev, true
	case "distance":
		return v.Distance, true
	case "dirty":
		return v.Dirty, true
	case "bumped_branch":
		if v.BumpedBranch == "" {
			return nil, false
		}
		return v.BumpedBranch, true
	case "bumped_commit_hash":
		if v.BumpedCommitHash == "" {
			return nil, false
		}
		return v.BumpedCommitHash, true
	case "bumped_commit_hash_short":
		if v.BumpedCommitHashShort == "" {
			return nil, false
		}
		return v.BumpedCommitHashShort, true
	case "bumped_timestamp":
		if v.BumpedTimestamp == nil {
			return nil, false
		}
		return *v.BumpedTimestamp, true
	case "last_branch":
		if v.LastBranch == "" {
			return nil, false
		}
		return v.LastBranch, true
	case "last_commit_hash":
		if v.LastCommitHash == "" {
			return nil, false
		}
		return v.LastCommitHash, true
	case "last_timestamp":
		if v.LastTimestamp == nil {
			return nil, false
		}
		return *v.LastTimestamp, true
	default:
		return nil, false
	}
}

// customField walks a dotted path (e.g. "release.channel") through
// the Custom tree.
func (v *ZervVars) customField(path string) (interface{}, bool) {
	if v.Custom == nil {
		return nil, false
	}
	parts := strings.Split(path, ".")
	var cur interface{} = v.Custom
	for _, p := range parts {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur, ok = m[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// SetCustomField writes a value at a dotted path, creating
// intermediate maps as needed. Used by --custom <json> merges.
func (v *ZervVars) SetCustomField(path string, value interface{}) {
	if v.Custom == nil {
		v.Custom = map[string]interface{}{}
	}
	parts := strings.Split(path, ".")
	cur := v.Custom
	for i, p := range parts {
		if i == len(parts)-1 {
			cur[p] = value
			return
		}
		next, ok := cur[p].(map[string]interface{})
		if !ok {
			next = map[string]interface{}{}
			cur[p] = next
		}
		cur = next
	}
}

// ResolvedTimestamp picks the timestamp source a ts() Component should
// read: BumpedTimestamp for live/tier-driven output, falling back to
// LastTimestamp for tag-time (CalVer) rendering.
func (v *ZervVars) ResolvedTimestamp(preferLast bool) (uint64, bool) {
	if preferLast && v.LastTimestamp != nil {
		return *v.LastTimestamp, true
	}
	if v.BumpedTimestamp != nil {
		return *v.BumpedTimestamp, true
	}
	if v.LastTimestamp != nil {
		return *v.LastTimestamp, true
	}
	return 0, false
}
