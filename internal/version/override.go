package version

import "github.com/zerv-cli/zerv/internal/zerrors"

// AbsoluteOverrides is stage (1) of the §4.5 engine: CLI flags that
// set a field outright, independent of any bump.
type AbsoluteOverrides struct {
	Major           *uint64
	Minor           *uint64
	Patch           *uint64
	Epoch           *uint64
	PreReleaseLabel *PreReleaseLabel
	Distance        *uint64
	Custom          map[string]interface{} // dotted path -> value

	// TagVersion re-parses a version string through the tag parser
	// and overwrites core/epoch/pre_release/post/dev wholesale.
	TagVersion       *string
	TagVersionFormat InputFormat

	Clean bool

	DirtyFlagSet   bool
	NoDirtyFlagSet bool
}

// PositionOverrides is stage (2): literal values forced into specific
// schema positions, identified by their zero-based index within core,
// extra_core, or build.
type PositionOverrides struct {
	Core      map[int]string
	ExtraCore map[int]string
	Build     map[int]string
}

// ApplyAbsoluteOverrides mutates z.Vars per stage (1) and marks every
// touched precedence field so the bump stage (3) won't reset it.
func ApplyAbsoluteOverrides(z *Zerv, touched *Touched, ov AbsoluteOverrides) error {
	if ov.DirtyFlagSet && ov.NoDirtyFlagSet {
		return &zerrors.ConflictingFlagsError{Msg: "--dirty and --no-dirty both supplied"}
	}

	if ov.TagVersion != nil {
		tv, err := ParseTag(*ov.TagVersion, ov.TagVersionFormat)
		if err != nil {
			return err
		}
		z.Vars.Major = tv.Major
		z.Vars.Minor = tv.Minor
		z.Vars.Patch = tv.Patch
		z.Vars.Epoch = tv.Epoch
		z.Vars.PreRelease = tv.PreRelease
		z.Vars.Post = tv.Post
		z.Vars.Dev = nil
		touched.Major, touched.Minor, touched.Patch = true, true, true
		if tv.Epoch != nil {
			touched.Epoch = true
		}
		if tv.PreRelease != nil {
			touched.PreReleaseLabel, touched.PreReleaseNumber = true, true
		}
		if tv.Post != nil {
			touched.Post = true
		}
	}

	if ov.Major != nil {
		z.Vars.Major = *ov.Major
		touched.Major = true
	}
	if ov.Minor != nil {
		z.Vars.Minor = *ov.Minor
		touched.Minor = true
	}
	if ov.Patch != nil {
		z.Vars.Patch = *ov.Patch
		touched.Patch = true
	}
	if ov.Epoch != nil {
		e := *ov.Epoch
		z.Vars.Epoch = &e
		touched.Epoch = true
	}
	if ov.PreReleaseLabel != nil {
		num := uint64(0)
		if z.Vars.PreRelease != nil {
			num = z.Vars.PreRelease.Number
		}
		z.Vars.PreRelease = &PreRelease{Label: *ov.PreReleaseLabel, Number: num}
		touched.PreReleaseLabel = true
	}
	if ov.Distance != nil {
		z.Vars.Distance = *ov.Distance
	}
	for path, val := range ov.Custom {
		z.Vars.SetCustomField(path, val)
	}

	// --clean forces distance=0, dirty=false. Absolute overrides run
	// strictly after tier selection and before bumps, so --clean can
	// override the tier-3 default the VCS probe produced (§9, §4.5).
	if ov.Clean {
		z.Vars.Distance = 0
		z.Vars.Dirty = false
	}
	if ov.DirtyFlagSet {
		z.Vars.Dirty = true
	}
	if ov.NoDirtyFlagSet {
		z.Vars.Dirty = false
	}

	return nil
}

// ApplyPositionOverrides mutates the given schema sections in place,
// replacing the component at each supplied index with a literal
// string. Position overrides run after absolute overrides and before
// bumps (§4.5 stage 2).
func ApplyPositionOverrides(schema *Schema, pos PositionOverrides) error {
	apply := func(section []Component, overrides map[int]string) error {
		for idx, val := range overrides {
			if idx < 0 || idx >= len(section) {
				return &zerrors.InvalidVersionError{Msg: "schema position index out of range"}
			}
			section[idx] = Str(val)
		}
		return nil
	}

	if err := apply(schema.Core, pos.Core); err != nil {
		return err
	}
	if err := apply(schema.ExtraCore, pos.ExtraCore); err != nil {
		return err
	}
	if err := apply(schema.Build, pos.Build); err != nil {
		return err
	}
	return nil
}
