package version

import "github.com/zerv-cli/zerv/internal/zerrors"

// BumpRequest is stage (3) of the §4.5 engine: relative increments,
// applied in strict precedence order (epoch, major, minor, patch,
// pre_release, post, dev). Bumping a field resets every
// lower-precedence field that was not set by an absolute override this
// run; a lower-precedence field that is also bumped in this request is
// reset first and then bumped from zero (see ApplyBump). Position
// overrides change schema components, not vars, and take no part in
// this.
type BumpRequest struct {
	Epoch bool
	Major bool
	Minor bool
	Patch bool

	// EpochAmount/MajorAmount/MinorAmount/PatchAmount/PostAmount/DevAmount
	// give the N in --bump-X=N; nil means the §4.5 default of 1. They
	// are only consulted when the matching bool above is true.
	EpochAmount *uint64
	MajorAmount *uint64
	MinorAmount *uint64
	PatchAmount *uint64
	PostAmount  *uint64
	DevAmount   *uint64

	// PreReleaseNumber, when set, is the N added to the pre-release
	// number (--bump-pre-release-num N): if no pre-release exists, one
	// is created with PreReleaseLabel Alpha and number N.
	PreReleaseNumber *uint64
	// PreReleaseLabel, when set, assigns the label (--bump-pre-release-label
	// L), creating number 0 if no pre-release exists yet.
	PreReleaseLabel *PreReleaseLabel

	Post bool
	Dev  bool

	BumpContextFlagSet   bool
	NoBumpContextFlagSet bool
}

// ValidateNoConflicts enforces the mutually exclusive flag pairs named
// in §4.5: an absolute pre-release label override together with a
// relative pre-release label bump, and --bump-context with
// --no-bump-context.
func ValidateNoConflicts(ov AbsoluteOverrides, req BumpRequest) error {
	if ov.PreReleaseLabel != nil && req.PreReleaseLabel != nil {
		return &zerrors.ConflictingFlagsError{Msg: "--pre-release-label and --bump-pre-release-label both supplied"}
	}
	if req.BumpContextFlagSet && req.NoBumpContextFlagSet {
		return &zerrors.ConflictingFlagsError{Msg: "--bump-context and --no-bump-context both supplied"}
	}
	return nil
}

// ApplyBump mutates z.Vars per stage (3), consulting and updating
// touched so each cascading reset only clears fields the user did not
// explicitly set this run. Each field's touched flag is set inline,
// immediately before its own reset cascade runs and not a moment
// sooner: a lower-precedence field that is itself bumped later in this
// same request must still be seen as untouched by an earlier, higher-
// precedence field's cascade, so it gets zeroed before its own bump
// amount is added on top (§8 Testable Property 3) rather than added
// onto its stale pre-bump value.
func ApplyBump(z *Zerv, touched *Touched, req BumpRequest) error {
	if req.Epoch {
		touched.Epoch = true
		e := uint64(0)
		if z.Vars.Epoch != nil {
			e = *z.Vars.Epoch
		}
		e += bumpAmount(req.EpochAmount)
		z.Vars.Epoch = &e
		resetBelowEpoch(z, touched)
	}

	if req.Major {
		touched.Major = true
		z.Vars.Major += bumpAmount(req.MajorAmount)
		resetBelowMajor(z, touched)
	}

	if req.Minor {
		touched.Minor = true
		z.Vars.Minor += bumpAmount(req.MinorAmount)
		resetBelowMinor(z, touched)
	}

	if req.Patch {
		touched.Patch = true
		z.Vars.Patch += bumpAmount(req.PatchAmount)
		resetBelowPatch(z, touched)
	}

	if req.PreReleaseLabel != nil {
		touched.PreReleaseLabel = true
		num := uint64(0)
		if z.Vars.PreRelease != nil {
			num = z.Vars.PreRelease.Number
		}
		z.Vars.PreRelease = &PreRelease{Label: *req.PreReleaseLabel, Number: num}
		resetBelowPreReleaseLabel(z, touched)
	}

	if req.PreReleaseNumber != nil {
		touched.PreReleaseNumber = true
		label := Alpha
		num := uint64(0)
		if z.Vars.PreRelease != nil {
			label = z.Vars.PreRelease.Label
			num = z.Vars.PreRelease.Number
		}
		z.Vars.PreRelease = &PreRelease{Label: label, Number: num + *req.PreReleaseNumber}
		resetBelowPreReleaseNumber(z, touched)
	}

	if req.Post {
		touched.Post = true
		p := uint64(0)
		if z.Vars.Post != nil {
			p = *z.Vars.Post
		}
		p += bumpAmount(req.PostAmount)
		z.Vars.Post = &p
		resetBelowPost(z, touched)
	}

	if req.Dev {
		touched.Dev = true
		d := uint64(0)
		if z.Vars.Dev != nil {
			d = *z.Vars.Dev
		}
		d += bumpAmount(req.DevAmount)
		z.Vars.Dev = &d
		// dev resets nothing: it is the lowest-precedence field.
	}

	return nil
}

// bumpAmount returns the §4.5 default of 1 when no explicit N was given.
func bumpAmount(n *uint64) uint64 {
	if n == nil {
		return 1
	}
	return *n
}

func resetBelowEpoch(z *Zerv, t *Touched) {
	if !t.Major {
		z.Vars.Major = 0
	}
	if !t.Minor {
		z.Vars.Minor = 0
	}
	if !t.Patch {
		z.Vars.Patch = 0
	}
	clearPreReleaseIfUntouched(z, t)
	clearPostIfUntouched(z, t)
	clearDevIfUntouched(z, t)
}

func resetBelowMajor(z *Zerv, t *Touched) {
	if !t.Minor {
		z.Vars.Minor = 0
	}
	if !t.Patch {
		z.Vars.Patch = 0
	}
	clearPreReleaseIfUntouched(z, t)
	clearPostIfUntouched(z, t)
	clearDevIfUntouched(z, t)
}

func resetBelowMinor(z *Zerv, t *Touched) {
	if !t.Patch {
		z.Vars.Patch = 0
	}
	clearPreReleaseIfUntouched(z, t)
	clearPostIfUntouched(z, t)
	clearDevIfUntouched(z, t)
}

func resetBelowPatch(z *Zerv, t *Touched) {
	clearPreReleaseIfUntouched(z, t)
	clearPostIfUntouched(z, t)
	clearDevIfUntouched(z, t)
}

func resetBelowPreReleaseLabel(z *Zerv, t *Touched) {
	if !t.PreReleaseNumber && z.Vars.PreRelease != nil {
		z.Vars.PreRelease.Number = 0
	}
	clearPostIfUntouched(z, t)
	clearDevIfUntouched(z, t)
}

func resetBelowPreReleaseNumber(z *Zerv, t *Touched) {
	clearPostIfUntouched(z, t)
	clearDevIfUntouched(z, t)
}

func resetBelowPost(z *Zerv, t *Touched) {
	clearDevIfUntouched(z, t)
}

func clearPreReleaseIfUntouched(z *Zerv, t *Touched) {
	if !t.PreReleaseLabel && !t.PreReleaseNumber {
		z.Vars.PreRelease = nil
	}
}

func clearPostIfUntouched(z *Zerv, t *Touched) {
	if !t.Post {
		z.Vars.Post = nil
	}
}

func clearDevIfUntouched(z *Zerv, t *Touched) {
	if !t.Dev {
		z.Vars.Dev = nil
	}
}
