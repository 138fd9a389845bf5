package version

import "testing"

func baseVars() ZervVars {
	return ZervVars{Major: 1, Minor: 2, Patch: 3}
}

func TestApplyBump_MajorResetsMinorAndPatch(t *testing.T) {
	z := &Zerv{Schema: standardSchema(1), Vars: baseVars()}
	touched := &Touched{}
	if err := ApplyBump(z, touched, BumpRequest{Major: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if z.Vars.Major != 2 || z.Vars.Minor != 0 || z.Vars.Patch != 0 {
		t.Errorf("got %+v", z.Vars)
	}
}

func TestApplyBump_AbsolutePatchOverrideSurvivesMinorBump(t *testing.T) {
	// An absolute --patch=5 override must not have that value reset
	// back to zero by a later --bump-minor.
	z := &Zerv{Schema: standardSchema(1), Vars: baseVars()}
	touched := &Touched{}
	ov := AbsoluteOverrides{Patch: uint64Ptr(5)}
	if err := ApplyAbsoluteOverrides(z, touched, ov); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ApplyBump(z, touched, BumpRequest{Minor: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if z.Vars.Minor != 3 || z.Vars.Patch != 5 {
		t.Errorf("got minor=%d patch=%d, want minor=3 patch=5", z.Vars.Minor, z.Vars.Patch)
	}
}

func TestApplyBump_S5_RelativeMinorAndPatchBumpFromZeroedBaseline(t *testing.T) {
	// Scenario S5: "--bump-minor --bump-patch=5" on tag v1.2.3 must
	// print 1.3.5. Patch's own bump must add its amount onto a
	// zeroed baseline (reset by the minor bump's cascade), not onto
	// the stale pre-bump value of 3 (which would wrongly give 8).
	z := &Zerv{Schema: standardSchema(1), Vars: baseVars()}
	touched := &Touched{}
	five := uint64(5)
	req := BumpRequest{Minor: true, Patch: true, PatchAmount: &five}
	if err := ApplyBump(z, touched, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if z.Vars.Major != 1 || z.Vars.Minor != 3 || z.Vars.Patch != 5 {
		t.Errorf("got %+v, want major=1 minor=3 patch=5", z.Vars)
	}
}

func TestApplyBump_PreReleaseNumberCreatesAlphaWhenAbsent(t *testing.T) {
	// Scenario S6: bump-pre-release-num=2 with no existing pre-release.
	z := &Zerv{Schema: standardSchema(2), Vars: baseVars()}
	touched := &Touched{}
	n := uint64(2)
	if err := ApplyBump(z, touched, BumpRequest{PreReleaseNumber: &n}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if z.Vars.PreRelease == nil || z.Vars.PreRelease.Label != Alpha || z.Vars.PreRelease.Number != 2 {
		t.Errorf("got %+v", z.Vars.PreRelease)
	}
}

func TestApplyBump_PreReleaseLabelResetsNumberUnlessTouched(t *testing.T) {
	z := &Zerv{Schema: standardSchema(2), Vars: baseVars()}
	z.Vars.PreRelease = &PreRelease{Label: Alpha, Number: 9}
	touched := &Touched{}
	rc := Rc
	if err := ApplyBump(z, touched, BumpRequest{PreReleaseLabel: &rc}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if z.Vars.PreRelease.Label != Rc || z.Vars.PreRelease.Number != 0 {
		t.Errorf("got %+v", z.Vars.PreRelease)
	}
}

func TestApplyBump_EpochResetsEverythingBelow(t *testing.T) {
	z := &Zerv{Schema: standardSchema(3), Vars: baseVars()}
	z.Vars.PreRelease = &PreRelease{Label: Beta, Number: 2}
	post := uint64(4)
	dev := uint64(7)
	z.Vars.Post = &post
	z.Vars.Dev = &dev
	touched := &Touched{}

	if err := ApplyBump(z, touched, BumpRequest{Epoch: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if z.Vars.Epoch == nil || *z.Vars.Epoch != 1 {
		t.Errorf("expected epoch 1, got %v", z.Vars.Epoch)
	}
	if z.Vars.Major != 0 || z.Vars.Minor != 0 || z.Vars.Patch != 0 {
		t.Errorf("expected major/minor/patch reset, got %+v", z.Vars)
	}
	if z.Vars.PreRelease != nil || z.Vars.Post != nil || z.Vars.Dev != nil {
		t.Errorf("expected pre_release/post/dev cleared, got %+v", z.Vars)
	}
}

func TestApplyBump_DevResetsNothing(t *testing.T) {
	z := &Zerv{Schema: standardSchema(3), Vars: baseVars()}
	touched := &Touched{}
	if err := ApplyBump(z, touched, BumpRequest{Dev: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if z.Vars.Major != 1 || z.Vars.Minor != 2 || z.Vars.Patch != 3 {
		t.Errorf("dev bump should not touch higher-precedence fields, got %+v", z.Vars)
	}
	if z.Vars.Dev == nil || *z.Vars.Dev != 1 {
		t.Errorf("expected dev=1, got %v", z.Vars.Dev)
	}
}

func TestValidateNoConflicts_PreReleaseLabelBothAbsoluteAndRelative(t *testing.T) {
	rc := Rc
	ov := AbsoluteOverrides{PreReleaseLabel: &rc}
	req := BumpRequest{PreReleaseLabel: &rc}
	if err := ValidateNoConflicts(ov, req); err == nil {
		t.Fatal("expected conflicting flags error")
	}
}

func TestValidateNoConflicts_BumpContextBothSet(t *testing.T) {
	req := BumpRequest{BumpContextFlagSet: true, NoBumpContextFlagSet: true}
	if err := ValidateNoConflicts(AbsoluteOverrides{}, req); err == nil {
		t.Fatal("expected conflicting flags error")
	}
}

func TestApplyAbsoluteOverrides_DirtyConflict(t *testing.T) {
	z := &Zerv{Schema: standardSchema(1), Vars: baseVars()}
	touched := &Touched{}
	ov := AbsoluteOverrides{DirtyFlagSet: true, NoDirtyFlagSet: true}
	if err := ApplyAbsoluteOverrides(z, touched, ov); err == nil {
		t.Fatal("expected conflicting flags error")
	}
}

func TestApplyAbsoluteOverrides_CleanForcesDistanceAndDirty(t *testing.T) {
	z := &Zerv{Schema: standardSchema(1), Vars: baseVars()}
	z.Vars.Distance = 5
	z.Vars.Dirty = true
	touched := &Touched{}
	if err := ApplyAbsoluteOverrides(z, touched, AbsoluteOverrides{Clean: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if z.Vars.Distance != 0 || z.Vars.Dirty {
		t.Errorf("expected clean state, got %+v", z.Vars)
	}
}

func TestApplyAbsoluteOverrides_TagVersionOverwritesCoreAndClearsDev(t *testing.T) {
	z := &Zerv{Schema: standardSchema(3), Vars: baseVars()}
	dev := uint64(123)
	z.Vars.Dev = &dev
	touched := &Touched{}
	tag := "v2.5.1"
	ov := AbsoluteOverrides{TagVersion: &tag, TagVersionFormat: InputSemVer}
	if err := ApplyAbsoluteOverrides(z, touched, ov); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if z.Vars.Major != 2 || z.Vars.Minor != 5 || z.Vars.Patch != 1 {
		t.Errorf("got %+v", z.Vars)
	}
	if z.Vars.Dev != nil {
		t.Errorf("expected dev cleared by --tag-version, got %v", z.Vars.Dev)
	}
	if !touched.Major || !touched.Minor || !touched.Patch {
		t.Errorf("expected major/minor/patch marked touched, got %+v", touched)
	}
}

func uint64Ptr(n uint64) *uint64 { return &n }
