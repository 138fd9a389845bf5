package version

import "testing"

func TestCompare_MajorMinorPatchOrdering(t *testing.T) {
	schema := standardSchema(1)
	a := &Zerv{Schema: schema, Vars: ZervVars{Major: 1, Minor: 0, Patch: 0}}
	b := &Zerv{Schema: schema, Vars: ZervVars{Major: 2, Minor: 0, Patch: 0}}

	d, err := Compare(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d >= 0 {
		t.Errorf("expected a < b, got diff %d", d)
	}
}

func TestCompare_PresentPreReleaseSortsAboveAbsent(t *testing.T) {
	// The schema-driven order sorts an absent field below a present one
	// for every field, pre_release included (unlike ComparePep440).
	schema := standardSchema(2)
	withPre := &Zerv{Schema: schema, Vars: ZervVars{Major: 1, Minor: 0, Patch: 0, PreRelease: &PreRelease{Label: Rc, Number: 1}}}
	final := &Zerv{Schema: schema, Vars: ZervVars{Major: 1, Minor: 0, Patch: 0}}

	d, err := Compare(withPre, final)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d <= 0 {
		t.Errorf("expected pre-release > final, got diff %d", d)
	}
}

func TestCompare_PreReleaseLabelOrdering(t *testing.T) {
	schema := standardSchema(2)
	alpha := &Zerv{Schema: schema, Vars: ZervVars{PreRelease: &PreRelease{Label: Alpha, Number: 9}}}
	beta := &Zerv{Schema: schema, Vars: ZervVars{PreRelease: &PreRelease{Label: Beta, Number: 0}}}

	d, err := Compare(alpha, beta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d >= 0 {
		t.Errorf("expected alpha < beta regardless of number, got diff %d", d)
	}
}

func TestCompare_Equal(t *testing.T) {
	schema := standardSchema(1)
	a := &Zerv{Schema: schema, Vars: ZervVars{Major: 1, Minor: 2, Patch: 3}}
	b := &Zerv{Schema: schema, Vars: ZervVars{Major: 1, Minor: 2, Patch: 3}}

	d, err := Compare(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 0 {
		t.Errorf("expected equal, got diff %d", d)
	}
}
