package version

import "testing"

func TestParseSchemaText_BareAndExplicitForms(t *testing.T) {
	text := `
core: [major, minor, patch]
extra_core: [var(pre_release), int(0)]
build: [str(dirty-build)]
`
	schema, err := ParseSchemaText(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(schema.Core) != 3 || schema.Core[0].Kind != KindVar || schema.Core[0].VarName != "major" {
		t.Errorf("unexpected core: %+v", schema.Core)
	}
	if schema.ExtraCore[1].Kind != KindInt || schema.ExtraCore[1].Int != 0 {
		t.Errorf("unexpected extra_core[1]: %+v", schema.ExtraCore[1])
	}
	if schema.Build[0].Kind != KindStr || schema.Build[0].Str != "dirty-build" {
		t.Errorf("unexpected build[0]: %+v", schema.Build[0])
	}
}

func TestParseSchemaText_TimestampComponent(t *testing.T) {
	schema, err := ParseSchemaText("core: [ts(YYYY), ts(MM), ts(DD), patch]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if schema.Core[0].Kind != KindTimestamp || schema.Core[0].TimestampPattern != "YYYY" {
		t.Errorf("unexpected core[0]: %+v", schema.Core[0])
	}
}

func TestParseSchemaText_ExplicitPrecedence(t *testing.T) {
	schema, err := ParseSchemaText("core: [major, minor, patch]\nprecedence: [major, minor]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(schema.PrecedenceOrder) != 2 || schema.PrecedenceOrder[1] != "minor" {
		t.Errorf("unexpected precedence order: %v", schema.PrecedenceOrder)
	}
}

func TestParseSchemaText_DefaultPrecedenceDerivedFromCore(t *testing.T) {
	schema, err := ParseSchemaText("core: [major, minor, patch]\nextra_core: [pre_release]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"major", "minor", "patch", "pre_release"}
	if len(schema.PrecedenceOrder) != len(want) {
		t.Fatalf("got %v, want %v", schema.PrecedenceOrder, want)
	}
	for i := range want {
		if schema.PrecedenceOrder[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, schema.PrecedenceOrder[i], want[i])
		}
	}
}

func TestParseSchemaText_UnknownSection(t *testing.T) {
	if _, err := ParseSchemaText("bogus: [major]"); err == nil {
		t.Fatal("expected error for unknown section")
	}
}

func TestParseSchemaText_EmptyIsError(t *testing.T) {
	if _, err := ParseSchemaText("   "); err == nil {
		t.Fatal("expected error for empty schema text")
	}
}

func TestResolvePreset_UnknownName(t *testing.T) {
	if _, err := ResolvePreset("nonsense", 1); err == nil {
		t.Fatal("expected UnknownSchemaError")
	}
}

func TestResolvePreset_StandardTiers(t *testing.T) {
	tier1 := standardSchema(1)
	if len(tier1.ExtraCore) != 0 || len(tier1.Build) != 0 {
		t.Errorf("tier 1 should have no extra_core/build, got %+v", tier1)
	}
	tier3 := standardSchema(3)
	if len(tier3.ExtraCore) != 4 {
		t.Errorf("tier 3 extra_core should have 4 positions, got %d", len(tier3.ExtraCore))
	}
}

func TestCalverSchema_CoreUsesTimestampsAndPatch(t *testing.T) {
	schema := calverSchema(1)
	if schema.Core[3].Kind != KindVar || schema.Core[3].VarName != "patch" {
		t.Errorf("expected last core position to be patch, got %+v", schema.Core[3])
	}
}
