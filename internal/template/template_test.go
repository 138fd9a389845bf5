package template

import (
	"strings"
	"testing"

	"github.com/zerv-cli/zerv/internal/version"
)

func mustZerv(t *testing.T, tier int, vars version.ZervVars) *version.Zerv {
	t.Helper()
	schema, err := version.ResolvePreset("standard", tier)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	z, err := version.New(schema, vars)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return z
}

func TestRender_SubstitutesCoreFields(t *testing.T) {
	z := mustZerv(t, 1, version.ZervVars{Major: 1, Minor: 2, Patch: 3})
	out, err := Render("{{major}}.{{minor}}.{{patch}}", z)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1.2.3" {
		t.Errorf("got %q, want %q", out, "1.2.3")
	}
}

func TestRender_DirtyConvenienceVariants(t *testing.T) {
	dev := uint64(1)
	vars := version.ZervVars{Major: 1, Dirty: true, Dev: &dev}
	z := mustZerv(t, 3, vars)
	out, err := Render("{{dirty_with_dash}}{{dirty_with_dot}}", z)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "-dirty.dirty" {
		t.Errorf("got %q, want %q", out, "-dirty.dirty")
	}
}

func TestRender_ShortHashConvenienceVariants(t *testing.T) {
	dev := uint64(1)
	vars := version.ZervVars{Major: 1, BumpedCommitHashShort: "abc1234", Dev: &dev}
	z := mustZerv(t, 3, vars)
	out, err := Render("{{short_hash_with_dot}} {{short_hash_with_dash}}", z)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != ".abc1234 -abc1234" {
		t.Errorf("got %q, want %q", out, ".abc1234 -abc1234")
	}
}

func TestRender_CustomFieldReachableViaDottedPath(t *testing.T) {
	vars := version.ZervVars{Major: 1}
	vars.SetCustomField("release.channel", "nightly")
	z := mustZerv(t, 1, vars)
	out, err := Render("{{custom.release.channel}}", z)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "nightly" {
		t.Errorf("got %q, want %q", out, "nightly")
	}
}

func TestRender_HashingHelperProducesSha256(t *testing.T) {
	dev := uint64(1)
	vars := version.ZervVars{Major: 1, BumpedCommitHash: "deadbeef", Dev: &dev}
	z := mustZerv(t, 3, vars)
	out, err := Render("{{bumped_commit_hash_sha256}}", z)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 64 {
		t.Errorf("expected a 64-char hex digest, got %q", out)
	}
}

func TestRender_MissingTimestampRendersEmptyNotError(t *testing.T) {
	vars := version.ZervVars{Major: 1}
	z := mustZerv(t, 1, vars)
	out, err := Render("[{{bumped_year}}]", z)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "[]" {
		t.Errorf("got %q, want %q", out, "[]")
	}
}

func TestRender_InvalidTemplateIsTemplateError(t *testing.T) {
	z := mustZerv(t, 1, version.ZervVars{Major: 1})
	_, err := Render("{{#unterminated", z)
	if err == nil {
		t.Fatal("expected a template error for malformed mustache")
	}
	if !strings.Contains(err.Error(), "template error") {
		t.Errorf("expected template error framing, got %v", err)
	}
}
