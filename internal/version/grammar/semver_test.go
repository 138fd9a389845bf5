package grammar

import (
	"testing"

	"github.com/zerv-cli/zerv/internal/version"
)

func zervFor(t *testing.T, schemaTier int, vars version.ZervVars) *version.Zerv {
	t.Helper()
	schema, err := version.ResolvePreset("standard", schemaTier)
	if err != nil {
		t.Fatalf("unexpected error resolving preset: %v", err)
	}
	z, err := version.New(schema, vars)
	if err != nil {
		t.Fatalf("unexpected error constructing zerv: %v", err)
	}
	return z
}

func TestEmitSemVer_CleanTaggedCommit(t *testing.T) {
	z := zervFor(t, 1, version.ZervVars{Major: 1, Minor: 2, Patch: 3})
	got, err := EmitSemVer(z)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1.2.3" {
		t.Errorf("got %q, want %q", got, "1.2.3")
	}
}

func TestEmitSemVer_DistancePrependsPostAndBuildMetadata(t *testing.T) {
	post := uint64(5)
	vars := version.ZervVars{
		Major: 1, Minor: 2, Patch: 3,
		Post:                  &post,
		BumpedBranch:          "main",
		BumpedCommitHashShort: "abc1234",
	}
	z := zervFor(t, 2, vars)
	got, err := EmitSemVer(z)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "1.2.3-post.5+main.abc1234"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitSemVer_DirtyIncludesDevAndDistanceInBuild(t *testing.T) {
	post := uint64(5)
	dev := uint64(1700000000)
	vars := version.ZervVars{
		Major: 1, Minor: 2, Patch: 3,
		Post: &post, Dev: &dev,
		Distance:              5,
		BumpedBranch:          "feat",
		BumpedCommitHashShort: "def5678",
	}
	z := zervFor(t, 3, vars)
	got, err := EmitSemVer(z)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "1.2.3-post.5.dev.1700000000+feat.5.def5678"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitSemVer_PreReleaseBeforePostAndDev(t *testing.T) {
	post := uint64(1)
	dev := uint64(2)
	vars := version.ZervVars{
		Major: 2, Minor: 0, Patch: 0,
		PreRelease:            &version.PreRelease{Label: version.Rc, Number: 1},
		Post:                  &post,
		Dev:                   &dev,
		BumpedBranch:          "release",
		BumpedCommitHashShort: "cafe001",
	}
	z := zervFor(t, 2, vars)
	got, err := EmitSemVer(z)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "2.0.0-rc.1.post.1.dev.2+release.cafe001"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitSemVer_RejectsCalverCore(t *testing.T) {
	schema, err := version.ResolvePreset("calver", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ts := uint64(1700000000)
	z := &version.Zerv{Schema: schema, Vars: version.ZervVars{Patch: 3, LastTimestamp: &ts, BumpedTimestamp: &ts}}
	if _, err := EmitSemVer(z); err == nil {
		t.Fatal("expected an error converting a calver schema to semver")
	}
}
