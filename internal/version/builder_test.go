package version

import "testing"

func TestClassifyTier(t *testing.T) {
	if ClassifyTier(true, 0) != TierDirty {
		t.Error("dirty should always be tier 3")
	}
	if ClassifyTier(false, 5) != TierDistance {
		t.Error("distance > 0 should be tier 2")
	}
	if ClassifyTier(false, 0) != TierClean {
		t.Error("clean tag should be tier 1")
	}
}

func TestBuildVars_Tier2PrepopulatesPostFromDistance(t *testing.T) {
	tag := &TagVersion{Major: 1, Minor: 2, Patch: 3}
	in := VcsInputs{
		HasTag: true, Distance: 5, Dirty: false,
		HeadBranch: "main", HeadCommitHashShort: "abc1234", HeadTimestamp: 1700000000,
	}
	vars := BuildVars(tag, in, TierDistance)
	if vars.Post == nil || *vars.Post != 5 {
		t.Errorf("expected post=5, got %v", vars.Post)
	}
	if vars.Dev != nil {
		t.Errorf("tier 2 should not populate dev, got %v", vars.Dev)
	}
}

func TestBuildVars_Tier3PrepopulatesDevFromHeadTimestamp(t *testing.T) {
	tag := &TagVersion{Major: 1, Minor: 2, Patch: 3}
	in := VcsInputs{
		HasTag: true, Distance: 5, Dirty: true,
		HeadBranch: "feat", HeadCommitHashShort: "def5678", HeadTimestamp: 1700000000,
	}
	vars := BuildVars(tag, in, TierDirty)
	if vars.Dev == nil || *vars.Dev != 1700000000 {
		t.Errorf("expected dev=1700000000, got %v", vars.Dev)
	}
	if vars.Post == nil || *vars.Post != 5 {
		t.Errorf("expected post=5, got %v", vars.Post)
	}
}

func TestBuildVars_Tier1NoTagLeavesZeroCore(t *testing.T) {
	in := VcsInputs{HasTag: false, Distance: 0, Dirty: false, HeadTimestamp: 1700000000}
	vars := BuildVars(nil, in, TierClean)
	if vars.Major != 0 || vars.Minor != 0 || vars.Patch != 0 {
		t.Errorf("expected zero core without a tag, got %+v", vars)
	}
}
