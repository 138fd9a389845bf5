package version

import "github.com/zerv-cli/zerv/internal/zerrors"

// Schema is the shape a Zerv renders its fields into (§4.4). Core
// holds the numeric-precedence positions, ExtraCore holds pre-release/
// post/dev style positions that still participate in precedence
// ordering, and Build holds VCS metadata that never affects it.
type Schema struct {
	Core      []Component
	ExtraCore []Component
	Build     []Component

	// PrecedenceOrder names, in comparison priority order, the fields
	// two Zervs sharing this schema are compared on. Presets carry a
	// fixed list; inline schemas may give it explicitly and otherwise
	// derive it from the core and extra_core var() positions.
	PrecedenceOrder []string
}

// AllComponents returns every component across core, extra_core and
// build, in emission order.
func (s Schema) AllComponents() []Component {
	all := make([]Component, 0, len(s.Core)+len(s.ExtraCore)+len(s.Build))
	all = append(all, s.Core...)
	all = append(all, s.ExtraCore...)
	all = append(all, s.Build...)
	return all
}

// ResolvePreset looks up a built-in schema preset by name at the given
// tier. Built-in presets are "standard" (also the empty name) and
// "calver"; anything else is an UnknownSchemaError. Config-registered
// presets are looked up by the caller, not here.
func ResolvePreset(name string, tier int) (Schema, error) {
	switch name {
	case "standard", "":
		return standardSchema(tier), nil
	case "calver":
		return calverSchema(tier), nil
	default:
		return Schema{}, &zerrors.UnknownSchemaError{Name: name}
	}
}

func standardSchema(tier int) Schema {
	core := []Component{Var("major"), Var("minor"), Var("patch")}
	switch tier {
	case 1:
		return Schema{
			Core:            core,
			PrecedenceOrder: []string{"major", "minor", "patch"},
		}
	case 2:
		return Schema{
			Core:      core,
			ExtraCore: []Component{OptionalVar("epoch"), OptionalVar("pre_release"), Var("post")},
			Build:     []Component{OptionalVar("bumped_branch"), OptionalVar("bumped_commit_hash_short")},
			PrecedenceOrder: []string{
				"epoch", "major", "minor", "patch", "pre_release", "post",
			},
		}
	default: // tier 3
		return Schema{
			Core:      core,
			ExtraCore: []Component{OptionalVar("epoch"), OptionalVar("pre_release"), OptionalVar("post"), Var("dev")},
			Build:     []Component{OptionalVar("bumped_branch"), OptionalVar("distance"), OptionalVar("bumped_commit_hash_short")},
			PrecedenceOrder: []string{
				"epoch", "major", "minor", "patch", "pre_release", "post", "dev",
			},
		}
	}
}

func calverSchema(tier int) Schema {
	core := []Component{Ts("YYYY"), Ts("MM"), Ts("DD"), Var("patch")}
	switch tier {
	case 1:
		return Schema{
			Core:            core,
			PrecedenceOrder: []string{"last_timestamp", "patch"},
		}
	case 2:
		return Schema{
			Core:      core,
			ExtraCore: []Component{OptionalVar("epoch"), OptionalVar("pre_release"), Var("post")},
			Build:     []Component{OptionalVar("bumped_branch"), OptionalVar("bumped_commit_hash_short")},
			PrecedenceOrder: []string{
				"epoch", "last_timestamp", "patch", "pre_release", "post",
			},
		}
	default: // tier 3
		return Schema{
			Core:      core,
			ExtraCore: []Component{OptionalVar("epoch"), OptionalVar("pre_release"), OptionalVar("post"), Var("dev")},
			Build:     []Component{OptionalVar("bumped_branch"), OptionalVar("distance"), OptionalVar("bumped_commit_hash_short")},
			PrecedenceOrder: []string{
				"epoch", "last_timestamp", "patch", "pre_release", "post", "dev",
			},
		}
	}
}
