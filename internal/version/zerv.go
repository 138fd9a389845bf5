package version

import "github.com/zerv-cli/zerv/internal/zerrors"

// Zerv pairs a Schema with the ZervVars it renders, the unit the
// override/bump engine and the emitter both operate on.
type Zerv struct {
	Schema Schema
	Vars   ZervVars
}

// New constructs a Zerv and validates it: every var() component must
// resolve against Vars (including dotted custom paths), and every
// ts() component must have a resolvable timestamp source.
func New(schema Schema, vars ZervVars) (*Zerv, error) {
	z := &Zerv{Schema: schema, Vars: vars}
	if err := z.Validate(); err != nil {
		return nil, err
	}
	return z, nil
}

// Validate re-checks field resolvability; called again after the
// override/bump engine mutates Vars, since a user override can
// introduce a dangling reference (e.g. --custom without the field a
// custom schema expects).
func (z *Zerv) Validate() error {
	preferLast := isCalverLike(z.Schema)
	for _, c := range z.Schema.AllComponents() {
		switch c.Kind {
		case KindVar:
			if _, ok := z.Vars.Field(c.VarName); !ok && !c.Optional {
				return &zerrors.MissingFieldError{Field: c.VarName}
			}
		case KindTimestamp:
			if _, ok := z.Vars.ResolvedTimestamp(preferLast); !ok && !c.Optional {
				return &zerrors.MissingFieldError{Field: "timestamp"}
			}
		}
	}
	return nil
}

// isCalverLike reports whether a schema's core opens with timestamp
// components, which read last_timestamp by default (§9) rather than
// bumped_timestamp.
func isCalverLike(s Schema) bool {
	return len(s.Core) > 0 && s.Core[0].Kind == KindTimestamp
}
