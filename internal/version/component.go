// Package version implements the schema-driven version model: the
// tagged Component values a Schema is built from, the ZervVars record
// a Zerv is constructed from, and the tier/override/bump machinery
// that turns VCS state plus user flags into a final Zerv.
package version

import "fmt"

// ComponentKind tags which variant of Component is populated. Go has
// no sum types, so this is the discriminant of a manual tagged union —
// the same shape as SemVersion's flat fields in the teacher's semver
// package, generalized to four alternatives instead of one.
type ComponentKind int

const (
	KindStr ComponentKind = iota
	KindInt
	KindVar
	KindTimestamp
)

func (k ComponentKind) String() string {
	switch k {
	case KindStr:
		return "str"
	case KindInt:
		return "int"
	case KindVar:
		return "var"
	case KindTimestamp:
		return "ts"
	default:
		return "unknown"
	}
}

// Component is one position in a Schema's core/extra_core/build
// sequence. Exactly one of the Kind-specific fields is meaningful,
// selected by Kind.
type Component struct {
	Kind ComponentKind

	// Str literal, meaningful when Kind == KindStr.
	Str string

	// Int literal, meaningful when Kind == KindInt.
	Int int64

	// VarName is a field reference, meaningful when Kind == KindVar.
	// It is either a top-level ZervVars field name (e.g. "major") or a
	// dotted path into Custom (e.g. "custom.release.channel").
	VarName string

	// TimestampPattern selects a timestamp rendering, meaningful when
	// Kind == KindTimestamp: one of the named patterns (YYYY, YY, MM,
	// DD, HH, mm, SS, compact_date, compact_datetime) or a literal
	// "%"-prefixed strftime-style pattern.
	TimestampPattern string

	// Optional marks a var()/ts() position that is allowed to be
	// absent from ZervVars (e.g. epoch, pre_release): Validate skips
	// it instead of returning MissingFieldError, and RenderComponent
	// renders it as the empty string rather than failing.
	Optional bool
}

// Str builds a literal string Component.
func Str(s string) Component { return Component{Kind: KindStr, Str: s} }

// Int builds a literal integer Component.
func Int(n int64) Component { return Component{Kind: KindInt, Int: n} }

// Var builds a field-reference Component.
func Var(name string) Component { return Component{Kind: KindVar, VarName: name} }

// OptionalVar builds a field-reference Component that may be absent
// from ZervVars without that being an error.
func OptionalVar(name string) Component { return Component{Kind: KindVar, VarName: name, Optional: true} }

// Ts builds a timestamp-pattern Component.
func Ts(pattern string) Component { return Component{Kind: KindTimestamp, TimestampPattern: pattern} }

// String renders a Component the way it appears in internal schema
// text (str(...)/int(...)/var(...)/ts(...)), used both by the inline
// schema emitter and in error messages. A trailing "?" round-trips
// Optional.
func (c Component) String() string {
	suffix := ""
	if c.Optional {
		suffix = "?"
	}
	switch c.Kind {
	case KindStr:
		return fmt.Sprintf("str(%s)%s", c.Str, suffix)
	case KindInt:
		return fmt.Sprintf("int(%d)%s", c.Int, suffix)
	case KindVar:
		return fmt.Sprintf("var(%s)%s", c.VarName, suffix)
	case KindTimestamp:
		return fmt.Sprintf("ts(%s)%s", c.TimestampPattern, suffix)
	default:
		return "unknown"
	}
}
