package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/zerv-cli/zerv/internal/zerrors"
)

// ParseSchemaText parses the small RON-like schema language accepted
// by --schema-ron (§4.4):
//
//	core: [var(major), var(minor), var(patch)]
//	extra_core: [var(pre_release), var(post)]
//	build: [var(bumped_branch), var(bumped_commit_hash_short)]
//	precedence: [major, minor, patch, pre_release, post]
//
// A bare identifier inside a list (e.g. "major" instead of
// "var(major)") is shorthand for var(major). Sections may appear in
// any order; core/extra_core/build default to empty, precedence
// defaults to core's field names followed by extra_core's.
func ParseSchemaText(text string) (Schema, error) {
	var schema Schema
	var explicitPrecedence []string
	haveCore, haveExtra, haveBuild := false, false, false

	for _, line := range splitStatements(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, body, err := splitSection(line)
		if err != nil {
			return Schema{}, &zerrors.SchemaParseError{Msg: err.Error()}
		}

		items, err := parseComponentList(body)
		if err != nil {
			return Schema{}, &zerrors.SchemaParseError{Msg: fmt.Sprintf("%s: %v", name, err)}
		}

		switch name {
		case "core":
			schema.Core = items
			haveCore = true
		case "extra_core":
			schema.ExtraCore = items
			haveExtra = true
		case "build":
			schema.Build = items
			haveBuild = true
		case "precedence":
			for _, c := range items {
				if c.Kind != KindVar {
					return Schema{}, &zerrors.SchemaParseError{Msg: "precedence entries must be bare field names"}
				}
				explicitPrecedence = append(explicitPrecedence, c.VarName)
			}
		default:
			return Schema{}, &zerrors.SchemaParseError{Msg: fmt.Sprintf("unknown section %q", name)}
		}
	}

	if !haveCore && !haveExtra && !haveBuild {
		return Schema{}, &zerrors.SchemaParseError{Msg: "schema text defines no sections"}
	}

	if explicitPrecedence != nil {
		schema.PrecedenceOrder = explicitPrecedence
	} else {
		schema.PrecedenceOrder = defaultPrecedence(schema)
	}

	return schema, nil
}

func defaultPrecedence(s Schema) []string {
	var order []string
	for _, c := range append(append([]Component{}, s.Core...), s.ExtraCore...) {
		if c.Kind == KindVar {
			order = append(order, c.VarName)
		}
	}
	return order
}

// splitStatements breaks schema text into "name: [...]" lines, one
// statement per line; blank lines are dropped. A trailing comma after a
// statement is tolerated by sectionRe, but two statements on one line
// are not split apart.
func splitStatements(text string) []string {
	var out []string
	for _, raw := range strings.Split(text, "\n") {
		raw = strings.TrimSpace(raw)
		if raw != "" {
			out = append(out, raw)
		}
	}
	return out
}

var sectionRe = regexp.MustCompile(`^(\w+)\s*:\s*\[(.*)\]\s*,?$`)

func splitSection(line string) (name, body string, err error) {
	m := sectionRe.FindStringSubmatch(line)
	if m == nil {
		return "", "", fmt.Errorf("expected 'name: [...]', got %q", line)
	}
	return m[1], m[2], nil
}

var (
	strCallRe = regexp.MustCompile(`^str\((.*)\)$`)
	intCallRe = regexp.MustCompile(`^int\((-?\d+)\)$`)
	varCallRe = regexp.MustCompile(`^var\(([\w.]+)\)$`)
	tsCallRe  = regexp.MustCompile(`^ts\((.*)\)$`)
	bareRe    = regexp.MustCompile(`^[\w.]+$`)
)

// parseComponentList parses a comma-separated component list body
// (the text between the brackets of a section).
func parseComponentList(body string) ([]Component, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, nil
	}

	tokens := splitTopLevelCommas(body)
	items := make([]Component, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		c, err := parseComponent(tok)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, nil
}

// ParseComponent parses a single str(...)/int(...)/var(...)/ts(...)
// or bare-identifier token into a Component. Exported for the
// internal interchange codec, which stores each schema position as
// this same textual form.
func ParseComponent(tok string) (Component, error) {
	return parseComponent(tok)
}

func parseComponent(tok string) (Component, error) {
	optional := false
	if strings.HasSuffix(tok, "?") {
		optional = true
		tok = strings.TrimSuffix(tok, "?")
	}

	var c Component
	switch {
	case strCallRe.MatchString(tok):
		c = Str(strCallRe.FindStringSubmatch(tok)[1])
	case intCallRe.MatchString(tok):
		n, err := strconv.ParseInt(intCallRe.FindStringSubmatch(tok)[1], 10, 64)
		if err != nil {
			return Component{}, fmt.Errorf("invalid int literal %q", tok)
		}
		c = Int(n)
	case varCallRe.MatchString(tok):
		c = Var(varCallRe.FindStringSubmatch(tok)[1])
	case tsCallRe.MatchString(tok):
		c = Ts(tsCallRe.FindStringSubmatch(tok)[1])
	case bareRe.MatchString(tok):
		c = Var(tok)
	default:
		return Component{}, fmt.Errorf("unrecognized component %q", tok)
	}
	c.Optional = optional
	return c, nil
}

// splitTopLevelCommas splits on commas that are not nested inside a
// str(...)/int(...)/var(...)/ts(...) call's parentheses.
func splitTopLevelCommas(s string) []string {
	var out []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, s[start:])
	return out
}
