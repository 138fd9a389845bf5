package grammar

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/zerv-cli/zerv/internal/version"
	"github.com/zerv-cli/zerv/internal/zerrors"
)

// internalDoc is zerv's own round-trippable interchange format: a
// direct, diffable TOML encoding of a Schema+ZervVars pair, used by
// `--output-format zerv` and read back by `--source stdin` so a
// second zerv invocation can re-parse exactly what the first emitted
// (§6's pipe round-trip contract). The exact textual form is
// implementation-defined; only emit(parse(x)) == x is guaranteed.
type internalDoc struct {
	Schema internalSchema `toml:"schema"`
	Vars   internalVars   `toml:"vars"`
}

type internalSchema struct {
	Core            []string `toml:"core"`
	ExtraCore       []string `toml:"extra_core"`
	Build           []string `toml:"build"`
	PrecedenceOrder []string `toml:"precedence_order"`
}

type internalVars struct {
	Major                 uint64                 `toml:"major"`
	Minor                 uint64                 `toml:"minor"`
	Patch                 uint64                 `toml:"patch"`
	Epoch                 *uint64                `toml:"epoch,omitempty"`
	PreReleaseLabel       string                 `toml:"pre_release_label,omitempty"`
	PreReleaseNumber      *uint64                `toml:"pre_release_number,omitempty"`
	Post                  *uint64                `toml:"post,omitempty"`
	Dev                   *uint64                `toml:"dev,omitempty"`
	Distance              uint64                 `toml:"distance"`
	Dirty                 bool                   `toml:"dirty"`
	BumpedBranch          string                 `toml:"bumped_branch,omitempty"`
	BumpedCommitHash      string                 `toml:"bumped_commit_hash,omitempty"`
	BumpedCommitHashShort string                 `toml:"bumped_commit_hash_short,omitempty"`
	BumpedTimestamp       *uint64                `toml:"bumped_timestamp,omitempty"`
	LastBranch            string                 `toml:"last_branch,omitempty"`
	LastCommitHash        string                 `toml:"last_commit_hash,omitempty"`
	LastTimestamp         *uint64                `toml:"last_timestamp,omitempty"`
	Custom                map[string]interface{} `toml:"custom,omitempty"`
}

// EmitInternal serializes z into zerv's internal interchange format.
func EmitInternal(z *version.Zerv) (string, error) {
	doc := internalDoc{
		Schema: internalSchema{
			Core:            componentStrings(z.Schema.Core),
			ExtraCore:       componentStrings(z.Schema.ExtraCore),
			Build:           componentStrings(z.Schema.Build),
			PrecedenceOrder: z.Schema.PrecedenceOrder,
		},
		Vars: internalVars{
			Major:                 z.Vars.Major,
			Minor:                 z.Vars.Minor,
			Patch:                 z.Vars.Patch,
			Epoch:                 z.Vars.Epoch,
			Post:                  z.Vars.Post,
			Dev:                   z.Vars.Dev,
			Distance:              z.Vars.Distance,
			Dirty:                 z.Vars.Dirty,
			BumpedBranch:          z.Vars.BumpedBranch,
			BumpedCommitHash:      z.Vars.BumpedCommitHash,
			BumpedCommitHashShort: z.Vars.BumpedCommitHashShort,
			BumpedTimestamp:       z.Vars.BumpedTimestamp,
			LastBranch:            z.Vars.LastBranch,
			LastCommitHash:        z.Vars.LastCommitHash,
			LastTimestamp:         z.Vars.LastTimestamp,
			Custom:                z.Vars.Custom,
		},
	}
	if z.Vars.PreRelease != nil {
		doc.Vars.PreReleaseLabel = string(z.Vars.PreRelease.Label)
		n := z.Vars.PreRelease.Number
		doc.Vars.PreReleaseNumber = &n
	}

	out, err := toml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encoding internal form: %w", err)
	}
	return string(out), nil
}

// ParseInternal deserializes zerv's internal interchange format back
// into a Zerv, the counterpart EmitInternal needs for the §6 pipe
// contract (`zerv ... | zerv --source stdin ...`).
func ParseInternal(text string) (*version.Zerv, error) {
	var doc internalDoc
	if err := toml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, &zerrors.ParseError{Tag: text, Format: "zerv-internal"}
	}

	core, err := parseComponents(doc.Schema.Core)
	if err != nil {
		return nil, err
	}
	extraCore, err := parseComponents(doc.Schema.ExtraCore)
	if err != nil {
		return nil, err
	}
	build, err := parseComponents(doc.Schema.Build)
	if err != nil {
		return nil, err
	}

	schema := version.Schema{
		Core:            core,
		ExtraCore:       extraCore,
		Build:           build,
		PrecedenceOrder: doc.Schema.PrecedenceOrder,
	}

	vars := version.ZervVars{
		Major:                 doc.Vars.Major,
		Minor:                 doc.Vars.Minor,
		Patch:                 doc.Vars.Patch,
		Epoch:                 doc.Vars.Epoch,
		Post:                  doc.Vars.Post,
		Dev:                   doc.Vars.Dev,
		Distance:              doc.Vars.Distance,
		Dirty:                 doc.Vars.Dirty,
		BumpedBranch:          doc.Vars.BumpedBranch,
		BumpedCommitHash:      doc.Vars.BumpedCommitHash,
		BumpedCommitHashShort: doc.Vars.BumpedCommitHashShort,
		BumpedTimestamp:       doc.Vars.BumpedTimestamp,
		LastBranch:            doc.Vars.LastBranch,
		LastCommitHash:        doc.Vars.LastCommitHash,
		LastTimestamp:         doc.Vars.LastTimestamp,
		Custom:                doc.Vars.Custom,
	}
	if doc.Vars.PreReleaseNumber != nil {
		vars.PreRelease = &version.PreRelease{
			Label:  version.PreReleaseLabel(doc.Vars.PreReleaseLabel),
			Number: *doc.Vars.PreReleaseNumber,
		}
	}

	return version.New(schema, vars)
}

func componentStrings(cs []version.Component) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}

func parseComponents(strs []string) ([]version.Component, error) {
	out := make([]version.Component, len(strs))
	for i, s := range strs {
		c, err := version.ParseComponent(s)
		if err != nil {
			return nil, &zerrors.SchemaParseError{Msg: err.Error()}
		}
		out[i] = c
	}
	return out, nil
}
