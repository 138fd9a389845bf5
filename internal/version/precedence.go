package version

import "github.com/zerv-cli/zerv/internal/zerrors"

// Compare orders two Zervs sharing the same schema by walking
// schema.PrecedenceOrder field-by-field, the same "compare until a
// segment differs" shape as PEP440's epoch/release/pre/post/dev chain
// (adapted here to an arbitrary, schema-declared field list rather
// than PEP440's five fixed segments). It returns <0, 0, >0 the way
// strcmp does.
func Compare(a, b *Zerv) (int, error) {
	for _, field := range a.Schema.PrecedenceOrder {
		av, aok := a.Vars.Field(field)
		bv, bok := b.Vars.Field(field)
		d, err := compareFieldValues(field, av, aok, bv, bok)
		if err != nil {
			return 0, err
		}
		if d != 0 {
			return d, nil
		}
	}
	return 0, nil
}

func compareFieldValues(field string, av interface{}, aok bool, bv interface{}, bok bool) (int, error) {
	// An absent field sorts lower than a present one, for every field
	// alike. This matches PEP440 for post but not for pre/dev, where
	// grammar.ComparePep440 sorts the absent segment higher.
	switch {
	case !aok && !bok:
		return 0, nil
	case !aok && bok:
		return -1, nil
	case aok && !bok:
		return 1, nil
	}

	switch x := av.(type) {
	case uint64:
		y, ok := bv.(uint64)
		if !ok {
			return 0, &zerrors.InvalidVersionError{Msg: "incomparable values for field " + field}
		}
		return cmpUint64(x, y), nil
	case bool:
		y, ok := bv.(bool)
		if !ok {
			return 0, &zerrors.InvalidVersionError{Msg: "incomparable values for field " + field}
		}
		return cmpBool(x, y), nil
	case string:
		y, ok := bv.(string)
		if !ok {
			return 0, &zerrors.InvalidVersionError{Msg: "incomparable values for field " + field}
		}
		return cmpString(x, y), nil
	case PreRelease:
		y, ok := bv.(PreRelease)
		if !ok {
			return 0, &zerrors.InvalidVersionError{Msg: "incomparable values for field " + field}
		}
		if d := x.Label.Rank() - y.Label.Rank(); d != 0 {
			return d, nil
		}
		return cmpUint64(x.Number, y.Number), nil
	default:
		return 0, &zerrors.InvalidVersionError{Msg: "incomparable field " + field}
	}
}

func cmpUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
