package version

import (
	"fmt"
	"strconv"
	"time"

	"github.com/zerv-cli/zerv/internal/zerrors"
)

// RenderComponent turns one schema Component into its textual value
// given vars, used by every grammar emitter and by the template
// collaborator. preferLast selects whether a ts() component reads
// last_timestamp ahead of bumped_timestamp (CalVer-style schemas do;
// everything else doesn't, §9).
func RenderComponent(c Component, vars *ZervVars, preferLast bool) (string, error) {
	switch c.Kind {
	case KindStr:
		return c.Str, nil
	case KindInt:
		return strconv.FormatInt(c.Int, 10), nil
	case KindVar:
		val, ok := vars.Field(c.VarName)
		if !ok {
			if c.Optional {
				return "", nil
			}
			return "", &zerrors.MissingFieldError{Field: c.VarName}
		}
		return formatValue(val), nil
	case KindTimestamp:
		ts, ok := vars.ResolvedTimestamp(preferLast)
		if !ok {
			if c.Optional {
				return "", nil
			}
			return "", &zerrors.MissingFieldError{Field: "timestamp"}
		}
		return formatTimestamp(ts, c.TimestampPattern), nil
	default:
		return "", &zerrors.InvalidVersionError{Msg: "unknown component kind"}
	}
}

func formatValue(val interface{}) string {
	switch v := val.(type) {
	case uint64:
		return strconv.FormatUint(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	case PreRelease:
		return fmt.Sprintf("%s.%d", v.Label, v.Number)
	case PreReleaseLabel:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatTimestamp renders a Unix-seconds timestamp under one of the
// named patterns or a literal "%"-prefixed strftime-style pattern.
func formatTimestamp(ts uint64, pattern string) string {
	t := time.Unix(int64(ts), 0).UTC()

	switch pattern {
	case "YYYY":
		return t.Format("2006")
	case "YY":
		return t.Format("06")
	case "MM":
		return t.Format("01")
	case "DD":
		return t.Format("02")
	case "HH":
		return t.Format("15")
	case "mm":
		return t.Format("04")
	case "SS":
		return t.Format("05")
	case "compact_date":
		return t.Format("20060102")
	case "compact_datetime":
		return t.Format("20060102150405")
	default:
		return strftime(t, pattern)
	}
}

// strftime supports the small subset of strftime directives zerv's
// timestamp components need.
func strftime(t time.Time, pattern string) string {
	out := make([]byte, 0, len(pattern)*2)
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' || i+1 >= len(pattern) {
			out = append(out, pattern[i])
			continue
		}
		i++
		switch pattern[i] {
		case 'Y':
			out = append(out, t.Format("2006")...)
		case 'y':
			out = append(out, t.Format("06")...)
		case 'm':
			out = append(out, t.Format("01")...)
		case 'd':
			out = append(out, t.Format("02")...)
		case 'H':
			out = append(out, t.Format("15")...)
		case 'M':
			out = append(out, t.Format("04")...)
		case 'S':
			out = append(out, t.Format("05")...)
		case '%':
			out = append(out, '%')
		default:
			out = append(out, '%', pattern[i])
		}
	}
	return string(out)
}
