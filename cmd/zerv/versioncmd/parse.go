package versioncmd

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/zerv-cli/zerv/internal/version"
	"github.com/zerv-cli/zerv/internal/zerrors"
)

// optionalBumpAmount reads a --bump-X[=N] flag, returning (amount, set).
// Absence of a value defaults the amount to 1, matching §4.5's "adds N
// (default 1)".
func optionalBumpAmount(cmd *cli.Command, name string) (uint64, bool, error) {
	if !cmd.IsSet(name) {
		return 0, false, nil
	}
	raw := cmd.String(name)
	if raw == "" {
		return 1, true, nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false, &zerrors.InvalidVersionError{Msg: "--" + name + " expects an unsigned integer, got " + raw}
	}
	return n, true, nil
}

// buildAbsoluteOverrides reads stage-1 override flags off cmd.
func buildAbsoluteOverrides(cmd *cli.Command) (version.AbsoluteOverrides, error) {
	var ov version.AbsoluteOverrides

	if cmd.IsSet("major") {
		v := cmd.Uint64("major")
		ov.Major = &v
	}
	if cmd.IsSet("minor") {
		v := cmd.Uint64("minor")
		ov.Minor = &v
	}
	if cmd.IsSet("patch") {
		v := cmd.Uint64("patch")
		ov.Patch = &v
	}
	if cmd.IsSet("epoch") {
		v := cmd.Uint64("epoch")
		ov.Epoch = &v
	}
	if cmd.IsSet("distance") {
		v := cmd.Uint64("distance")
		ov.Distance = &v
	}
	if label := cmd.String("pre-release-label"); label != "" {
		if !version.ValidateLabelChars(label) {
			return ov, &zerrors.InvalidVersionError{Msg: "pre-release label contains characters other than ASCII alphanumerics and hyphen"}
		}
		l, ok := version.ParsePreReleaseLabel(label)
		if !ok {
			l = version.PreReleaseLabel(label)
		}
		ov.PreReleaseLabel = &l
	}
	if tv := cmd.String("tag-version"); tv != "" {
		ov.TagVersion = &tv
		ov.TagVersionFormat = version.InputFormat(cmd.String("input-format"))
	}

	custom, err := parseCustomFlags(cmd.StringSlice("custom"))
	if err != nil {
		return ov, err
	}
	ov.Custom = custom

	ov.Clean = cmd.Bool("clean")
	ov.DirtyFlagSet = cmd.IsSet("dirty")
	ov.NoDirtyFlagSet = cmd.IsSet("no-dirty")

	return ov, nil
}

// parseCustomFlags turns repeated --custom dotted.path=jsonvalue flags
// into a path->value map; the value is parsed as JSON so numbers,
// booleans, strings, and small objects/arrays all work, falling back to
// a bare string when it isn't valid JSON (so --custom a.b=beta need not
// be quoted).
func parseCustomFlags(raw []string) (map[string]interface{}, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string]interface{}, len(raw))
	for _, kv := range raw {
		path, val, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, &zerrors.InvalidVersionError{Msg: "--custom expects path=value, got " + kv}
		}
		var decoded interface{}
		if err := json.Unmarshal([]byte(val), &decoded); err != nil {
			decoded = val
		}
		out[path] = decoded
	}
	return out, nil
}

// buildPositionOverrides reads stage-2 --core/--extra-core/--build
// i=literal flags off cmd.
func buildPositionOverrides(cmd *cli.Command) (version.PositionOverrides, error) {
	var pos version.PositionOverrides
	var err error

	if pos.Core, err = parsePositionFlags(cmd.StringSlice("core")); err != nil {
		return pos, err
	}
	if pos.ExtraCore, err = parsePositionFlags(cmd.StringSlice("extra-core")); err != nil {
		return pos, err
	}
	if pos.Build, err = parsePositionFlags(cmd.StringSlice("build")); err != nil {
		return pos, err
	}
	return pos, nil
}

func parsePositionFlags(raw []string) (map[int]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[int]string, len(raw))
	for _, kv := range raw {
		idxStr, val, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, &zerrors.InvalidVersionError{Msg: "expected i=value, got " + kv}
		}
		idx, err := strconv.Atoi(idxStr)
		if err != nil {
			return nil, &zerrors.InvalidVersionError{Msg: "expected integer position, got " + idxStr}
		}
		out[idx] = val
	}
	return out, nil
}

// buildBumpRequest reads stage-3 --bump-* flags off cmd.
func buildBumpRequest(cmd *cli.Command) (version.BumpRequest, error) {
	var req version.BumpRequest

	if n, set, err := optionalBumpAmount(cmd, "bump-epoch"); err != nil {
		return req, err
	} else if set {
		req.Epoch, req.EpochAmount = true, &n
	}
	if n, set, err := optionalBumpAmount(cmd, "bump-major"); err != nil {
		return req, err
	} else if set {
		req.Major, req.MajorAmount = true, &n
	}
	if n, set, err := optionalBumpAmount(cmd, "bump-minor"); err != nil {
		return req, err
	} else if set {
		req.Minor, req.MinorAmount = true, &n
	}
	if n, set, err := optionalBumpAmount(cmd, "bump-patch"); err != nil {
		return req, err
	} else if set {
		req.Patch, req.PatchAmount = true, &n
	}
	if n, set, err := optionalBumpAmount(cmd, "bump-post"); err != nil {
		return req, err
	} else if set {
		req.Post, req.PostAmount = true, &n
	}
	if n, set, err := optionalBumpAmount(cmd, "bump-dev"); err != nil {
		return req, err
	} else if set {
		req.Dev, req.DevAmount = true, &n
	}

	if n, set, err := optionalBumpAmount(cmd, "bump-pre-release-num"); err != nil {
		return req, err
	} else if set {
		req.PreReleaseNumber = &n
	}

	if label := cmd.String("bump-pre-release-label"); label != "" {
		if !version.ValidateLabelChars(label) {
			return req, &zerrors.InvalidVersionError{Msg: "pre-release label contains characters other than ASCII alphanumerics and hyphen"}
		}
		l, ok := version.ParsePreReleaseLabel(label)
		if !ok {
			l = version.PreReleaseLabel(label)
		}
		req.PreReleaseLabel = &l
	}

	req.BumpContextFlagSet = cmd.Bool("bump-context")
	req.NoBumpContextFlagSet = cmd.Bool("no-bump-context")

	return req, nil
}
