package vcs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/zerv-cli/zerv/internal/cmdrunner"
	"github.com/zerv-cli/zerv/internal/zerrors"
	"github.com/zerv-cli/zerv/internal/zlog"
)

// GitProber implements Prober by spawning the git binary. It never
// uses a Git library — every query is one of the commands named in
// §4.1. The only batched query is the single `git log -1` that reads
// HEAD's hash, short hash and timestamp together; every other field
// comes from its own invocation.
type GitProber struct{}

// NewGitProber returns the default Git-backed Prober.
func NewGitProber() *GitProber { return &GitProber{} }

// FindRoot walks up from dir looking for a .git marker (directory or,
// for worktrees/submodules, file).
func (GitProber) FindRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", &zerrors.IoError{Context: "resolving working directory", Err: err}
	}

	cur := abs
	for {
		if _, err := os.Stat(filepath.Join(cur, ".git")); err == nil {
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &zerrors.RepositoryNotFoundError{Source: "git"}
		}
		cur = parent
	}
}

// Extract produces a Data record for the repository rooted at root.
func (g GitProber) Extract(root string) (*Data, error) {
	ctx := context.Background()
	data := &Data{}

	head, err := g.headInfo(ctx, root)
	if err != nil {
		return nil, err
	}
	data.HeadCommitHash = head.hash
	data.HeadCommitHashShort = head.shortHash
	data.HeadTimestamp = head.timestamp

	branch, err := g.runTrim(ctx, root, "branch", "--show-current")
	if err != nil {
		return nil, classify(err, "git branch --show-current")
	}
	data.HeadBranch = branch // empty means detached

	dirty, err := g.isDirty(ctx, root)
	if err != nil {
		return nil, err
	}
	data.Dirty = dirty

	data.Shallow = g.isShallow(root)
	if data.Shallow {
		zlog.Warn("repository is a shallow clone; distance/tag history may be incomplete")
	}

	tag, err := g.nearestTag(ctx, root)
	if err != nil {
		return nil, err
	}
	if tag == "" {
		// No reachable tag: distance falls back to the total commit
		// count from the repository root to HEAD, so a fresh
		// repository still yields a well-defined tier-2/tier-3 vars
		// record instead of an error.
		totalOut, err := g.runTrim(ctx, root, "rev-list", "--count", "HEAD")
		if err != nil {
			return nil, classify(err, "git rev-list --count HEAD")
		}
		total, convErr := strconv.ParseUint(totalOut, 10, 64)
		if convErr != nil {
			return nil, &zerrors.IoError{Context: "parsing total commit count", Err: convErr}
		}
		data.Distance = uint(total)
		return data, nil
	}
	data.TagName = tag

	tagHash, err := g.runTrim(ctx, root, "rev-list", "-n", "1", tag)
	if err != nil {
		return nil, classify(err, "git rev-list -n 1 "+tag)
	}
	data.TagCommitHash = tagHash

	ts, err := g.tagTimestamp(ctx, root, tag)
	if err != nil {
		return nil, err
	}
	data.TagTimestamp = ts

	data.TagBranch = g.bestEffortTagBranch(ctx, root, tagHash)

	distanceOut, err := g.runTrim(ctx, root, "rev-list", "--count", "refs/tags/"+tag+"..HEAD")
	if err != nil {
		return nil, classify(err, "git rev-list --count")
	}
	distance, convErr := strconv.ParseUint(distanceOut, 10, 64)
	if convErr != nil {
		return nil, &zerrors.IoError{Context: "parsing distance from tag", Err: convErr}
	}
	data.Distance = uint(distance)

	return data, nil
}

type headFields struct {
	hash      string
	shortHash string
	timestamp uint64
}

func (g GitProber) headInfo(ctx context.Context, root string) (headFields, error) {
	out, err := g.runTrim(ctx, root, "log", "-1", "--format=%H|%h|%ct", "HEAD")
	if err != nil {
		return headFields{}, classify(err, "git log -1 HEAD")
	}
	parts := strings.SplitN(out, "|", 3)
	if len(parts) != 3 {
		return headFields{}, &zerrors.IoError{Context: "parsing HEAD info", Err: errors.New("unexpected git log output")}
	}
	ts, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return headFields{}, &zerrors.IoError{Context: "parsing HEAD timestamp", Err: err}
	}
	return headFields{hash: parts[0], shortHash: parts[1], timestamp: ts}, nil
}

func (g GitProber) isDirty(ctx context.Context, root string) (bool, error) {
	out, stderr, err := cmdrunner.StderrOf(ctx, root, "git", "status", "--porcelain")
	if err != nil {
		return false, classify(fmt.Errorf("%s", stderr), "git status --porcelain")
	}
	return len(strings.TrimSpace(string(out))) > 0, nil
}

func (g GitProber) isShallow(root string) bool {
	_, err := os.Stat(filepath.Join(root, ".git", "shallow"))
	return err == nil
}

// nearestTag runs describe, treating "no names found" as "no tag" per
// §4.1 rather than a hard error.
func (g GitProber) nearestTag(ctx context.Context, root string) (string, error) {
	out, stderr, err := cmdrunner.StderrOf(ctx, root, "git", "describe", "--tags", "--abbrev=0")
	if err != nil {
		msg := string(stderr)
		if strings.Contains(msg, "No names found") || strings.Contains(msg, "no tag") {
			return "", nil
		}
		return "", classify(fmt.Errorf("%s", msg), "git describe --tags --abbrev=0")
	}
	return strings.TrimSpace(string(out)), nil
}

func (g GitProber) tagTimestamp(ctx context.Context, root, tag string) (*uint64, error) {
	tagType, err := g.runTrim(ctx, root, "cat-file", "-t", tag)
	if err != nil {
		return nil, classify(err, "git cat-file -t "+tag)
	}

	var raw string
	if tagType == "tag" {
		raw, err = g.runTrim(ctx, root, "for-each-ref", "--format=%(taggerdate:unix)", "refs/tags/"+tag)
	} else {
		raw, err = g.runTrim(ctx, root, "log", "-1", "--format=%ct", tag)
	}
	if err != nil {
		return nil, classify(err, "git tag timestamp lookup")
	}

	ts, convErr := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if convErr != nil {
		return nil, &zerrors.IoError{Context: "parsing tag timestamp", Err: convErr}
	}
	return &ts, nil
}

// bestEffortTagBranch finds which local branch(es) contain the tagged
// commit and deterministically picks the lexicographically first one
// (the handling of multiple candidate branches is left unspecified by
// the source; this picks a stable, documented tie-break).
func (g GitProber) bestEffortTagBranch(ctx context.Context, root, tagHash string) string {
	out, err := g.runTrim(ctx, root, "branch", "--contains", tagHash, "--format=%(refname:short)")
	if err != nil || out == "" {
		return ""
	}
	branches := strings.Split(out, "\n")
	sort.Strings(branches)
	if len(branches) > 1 {
		zlog.Warn("tagged commit reachable from multiple branches, picking lexicographically first", "candidates", branches)
	}
	return strings.TrimSpace(branches[0])
}

func (g GitProber) runTrim(ctx context.Context, root, name string, args ...string) (string, error) {
	out, err := cmdrunner.RunCommandOutputContext(ctx, root, name, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// classify maps a subprocess failure's stderr into the §7 taxonomy.
func classify(err error, command string) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "ambiguous argument 'HEAD'"), strings.Contains(msg, "unknown revision"):
		return &zerrors.NoCommitsError{Source: "git"}
	case strings.Contains(msg, "not a git repository"):
		return &zerrors.RepositoryNotFoundError{Source: "git"}
	default:
		return &zerrors.CommandFailedError{Command: command, Stderr: msg, Err: err}
	}
}
