// Package cmdrunner runs external commands (the VCS binary) with a
// working directory and an optional deadline. It is the one place in
// zerv that shells out to another process.
package cmdrunner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// RunCommand runs name with args in dir and discards its output,
// returning an error that includes captured stderr on failure.
func RunCommand(dir, name string, args ...string) error {
	return RunCommandContext(context.Background(), dir, name, args...)
}

// RunCommandContext is RunCommand with a cancelable/deadline-bound
// context; exceeding the context surfaces as a timeout-flavored error.
func RunCommandContext(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return wrapError(ctx, name, stderr.String(), err)
	}
	return nil
}

// RunCommandOutputContext runs name with args in dir and returns its
// trimmed stdout.
func RunCommandOutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, wrapError(ctx, name, stderr.String(), err)
	}
	return bytes.TrimRight(stdout.Bytes(), "\n"), nil
}

// StderrOf runs a command and returns (stdout, stderr, err) without
// interpreting a non-zero exit as fatal — used by callers that need to
// classify git's stderr themselves (e.g. "no names found").
func StderrOf(ctx context.Context, dir, name string, args ...string) (stdout []byte, stderr []byte, err error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	runErr := cmd.Run()
	return bytes.TrimRight(out.Bytes(), "\n"), errBuf.Bytes(), runErr
}

func wrapError(ctx context.Context, name, stderr string, err error) error {
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("command %q timed out: %w", name, err)
	}
	if stderr != "" {
		return fmt.Errorf("command %q failed: %s", name, stderr)
	}
	return fmt.Errorf("command %q failed: %w", name, err)
}
