package cmdrunner

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRunCommandContext_Success(t *testing.T) {
	tempDir := t.TempDir()
	err := RunCommandContext(context.Background(), tempDir, "echo", "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCommandContext_InvalidCommand(t *testing.T) {
	tempDir := t.TempDir()
	err := RunCommandContext(context.Background(), tempDir, "invalid_command_xyz")
	if err == nil {
		t.Fatal("expected error for invalid command, got nil")
	}
}

func TestRunCommandContext_Timeout(t *testing.T) {
	tempDir := t.TempDir()
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := RunCommandContext(ctx, tempDir, "sleep", "5")
	if err == nil {
		t.Fatal("expected timeout error, got nil")
	}
}

func TestRunCommandOutputContext_Success(t *testing.T) {
	tempDir := t.TempDir()
	out, err := RunCommandOutputContext(context.Background(), tempDir, "echo", "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "hello" {
		t.Errorf("expected %q, got %q", "hello", out)
	}
}

func TestRunCommandOutputContext_InsideDir(t *testing.T) {
	tempDir := t.TempDir()
	if _, err := RunCommandOutputContext(context.Background(), tempDir, "touch", "marker"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tempDir, "marker")); err != nil {
		t.Errorf("expected file to exist: %v", err)
	}
}

func TestStderrOf_CapturesFailure(t *testing.T) {
	tempDir := t.TempDir()
	_, stderr, err := StderrOf(context.Background(), tempDir, "ls", "does-not-exist")
	if err == nil {
		t.Fatal("expected non-nil error")
	}
	if len(stderr) == 0 {
		t.Error("expected stderr output to be captured")
	}
}
