package zerrors

import (
	"errors"
	"testing"
)

func TestRepositoryNotFoundError(t *testing.T) {
	err := &RepositoryNotFoundError{Source: "git"}
	if err.Error() != "no git repository found" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestCommandFailedError(t *testing.T) {
	inner := errors.New("exit status 128")
	err := &CommandFailedError{Command: "git describe", Stderr: "fatal: no names found", Err: inner}

	want := `command "git describe" failed: fatal: no names found`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected errors.Is to match inner error")
	}
}

func TestMissingFieldError(t *testing.T) {
	err := &MissingFieldError{Field: "custom.build_id"}
	var mfErr *MissingFieldError
	if !errors.As(err, &mfErr) {
		t.Error("expected errors.As to match MissingFieldError")
	}
}

func TestIoErrorUnwrap(t *testing.T) {
	inner := errors.New("permission denied")
	err := &IoError{Context: "reading .version", Err: inner}
	if !errors.Is(err, inner) {
		t.Error("expected errors.Is to match inner error")
	}
}
