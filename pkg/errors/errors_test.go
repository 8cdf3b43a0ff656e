package errors

import (
	"errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	sentinelErrors := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrBadLine", ErrBadLine, "malformed line"},
		{"ErrBadTimestamp", ErrBadTimestamp, "invalid timestamp"},
		{"ErrUntrackedKind", ErrUntrackedKind, "untracked kind"},
		{"ErrNoSeries", ErrNoSeries, "no series to render"},
		{"ErrInvalidFormat", ErrInvalidFormat, "invalid chart format"},
		{"ErrInvalidFilter", ErrInvalidFilter, "invalid filter expression"},
		{"ErrInvalidPolicy", ErrInvalidPolicy, "invalid tracking policy"},
		{"ErrConfigNotFound", ErrConfigNotFound, "config not found"},
		{"ErrConfigInvalid", ErrConfigInvalid, "invalid configuration"},
		{"ErrFileNotFound", ErrFileNotFound, "file not found"},
	}

	for _, tc := range sentinelErrors {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err == nil {
				t.Errorf("%s is nil", tc.name)
				return
			}
			if tc.err.Error() != tc.msg {
				t.Errorf("%s: got %q, want %q", tc.name, tc.err.Error(), tc.msg)
			}
		})
	}
}

func TestNewLineError(t *testing.T) {
	err := NewLineError(3, "pipeline 10")
	if !errors.Is(err, ErrBadLine) {
		t.Errorf("NewLineError should wrap ErrBadLine, got %v", err)
	}
	want := `malformed line: line 3: "pipeline 10"`
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestNewTimestampError(t *testing.T) {
	err := NewTimestampError(7, "abc")
	if !errors.Is(err, ErrBadTimestamp) {
		t.Errorf("NewTimestampError should wrap ErrBadTimestamp, got %v", err)
	}
}

func TestNewKindError(t *testing.T) {
	err := NewKindError("unknown_kind")
	if !errors.Is(err, ErrUntrackedKind) {
		t.Errorf("NewKindError should wrap ErrUntrackedKind, got %v", err)
	}
}

func TestNewFormatError(t *testing.T) {
	err := NewFormatError("gif")
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("NewFormatError should wrap ErrInvalidFormat, got %v", err)
	}
}

func TestNewFilterError(t *testing.T) {
	err := NewFilterError("Kind ==", errors.New("unexpected token"))
	if !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("NewFilterError should wrap ErrInvalidFilter, got %v", err)
	}
}

func TestNewPolicyError(t *testing.T) {
	err := NewPolicyError("drop")
	if !errors.Is(err, ErrInvalidPolicy) {
		t.Errorf("NewPolicyError should wrap ErrInvalidPolicy, got %v", err)
	}
}
