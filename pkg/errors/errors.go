package errors

import (
	"errors"
	"fmt"
)

var (
	ErrBadLine        = errors.New("malformed line")
	ErrBadTimestamp   = errors.New("invalid timestamp")
	ErrUntrackedKind  = errors.New("untracked kind")
	ErrNoSeries       = errors.New("no series to render")
	ErrInvalidFormat  = errors.New("invalid chart format")
	ErrInvalidFilter  = errors.New("invalid filter expression")
	ErrInvalidPolicy  = errors.New("invalid tracking policy")
	ErrConfigNotFound = errors.New("config not found")
	ErrConfigInvalid  = errors.New("invalid configuration")
	ErrFileNotFound   = errors.New("file not found")
)

func NewLineError(lineNo int, line string) error {
	return fmt.Errorf("%w: line %d: %q", ErrBadLine, lineNo, line)
}

func NewTimestampError(lineNo int, field string) error {
	return fmt.Errorf("%w: line %d: %q", ErrBadTimestamp, lineNo, field)
}

func NewKindError(kind string) error {
	return fmt.Errorf("%w: %q", ErrUntrackedKind, kind)
}

func NewFormatError(format string) error {
	return fmt.Errorf("%w: %q (want png or svg)", ErrInvalidFormat, format)
}

func NewFilterError(expression string, err error) error {
	return fmt.Errorf("%w: %q: %v", ErrInvalidFilter, expression, err)
}

func NewPolicyError(policy string) error {
	return fmt.Errorf("%w: %q (want ignore or reject)", ErrInvalidPolicy, policy)
}

func NewConfigError(field string, value interface{}) error {
	return fmt.Errorf("%w: field=%s value=%v", ErrConfigInvalid, field, value)
}

func NewFileError(path string, reason error) error {
	return fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, reason)
}
