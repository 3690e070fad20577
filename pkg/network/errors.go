package network

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind is the error taxonomy from spec §7.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrSignatureMismatch
	ErrInvariantViolation
	ErrCombinationalLoop
	ErrIncompatibleKindFunc
	ErrNameClash
	ErrTypeMismatch
	ErrOutOfCapacity
)

func (k ErrorKind) String() string {
	switch k {
	case ErrSignatureMismatch:
		return "SignatureMismatch"
	case ErrInvariantViolation:
		return "InvariantViolation"
	case ErrCombinationalLoop:
		return "CombinationalLoop"
	case ErrIncompatibleKindFunc:
		return "IncompatibleKindFunc"
	case ErrNameClash:
		return "NameClash"
	case ErrTypeMismatch:
		return "TypeMismatch"
	case ErrOutOfCapacity:
		return "OutOfCapacity"
	default:
		return "Unknown"
	}
}

// Error is a diagnostic error carrying a structured Kind alongside the usual
// wrapped cause chain, so callers can both errors.As/kind-switch on it and
// print %+v for a stack trace during development.
type Error struct {
	Kind ErrorKind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.msg, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

// Unwrap exposes the wrapped cause to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.err }

// newError builds a *Error, attaching a stack trace via pkg/errors when no
// cause is already stack-annotated.
func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...), err: errors.New(fmt.Sprintf(format, args...))}
}

func wrapError(kind ErrorKind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...), err: errors.Wrap(cause, fmt.Sprintf(format, args...))}
}
