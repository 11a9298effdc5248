package oerror

import (
	"errors"
	"fmt"
)

// Kind classifies an Error so callers can decide how to react without parsing messages.
type Kind uint8

const (
	KindInternal Kind = iota
	// KindConfig is returned for invalid or missing configuration. It is reported once when a
	// component is constructed, after which the component stays inert.
	KindConfig
	// KindGateMisuse is returned when a capability gate is released more times than it was acquired.
	KindGateMisuse
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindGateMisuse:
		return "gate misuse"
	default:
		return "internal"
	}
}

// Error is the error type returned by strafe packages.
type Error struct {
	Kind Kind
	Err  string
}

// New returns an internal error with the formatted message.
func New(format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Err: fmt.Sprintf(format, args...)}
}

// Newk returns an error of the given kind with the formatted message.
func Newk(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Err
}

// IsKind reports whether err, or any error it wraps, is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var oerr *Error
	if !errors.As(err, &oerr) {
		return false
	}
	return oerr.Kind == kind
}
