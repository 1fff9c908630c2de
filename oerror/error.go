package oerror

import (
	"errors"
	"fmt"
)

// Kind classifies an error raised by cubesim.
type Kind uint8

const (
	// KindSetupFailure is returned when a collaborator such as the render backend could not be
	// created. Hosts treat it as fatal.
	KindSetupFailure Kind = iota + 1
	// KindInvalidConfiguration is returned when a request carries sizes or options that cannot
	// be satisfied. The target of the request is left unchanged.
	KindInvalidConfiguration
)

func (k Kind) String() string {
	switch k {
	case KindSetupFailure:
		return "setup failure"
	case KindInvalidConfiguration:
		return "invalid configuration"
	default:
		return "unknown"
	}
}

var (
	ErrSetupFailure         = &Error{Kind: KindSetupFailure}
	ErrInvalidConfiguration = &Error{Kind: KindInvalidConfiguration}
)

// Error is an error tagged with a Kind. Under errors.Is, an Error matches any of the kind
// sentinels (ErrSetupFailure, ErrInvalidConfiguration) sharing its kind.
type Error struct {
	Kind Kind
	Err  error
}

// New creates an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Wrap tags err with the given kind. A nil err returns nil.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Err == nil && t.Kind == e.Kind
}
