package errors

import (
	"errors"
	"fmt"
)

// Kind classifies why a secret could not be summoned.
type Kind int

const (
	// KindNoInput means no secret reference was supplied.
	KindNoInput Kind = iota + 1
	// KindInvalidAddress means the reference had more than one field separator.
	KindInvalidAddress
	// KindConfiguration means neither source provided both store settings.
	KindConfiguration
	// KindStoreOpen means the store could not be read or decrypted.
	KindStoreOpen
	// KindNotRetrievable means the entry or the field does not exist.
	KindNotRetrievable
)

// String returns the kind's name as used in debug logs.
func (k Kind) String() string {
	switch k {
	case KindNoInput:
		return "NoInput"
	case KindInvalidAddress:
		return "InvalidAddress"
	case KindConfiguration:
		return "ConfigurationError"
	case KindStoreOpen:
		return "StoreOpenError"
	case KindNotRetrievable:
		return "NotRetrievable"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ExitCode returns the process exit code for the kind.
func (k Kind) ExitCode() int {
	if k == KindInvalidAddress {
		return 2
	}
	return 1
}

// ResolutionError is a terminal failure of a summon invocation. Message is
// printed to the user exactly as is.
type ResolutionError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e ResolutionError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e ResolutionError) Unwrap() error {
	return e.Err
}

// NoInput reports a missing secret reference argument.
func NoInput() error {
	return ResolutionError{
		Kind:    KindNoInput,
		Message: "no variable was provided",
	}
}

// InvalidAddress reports a reference that could not be parsed.
func InvalidAddress(err error) error {
	return ResolutionError{Kind: KindInvalidAddress, Err: err}
}

// Configuration reports unresolved store settings. message carries the full
// per-source checklist.
func Configuration(message string) error {
	return ResolutionError{Kind: KindConfiguration, Message: message}
}

// StoreOpen reports a failure from the store opener. The opener's message is
// passed through untouched.
func StoreOpen(err error) error {
	return ResolutionError{Kind: KindStoreOpen, Err: err}
}

// NotRetrievable reports a reference whose entry or field does not exist.
func NotRetrievable(err error) error {
	return ResolutionError{Kind: KindNotRetrievable, Err: err}
}

// KindOf returns the kind of a ResolutionError anywhere in err's chain.
func KindOf(err error) (Kind, bool) {
	var rErr ResolutionError
	if errors.As(err, &rErr) {
		return rErr.Kind, true
	}
	return 0, false
}

// ExitCode maps an error to a process exit code: 0 for nil, the kind's code
// for a ResolutionError and 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if kind, ok := KindOf(err); ok {
		return kind.ExitCode()
	}
	return 1
}
