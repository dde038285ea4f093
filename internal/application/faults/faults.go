// Package faults defines the error taxonomy returned by orchestrators and
// projections. Every failure crossing the service boundary is one of four
// kinds, so HTTP handlers can map errors to responses exhaustively instead
// of string-matching.
package faults

import (
	"errors"
	"fmt"
)

// Kind classifies a service-boundary failure.
type Kind int

const (
	// KindValidation marks bad input values; the message is user-correctable.
	KindValidation Kind = iota
	// KindNotFound marks a referenced entity that no longer exists (stale UI state).
	KindNotFound
	// KindStorage marks an underlying store failure; the cause is kept for
	// diagnostics but not shown verbatim to users.
	KindStorage
	// KindNotInitialized marks missing singleton state that bootstrap should
	// have created.
	KindNotInitialized
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindStorage:
		return "storage"
	case KindNotInitialized:
		return "not_initialized"
	default:
		return "unknown"
	}
}

// Error is a classified service failure. It wraps the underlying cause so
// errors.Is/As still see domain sentinels through it.
type Error struct {
	Kind    Kind
	Message string // user-facing text
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.cause
}

// Validation builds a validation fault from a domain validation error.
// The domain error text is the user-facing message.
func Validation(cause error) *Error {
	return &Error{Kind: KindValidation, Message: cause.Error(), cause: cause}
}

// NotFound builds a not-found fault for the named entity.
func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Message: entity + " not found"}
}

// Storage builds a storage fault wrapping the underlying store error.
func Storage(op string, cause error) *Error {
	return &Error{Kind: KindStorage, Message: "could not " + op, cause: cause}
}

// NotInitialized builds a fault for missing singleton state.
func NotInitialized(what string) *Error {
	return &Error{Kind: KindNotInitialized, Message: what + " has not been initialized"}
}

// KindOf extracts the fault kind from an error chain. Unclassified errors
// report as storage faults, the safest default at the boundary.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindStorage
}

// MessageOf extracts the user-facing message from an error chain.
// Unclassified errors collapse to a generic message so raw store internals
// never reach the browser.
func MessageOf(err error) string {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Message
	}
	return "an unexpected error occurred"
}
