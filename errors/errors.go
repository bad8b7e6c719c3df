// Package errors provides error handling for bannerkit.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Typed sentinel errors for the marking vocabulary
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrUnknownIdentifier) {
//	    // caller passed an identifier outside the fixed vocabulary
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the banner marking vocabulary.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrUnknownIdentifier indicates a canonical-identifier lookup outside the
	// fixed control vocabulary. This is a programming error at the call site,
	// not bad user data, and should not be silently swallowed.
	ErrUnknownIdentifier = New("unknown control identifier")

	// ErrEmptyBanner indicates a banner string with no classification segment.
	ErrEmptyBanner = New("empty banner")

	// ErrUnknownClassification indicates the leading banner segment did not
	// resolve to a classification level.
	ErrUnknownClassification = New("unknown classification")

	// ErrUnknownSegment indicates a banner segment that no control vocabulary
	// could claim.
	ErrUnknownSegment = New("unknown banner segment")
)

// IsUnknownIdentifier checks if an error is or wraps ErrUnknownIdentifier.
func IsUnknownIdentifier(err error) bool {
	return err != nil && Is(err, ErrUnknownIdentifier)
}

// NewUnknownIdentifier creates an unknown-identifier error naming the
// offending key and vocabulary.
func NewUnknownIdentifier(vocabulary, key string) error {
	return Wrapf(ErrUnknownIdentifier, "%s: %q", vocabulary, key)
}
