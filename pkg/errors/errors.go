// Package errors provides custom error types for the bibresolve system.
// The taxonomy separates failures that kill a single lookup (a missing
// schedule file), failures that merely degrade voting (an unavailable
// source), and the terminal "nothing usable anywhere" case.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the bibresolve system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingSchedule indicates that a per-subject schedule file is absent.
	// Fatal for the single lookup that needed it, never for the process.
	ErrMissingSchedule = errors.New("schedule file missing")

	// ErrMalformedCode indicates a classification code that fails the grammar
	// or has no schedule match. Treated as "no subject", never propagated up.
	ErrMalformedCode = errors.New("malformed classification code")

	// ErrSourceUnavailable indicates a bibliographic source failed or
	// returned nothing. Its candidate is excluded from voting.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrNoConsensus indicates a voting tie that automatic resolution could
	// not break. Not a failure: the caller's arbiter decides.
	ErrNoConsensus = errors.New("no consensus among sources")

	// ErrNoData indicates zero usable fields across all sources.
	ErrNoData = errors.New("could not resolve metadata")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// LookupError represents a failed schedule lookup for one subject letter.
type LookupError struct {
	Subject byte
	Path    string
	Err     error
}

// Error implements the error interface
func (e *LookupError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("schedule lookup for subject %c failed (%s): %v", e.Subject, e.Path, e.Err)
	}
	return fmt.Sprintf("schedule lookup for subject %c failed: %v", e.Subject, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *LookupError) Unwrap() error {
	return e.Err
}

// SourceError represents a failure of one bibliographic source.
type SourceError struct {
	Source  string
	Message string
	Err     error
}

// Error implements the error interface
func (e *SourceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("source %s: %s", e.Source, e.Message)
	}
	return fmt.Sprintf("source %s: %v", e.Source, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml", "marcxml"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "open", "close"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("IO error during %s: %v", e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// Helper functions for error checking

// IsMissingSchedule checks if an error indicates an absent schedule file
func IsMissingSchedule(err error) bool {
	return errors.Is(err, ErrMissingSchedule)
}

// IsMalformedCode checks if an error indicates an unusable classification code
func IsMalformedCode(err error) bool {
	return errors.Is(err, ErrMalformedCode)
}

// IsSourceUnavailable checks if an error indicates a failed source
func IsSourceUnavailable(err error) bool {
	return errors.Is(err, ErrSourceUnavailable)
}

// IsNoConsensus checks if an error indicates an unresolved voting tie
func IsNoConsensus(err error) bool {
	return errors.Is(err, ErrNoConsensus)
}

// IsNoData checks if an error indicates zero usable fields across sources
func IsNoData(err error) bool {
	return errors.Is(err, ErrNoData)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Err: err}
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, File: file, Message: err.Error(), Err: err}
}

// WrapSource wraps an error as a SourceError
func WrapSource(source string, err error) error {
	if err == nil {
		return nil
	}
	return &SourceError{Source: source, Err: err}
}
