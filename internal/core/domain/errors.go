package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIndexNotLoaded indicates a service was used without an index.
	ErrIndexNotLoaded = errors.New("index not loaded")

	// Session Errors.

	// ErrLoad indicates the index file could not be read or parsed.
	// Fatal: the session never starts.
	ErrLoad = errors.New("index load failed")

	// ErrWrite indicates the result side-channel file could not be written.
	// Recoverable: the session continues.
	ErrWrite = errors.New("result write failed")

	// ErrInput indicates the query input channel failed.
	// Ends the session without a crash.
	ErrInput = errors.New("input failed")

	// ErrInterrupted indicates the user cancelled input (Ctrl-C, EOF).
	ErrInterrupted = errors.New("interrupted")
)

// LoadError describes why an index file could not be loaded.
type LoadError struct {
	// Path is the index file path.
	Path string

	// Reason is a short human-readable description.
	Reason string

	// Err is the underlying cause, if any.
	Err error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load index %q: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("load index %q: %s", e.Path, e.Reason)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error { return e.Err }

// Is reports whether target is ErrLoad.
func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// WriteError describes a failed side-channel write.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write results to %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *WriteError) Unwrap() error { return e.Err }

// Is reports whether target is ErrWrite.
func (e *WriteError) Is(target error) bool { return target == ErrWrite }

// InputError wraps a fault in the query input channel.
type InputError struct {
	Err error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("read query: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *InputError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInput.
func (e *InputError) Is(target error) bool { return target == ErrInput }
