// Package process provides the process snapshot types shared by every process source
package process

import (
	"errors"
	"fmt"
)

var (
	// ErrEnumeration matches any failure to take a process snapshot.
	ErrEnumeration = errors.New("process enumeration failed")

	// ErrMalformedOutput is returned when a source's raw output does not have the expected shape.
	ErrMalformedOutput = errors.New("malformed process listing")
)

// EnumerationError is returned by a ProcessLister when the underlying OS query
// fails or its output cannot be parsed.
type EnumerationError struct {
	Source string
	Err    error
}

// NewEnumerationError wraps err as a failure of the named process source
func NewEnumerationError(source string, err error) *EnumerationError {
	return &EnumerationError{Source: source, Err: err}
}

func (e *EnumerationError) Error() string {
	return fmt.Sprintf("failed to get processes from %s: %v", e.Source, e.Err)
}

func (e *EnumerationError) Unwrap() error {
	return e.Err
}

// Is reports ErrEnumeration as a match so callers need not know the concrete type.
func (e *EnumerationError) Is(target error) bool {
	return target == ErrEnumeration
}
