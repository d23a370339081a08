// Package validation collects several problems into one error so a run can
// report everything wrong with its inputs at once.
package validation

import (
	"fmt"
	"strings"
)

// Error holds every problem found by one validation pass
type Error struct {
	Errors []error
}

// New creates an empty Error
func New() *Error {
	return &Error{
		Errors: make([]error, 0),
	}
}

// Add appends err, ignoring nil
func (v *Error) Add(err error) {
	if err != nil {
		v.Errors = append(v.Errors, err)
	}
}

// HasErrors returns true if there are any validation errors
func (v *Error) HasErrors() bool {
	return len(v.Errors) > 0
}

// Error implements the error interface
func (v *Error) Error() string {
	if len(v.Errors) == 0 {
		return ""
	}

	if len(v.Errors) == 1 {
		return v.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("found %d validation errors:\n", len(v.Errors)))
	for i, err := range v.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %v\n", i+1, err))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// Unwrap exposes every collected error to errors.Is and errors.As
func (v *Error) Unwrap() []error {
	return v.Errors
}

// ErrorOrNil returns v if it holds any errors, otherwise nil
func (v *Error) ErrorOrNil() error {
	if v.HasErrors() {
		return v
	}
	return nil
}
