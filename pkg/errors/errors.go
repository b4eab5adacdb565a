// Package errors provides the shell's unified error type.
// Every failure a command can produce, whatever collaborator it came from,
// is reported as a *ShellError that still carries the original error.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies errors by the collaborator that produced them.
type Kind string

const (
	KindInterpreter Kind = "interpreter" // the engine rejected or could not finish execution
	KindIO          Kind = "io"          // file read or history persistence
	KindParse       Kind = "parse"       // a parameter was not a valid integer
	KindUnknown     Kind = "unknown"     // reserved
)

// ShellError is a structured error with context and suggestions.
// It implements the error interface and supports error wrapping.
type ShellError struct {
	// Code is a unique identifier for this error type (e.g., "ENGINE_OUT_OF_GAS")
	Code string

	// Kind is the variant of the unified error
	Kind Kind

	// Message is the primary error message describing what went wrong
	Message string

	// Context provides additional key-value details about the error
	Context map[string]string

	// Cause is the original failure; never flattened to a string
	Cause error

	// Suggestions are actionable remediation steps for the user
	Suggestions []string
}

// Error implements the error interface.
func (e *ShellError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause so errors.Is and errors.As reach it.
func (e *ShellError) Unwrap() error {
	return e.Cause
}

// Is reports whether e matches target for errors.Is() checks.
// Two ShellErrors match if they have the same Code.
func (e *ShellError) Is(target error) bool {
	if t, ok := target.(*ShellError); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new ShellError with the given code, kind, and message.
func New(code string, kind Kind, message string) *ShellError {
	return &ShellError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Context: make(map[string]string),
	}
}

// Wrap wraps an existing error with a ShellError.
func Wrap(err error, code string, kind Kind, message string) *ShellError {
	return New(code, kind, message).WithCause(err)
}

// WithContext adds a context key-value pair and returns the error for chaining.
func (e *ShellError) WithContext(key, value string) *ShellError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// WithCause wraps an underlying error and returns the error for chaining.
func (e *ShellError) WithCause(cause error) *ShellError {
	e.Cause = cause
	return e
}

// WithSuggestion adds a remediation suggestion and returns the error for chaining.
func (e *ShellError) WithSuggestion(suggestion string) *ShellError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// HasContext returns true if the error has context information.
func (e *ShellError) HasContext() bool {
	return len(e.Context) > 0
}

// HasSuggestions returns true if the error has suggestions.
func (e *ShellError) HasSuggestions() bool {
	return len(e.Suggestions) > 0
}

// ContextString returns a formatted string of all context entries.
func (e *ShellError) ContextString() string {
	if len(e.Context) == 0 {
		return ""
	}
	parts := make([]string, 0, len(e.Context))
	for _, k := range sortedKeys(e.Context) {
		parts = append(parts, fmt.Sprintf("%s=%q", k, e.Context[k]))
	}
	return strings.Join(parts, ", ")
}

// AsShellError finds the first *ShellError in err's chain.
func AsShellError(err error) (*ShellError, bool) {
	var se *ShellError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsKind checks if an error is a ShellError of the given kind.
func IsKind(err error, kind Kind) bool {
	if se, ok := AsShellError(err); ok {
		return se.Kind == kind
	}
	return false
}

// IsCode checks if an error is a ShellError with the given code.
func IsCode(err error, code string) bool {
	if se, ok := AsShellError(err); ok {
		return se.Code == code
	}
	return false
}
