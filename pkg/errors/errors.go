package errors

import (
	"fmt"
	"strings"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ResourceError reports a failure to read a file, URL or stdin.
type ResourceError struct {
	Resource string
	Op       string
	Err      error
}

// NewResourceError constructs a ResourceError for the given operation ("read", "fetch").
func NewResourceError(resource, op string, err error) error {
	return &ResourceError{Resource: resource, Op: op, Err: err}
}

func (e *ResourceError) Error() string {
	if e == nil {
		return ""
	}
	if e.Op != "" {
		return fmt.Sprintf("unable to %s %s: %v", e.Op, e.Resource, e.Err)
	}
	return fmt.Sprintf("unable to load %s: %v", e.Resource, e.Err)
}

// Unwrap exposes the root error.
func (e *ResourceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// LookupError indicates a name that is not present in a fixed registry.
type LookupError struct {
	Kind  string
	Name  string
	Known []string
}

// NewLookupError constructs a LookupError listing the accepted names.
func NewLookupError(kind, name string, known []string) error {
	return &LookupError{Kind: kind, Name: name, Known: append([]string(nil), known...)}
}

func (e *LookupError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
	}
	return fmt.Sprintf("unknown %s %q (available: %s)", e.Kind, e.Name, strings.Join(e.Known, ", "))
}
