package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrUnknownPalette is matched by every UnknownPaletteError via errors.Is.
var ErrUnknownPalette = stdErrors.New("unknown palette")

// ParseError represents a config or catalog decoding failure with optional line metadata.
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

// ValidationError captures configuration validation issues and rejected theme writes.
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

// ColorError reports a value that could not be interpreted as a color.
type ColorError struct {
	Input  string
	Reason string
}

// NewColorError constructs a ColorError for the rejected input.
func NewColorError(input, reason string) error {
	return &ColorError{Input: input, Reason: reason}
}

func (e *ColorError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid color %q: %s", e.Input, e.Reason)
}

// UnknownPaletteError indicates a palette lookup for a name missing from the catalog.
type UnknownPaletteError struct {
	Name      string
	Available []string
}

// NewUnknownPaletteError constructs an UnknownPaletteError.
func NewUnknownPaletteError(name string, available []string) error {
	return &UnknownPaletteError{Name: name, Available: append([]string(nil), available...)}
}

func (e *UnknownPaletteError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Available) > 0 {
		return fmt.Sprintf("unknown palette %q (available: %d palettes)", e.Name, len(e.Available))
	}
	return fmt.Sprintf("unknown palette %q", e.Name)
}

// Is reports whether target is ErrUnknownPalette.
func (e *UnknownPaletteError) Is(target error) bool {
	return target == ErrUnknownPalette
}
