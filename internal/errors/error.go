package errors

import (
	"errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategorySlot    Category = "slot"
	CategoryRender  Category = "render"
	CategoryPublish Category = "publish"
	CategoryConfig  Category = "config"
	CategoryCLI     Category = "cli"
)

// LayoutError is a structured error with a code, suggestion, and documentation.
type LayoutError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (slot, render, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *LayoutError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *LayoutError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a LayoutError with the same code.
func (e *LayoutError) Is(target error) bool {
	t, ok := target.(*LayoutError)
	if !ok || t.Code == "" {
		return false
	}
	return e.Code == t.Code
}

// WithSuggestion adds a fix suggestion to the error.
func (e *LayoutError) WithSuggestion(s string) *LayoutError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *LayoutError) WithDetail(d string) *LayoutError {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted detailed explanation to the error.
func (e *LayoutError) WithDetailf(format string, args ...any) *LayoutError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *LayoutError) Wrap(err error) *LayoutError {
	e.Wrapped = err
	return e
}

// New creates a LayoutError from a registered error code.
func New(code string) *LayoutError {
	template, ok := registry[code]
	if !ok {
		return &LayoutError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &LayoutError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new LayoutError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *LayoutError {
	return &LayoutError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a LayoutError.
// Errors that already are (or wrap) a LayoutError are returned as is.
func FromError(err error, code string) *LayoutError {
	if err == nil {
		return nil
	}
	var le *LayoutError
	if errors.As(err, &le) {
		return le
	}
	return New(code).Wrap(err)
}

// Code returns the code of the first LayoutError in err's chain, or "".
func Code(err error) string {
	var le *LayoutError
	if errors.As(err, &le) {
		return le.Code
	}
	return ""
}
