package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryRender    Category = "render"
	CategoryAttribute Category = "attribute"
	CategoryMarkup    Category = "markup"
	CategoryConfig    Category = "config"
	CategoryPublish   Category = "publish"
	CategoryCLI       Category = "cli"
)

// CrelError is a structured error with a registered code and optional context.
type CrelError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (render, markup, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Path locates the error inside a node tree or document
	// (e.g., "html/body/ul[2]").
	Path string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *CrelError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *CrelError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a CrelError carrying the same code.
func (e *CrelError) Is(target error) bool {
	t, ok := target.(*CrelError)
	if !ok || t == nil {
		return false
	}
	return e.Code != "" && e.Code == t.Code
}

// WithDetail adds a detailed explanation to the error.
func (e *CrelError) WithDetail(d string) *CrelError {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted detail to the error.
func (e *CrelError) WithDetailf(format string, args ...any) *CrelError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithPath records where in a tree or document the error occurred.
func (e *CrelError) WithPath(p string) *CrelError {
	e.Path = p
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *CrelError) WithSuggestion(s string) *CrelError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *CrelError) Wrap(err error) *CrelError {
	e.Wrapped = err
	return e
}

// New creates a CrelError from a registered error code.
func New(code string) *CrelError {
	template, ok := registry[code]
	if !ok {
		return &CrelError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &CrelError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Suggestion: template.Suggestion,
	}
}

// Newf creates a new CrelError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *CrelError {
	return &CrelError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a CrelError.
// Errors that already are CrelErrors are returned unchanged.
func FromError(err error, code string) *CrelError {
	if err == nil {
		return nil
	}
	if ce, ok := err.(*CrelError); ok {
		return ce
	}
	return New(code).Wrap(err)
}
