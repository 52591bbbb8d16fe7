package entity

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// Upload errors
	ErrInvalidFile      = errors.New("invalid file")
	ErrFileTooLarge     = errors.New("file too large")
	ErrInvalidExtension = errors.New("invalid file extension")
	ErrEmptyFile        = errors.New("file is empty")

	// Document errors
	ErrUnreadablePDF   = errors.New("unreadable pdf document")
	ErrNoTextExtracted = errors.New("no text extracted from document")
	ErrInvalidEmail    = errors.New("invalid email message")

	// Model output errors
	ErrEmptyCompletion = errors.New("empty completion")
	ErrSchemaMismatch  = errors.New("model output does not match schema")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidParameter = errors.New("invalid parameter")
)

// ErrorKind classifies pipeline failures so callers can branch without
// inspecting messages.
type ErrorKind string

const (
	KindExtraction   ErrorKind = "extraction"
	KindInvocation   ErrorKind = "invocation"
	KindParse        ErrorKind = "parse"
	KindInvalidInput ErrorKind = "invalid_input"
)

// Error is the single error type returned by the analysis pipelines.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err with the given kind. A nil err yields nil.
func NewError(kind ErrorKind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsInvalidInput reports whether err was caused by a malformed upload.
func IsInvalidInput(err error) bool {
	return KindOf(err) == KindInvalidInput
}
