package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents categorized error codes for page planning and execution
type ErrorCode string

const (
	// Range specification errors
	ErrCodeEmptySpecification ErrorCode = "EMPTY_SPECIFICATION"
	ErrCodeInvalidRangeToken  ErrorCode = "INVALID_RANGE_TOKEN"
	ErrCodePageOutOfRange     ErrorCode = "PAGE_OUT_OF_RANGE"

	// Split planning errors
	ErrCodeInvalidChunkSize ErrorCode = "INVALID_CHUNK_SIZE"
	ErrCodeEmptyDocument    ErrorCode = "EMPTY_DOCUMENT"

	// Merge planning errors
	ErrCodeInsufficientInputs ErrorCode = "INSUFFICIENT_INPUTS"
	ErrCodeInvalidDocument    ErrorCode = "INVALID_DOCUMENT"

	// Backend errors
	ErrCodeCorruptDocument ErrorCode = "CORRUPT_DOCUMENT"

	// Write and I/O errors
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	ErrCodeWriteError   ErrorCode = "WRITE_ERROR"
	ErrCodeIOError      ErrorCode = "IO_ERROR"
)

// Error is a structured error. Callers branch on Code and read the
// kind-specific fields instead of matching message text.
type Error struct {
	Code    ErrorCode // Error category code
	Message string    // Human-readable message
	Cause   error     // Underlying error (if any)

	Token string // Offending range token (INVALID_RANGE_TOKEN, PAGE_OUT_OF_RANGE)
	Bound int    // Highest valid page number (PAGE_OUT_OF_RANGE)
	Value int    // Rejected chunk size (INVALID_CHUNK_SIZE)
	Count int    // Number of inputs supplied (INSUFFICIENT_INPUTS)
	Input int    // Zero-based input position (INVALID_DOCUMENT)

	Context map[string]interface{} // Additional context (file name, group number, etc.)
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches a target Error by code
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// WithContext adds context to the error and returns the same error for chaining
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new Error with the given code and message
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// NewErrorf creates a new Error with a formatted message
func NewErrorf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError wraps an existing error with an Error
func WrapError(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// EmptySpecification reports a range spec with no tokens.
func EmptySpecification() *Error {
	return NewError(ErrCodeEmptySpecification, "page range specification is empty")
}

// InvalidRangeToken reports a token that is not `<n>` or `<start>-<end>`.
func InvalidRangeToken(token, reason string) *Error {
	err := NewErrorf(ErrCodeInvalidRangeToken, "invalid range token %q: %s", token, reason)
	err.Token = token
	return err
}

// PageOutOfRange reports a token naming a page outside 1..bound.
func PageOutOfRange(token string, bound int) *Error {
	err := NewErrorf(ErrCodePageOutOfRange, "range token %q is outside pages 1-%d", token, bound)
	err.Token = token
	err.Bound = bound
	return err
}

// InvalidChunkSize reports a pages-per-file value below 1.
func InvalidChunkSize(value int) *Error {
	err := NewErrorf(ErrCodeInvalidChunkSize, "pages per file must be at least 1, got %d", value)
	err.Value = value
	return err
}

// EmptyDocument reports a source document without pages.
func EmptyDocument() *Error {
	return NewError(ErrCodeEmptyDocument, "document has no pages")
}

// InsufficientInputs reports a merge request with fewer than two documents.
func InsufficientInputs(count int) *Error {
	err := NewErrorf(ErrCodeInsufficientInputs, "merge needs at least 2 documents, got %d", count)
	err.Count = count
	return err
}

// InvalidDocument reports a merge input that could not be opened.
func InvalidDocument(input int, cause error) *Error {
	err := WrapError(ErrCodeInvalidDocument, fmt.Sprintf("merge input %d cannot be opened", input+1), cause)
	err.Input = input
	return err
}

// CorruptDocument reports bytes the backend could not parse.
func CorruptDocument(cause error) *Error {
	return WrapError(ErrCodeCorruptDocument, "document is corrupt or not a PDF", cause)
}

// Sentinel errors for use with errors.Is()
var (
	ErrEmptySpecification = &Error{Code: ErrCodeEmptySpecification}
	ErrInvalidRangeToken  = &Error{Code: ErrCodeInvalidRangeToken}
	ErrPageOutOfRange     = &Error{Code: ErrCodePageOutOfRange}

	ErrInvalidChunkSize = &Error{Code: ErrCodeInvalidChunkSize}
	ErrEmptyDocument    = &Error{Code: ErrCodeEmptyDocument}

	ErrInsufficientInputs = &Error{Code: ErrCodeInsufficientInputs}
	ErrInvalidDocument    = &Error{Code: ErrCodeInvalidDocument}

	ErrCorruptDocument = &Error{Code: ErrCodeCorruptDocument}

	ErrInvalidInput = &Error{Code: ErrCodeInvalidInput}
	ErrWriteError   = &Error{Code: ErrCodeWriteError}
	ErrIOError      = &Error{Code: ErrCodeIOError}
)

// AsError finds the first *Error in err's chain
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// GetErrorCode extracts the error code from an error chain
func GetErrorCode(err error) (ErrorCode, bool) {
	if e, ok := AsError(err); ok {
		return e.Code, true
	}
	return "", false
}

// IsRangeError reports whether err came from range specification parsing
func IsRangeError(err error) bool {
	code, ok := GetErrorCode(err)
	if !ok {
		return false
	}
	switch code {
	case ErrCodeEmptySpecification, ErrCodeInvalidRangeToken, ErrCodePageOutOfRange:
		return true
	}
	return false
}
