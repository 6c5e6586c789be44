package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "simple error",
			err:      EmptySpecification(),
			expected: "[EMPTY_SPECIFICATION] page range specification is empty",
		},
		{
			name:     "error with cause",
			err:      CorruptDocument(fmt.Errorf("no xref")),
			expected: "[CORRUPT_DOCUMENT] document is corrupt or not a PDF: no xref",
		},
		{
			name:     "out of range",
			err:      PageOutOfRange("11", 10),
			expected: `[PAGE_OUT_OF_RANGE] range token "11" is outside pages 1-10`,
		},
		{
			name:     "chunk size",
			err:      InvalidChunkSize(0),
			expected: "[INVALID_CHUNK_SIZE] pages per file must be at least 1, got 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Fields(t *testing.T) {
	if err := InvalidRangeToken("3-1", "start after end"); err.Token != "3-1" {
		t.Errorf("Token = %q, want %q", err.Token, "3-1")
	}
	if err := PageOutOfRange("99", 10); err.Token != "99" || err.Bound != 10 {
		t.Errorf("Token, Bound = %q, %d; want %q, 10", err.Token, err.Bound, "99")
	}
	if err := InsufficientInputs(1); err.Count != 1 {
		t.Errorf("Count = %d, want 1", err.Count)
	}
	if err := InvalidDocument(2, nil); err.Input != 2 {
		t.Errorf("Input = %d, want 2", err.Input)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying error")
	err := InvalidDocument(0, cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("errors.Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestError_Is(t *testing.T) {
	err := InsufficientInputs(1)

	if !errors.Is(err, ErrInsufficientInputs) {
		t.Error("errors.Is should match ErrInsufficientInputs sentinel")
	}

	if errors.Is(err, ErrInvalidDocument) {
		t.Error("errors.Is should not match ErrInvalidDocument sentinel")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if !errors.Is(wrapped, ErrInsufficientInputs) {
		t.Error("wrapped error should match ErrInsufficientInputs sentinel")
	}
}

func TestError_WithContext(t *testing.T) {
	err := EmptyDocument().
		WithContext("file", "report.pdf").
		WithContext("pages", 0)

	if err.Context["file"] != "report.pdf" {
		t.Errorf("Context[file] = %v, want report.pdf", err.Context["file"])
	}
	if err.Context["pages"] != 0 {
		t.Errorf("Context[pages] = %v, want 0", err.Context["pages"])
	}
}

func TestAsError(t *testing.T) {
	wrapped := fmt.Errorf("split: %w", PageOutOfRange("12", 4))

	got, ok := AsError(wrapped)
	if !ok {
		t.Fatal("AsError should find Error in wrapped chain")
	}
	if got.Bound != 4 {
		t.Errorf("Bound = %d, want 4", got.Bound)
	}

	if _, ok := AsError(fmt.Errorf("standard error")); ok {
		t.Error("AsError should return false for standard error")
	}
}

func TestGetErrorCode(t *testing.T) {
	code, ok := GetErrorCode(InvalidChunkSize(-1))
	if !ok || code != ErrCodeInvalidChunkSize {
		t.Errorf("GetErrorCode() = %v, %v; want %v, true", code, ok, ErrCodeInvalidChunkSize)
	}

	_, ok = GetErrorCode(fmt.Errorf("standard error"))
	if ok {
		t.Error("GetErrorCode should return false for standard error")
	}
}

func TestIsRangeError(t *testing.T) {
	tests := []struct {
		err      error
		expected bool
	}{
		{EmptySpecification(), true},
		{InvalidRangeToken("x", "not a number"), true},
		{PageOutOfRange("11", 10), true},
		{InvalidChunkSize(0), false},
		{fmt.Errorf("standard error"), false},
	}

	for _, tt := range tests {
		if got := IsRangeError(tt.err); got != tt.expected {
			t.Errorf("IsRangeError(%v) = %v, want %v", tt.err, got, tt.expected)
		}
	}
}
