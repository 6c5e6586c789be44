package types

import (
	"fmt"
)

// WarningLevel represents the severity of a warning
type WarningLevel string

const (
	WarningLevelInfo    WarningLevel = "info"
	WarningLevelWarning WarningLevel = "warning"
)

// Warning code for a range group dropped by the lenient range split
const WarnCodeSkippedRangeGroup = "SKIPPED_RANGE_GROUP"

// Warning represents a non-fatal issue encountered while planning or executing.
// Warnings carry no timestamp so that plans holding them stay comparable.
type Warning struct {
	Level   WarningLevel           // Warning severity level
	Code    string                 // Warning code for categorization
	Message string                 // Human-readable warning message
	Cause   error                  // Error that was downgraded to this warning, if any
	Context map[string]interface{} // Additional context (group text, group number, etc.)
}

// Error implements the error interface so warnings can be used as errors if needed
func (w *Warning) Error() string {
	if w.Code != "" {
		return fmt.Sprintf("[%s] %s: %s", w.Level, w.Code, w.Message)
	}
	return fmt.Sprintf("[%s] %s", w.Level, w.Message)
}

// Unwrap returns the downgraded error
func (w *Warning) Unwrap() error {
	return w.Cause
}

// WithContext adds context to the warning and returns the same warning for chaining
func (w *Warning) WithContext(key string, value interface{}) *Warning {
	if w.Context == nil {
		w.Context = make(map[string]interface{})
	}
	w.Context[key] = value
	return w
}

// NewWarning creates a new warning with a code and message
func NewWarning(level WarningLevel, code, message string) *Warning {
	return &Warning{
		Level:   level,
		Code:    code,
		Message: message,
	}
}

// Downgrade turns a recoverable error into a warning with the given code.
// The message is taken from the error.
func Downgrade(code string, err error) *Warning {
	w := NewWarning(WarningLevelWarning, code, err.Error())
	w.Cause = err
	return w
}

// WarningCollector collects warnings during planning or execution
type WarningCollector struct {
	warnings []*Warning
}

// NewWarningCollector creates a new warning collector
func NewWarningCollector() *WarningCollector {
	return &WarningCollector{}
}

// Add adds a warning to the collector
func (wc *WarningCollector) Add(warning *Warning) {
	if warning != nil {
		wc.warnings = append(wc.warnings, warning)
	}
}

// Warnings returns all collected warnings in insertion order
func (wc *WarningCollector) Warnings() []*Warning {
	return wc.warnings
}

// HasWarnings returns true if any warnings have been collected
func (wc *WarningCollector) HasWarnings() bool {
	return len(wc.warnings) > 0
}
