package errors

import (
	"fmt"
)

// Bound names which edge of a date range a value violated.
type Bound string

const (
	BoundMin Bound = "min"
	BoundMax Bound = "max"
)

// RangeConfigurationError reports a range whose minimum lies after its maximum.
type RangeConfigurationError struct {
	Min string
	Max string
}

// NewRangeConfigurationError constructs a RangeConfigurationError.
func NewRangeConfigurationError(min, max fmt.Stringer) error {
	return &RangeConfigurationError{Min: min.String(), Max: max.String()}
}

func (e *RangeConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("range configuration error: min date %s is after max date %s", e.Min, e.Max)
}

// OutOfRangeError reports an initial date outside the configured range.
type OutOfRangeError struct {
	Value string
	Bound Bound
	Limit string
}

// NewOutOfRangeError constructs an OutOfRangeError for the violated bound.
func NewOutOfRangeError(value fmt.Stringer, bound Bound, limit fmt.Stringer) error {
	return &OutOfRangeError{Value: value.String(), Bound: bound, Limit: limit.String()}
}

func (e *OutOfRangeError) Error() string {
	if e == nil {
		return ""
	}
	switch e.Bound {
	case BoundMin:
		return fmt.Sprintf("out of range: initial date %s is before min date %s", e.Value, e.Limit)
	case BoundMax:
		return fmt.Sprintf("out of range: initial date %s is after max date %s", e.Value, e.Limit)
	default:
		return fmt.Sprintf("out of range: initial date %s", e.Value)
	}
}

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
