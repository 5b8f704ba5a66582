package lenient

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrMissingKey indicates a field's document key was absent.
	ErrMissingKey = errors.New("missing key")

	// ErrTypeMismatch indicates a field's value had the wrong shape at the
	// leaf level. Recoverable under a fallback policy.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrNestedElement indicates a value had the right shape for its field
	// but an element inside it failed to decode. Never recoverable: the
	// whole record decode fails.
	ErrNestedElement = errors.New("nested element invalid")

	// ErrInvalidTag indicates a struct tag has an invalid format or value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrInvalidDefault indicates a declared default value is not
	// assignable to its field.
	ErrInvalidDefault = errors.New("invalid default")

	// ErrNotNilable indicates a nil fallback policy was declared on a
	// field whose kind cannot hold nil.
	ErrNotNilable = errors.New("field not nilable")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// ConfigError represents a decoder configuration error.
// It wraps a sentinel error with additional context about the field.
type ConfigError struct {
	Err    error  // Underlying sentinel error (ErrInvalidTag, etc.)
	Field  string // Field name that triggered the error
	Detail string // Tag value or type that was invalid
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.Detail != "" {
		return fmt.Sprintf("%s %q (field %s)", e.Err.Error(), e.Detail, e.Field)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// FieldError represents a decode failure at a specific field.
// It wraps a sentinel error with the field name, the document key that was
// read, and the original codec error.
type FieldError struct {
	Err   error  // Underlying sentinel error (ErrTypeMismatch, ErrNestedElement)
	Field string // Field name that failed
	Key   string // Document key the value was read from
	Cause error  // Original error from the codec
}

func (e *FieldError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s at field %s (key %q): %v", e.Err.Error(), e.Field, e.Key, e.Cause)
	}
	return fmt.Sprintf("%s at field %s (key %q)", e.Err.Error(), e.Field, e.Key)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newConfigError creates a ConfigError for invalid decoder configuration.
func newConfigError(sentinel error, field, detail string) error {
	return &ConfigError{
		Err:    sentinel,
		Field:  field,
		Detail: detail,
	}
}

// newFieldError creates a FieldError for a per-field decode failure.
func newFieldError(sentinel error, field, key string, cause error) error {
	return &FieldError{
		Err:   sentinel,
		Field: field,
		Key:   key,
		Cause: cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
