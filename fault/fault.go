package fault

import "fmt"

// UserInfo keys. Stable: callers inspect causality and backend context
// through these.
const (
	// UnderlyingErrorKey holds the chained underlying error, when any.
	UnderlyingErrorKey = "underlying_error"

	// BackendCodeKey holds the raw numeric backend code for errors built
	// from a backend response.
	BackendCodeKey = "backend_code"

	// AttributeErrorsKey holds the per-attribute error map for errors
	// built from a backend response with attribute errors.
	AttributeErrorsKey = "attribute_errors"
)

// PublicError is the stable, externally-catchable error surface.
//
// Every internally raised error, regardless of origin, is reachable as
// exactly one PublicError with a stable Code. PublicError values with the
// same Code match under errors.Is.
type PublicError interface {
	error

	// Code returns the public error code.
	Code() Code

	// Message returns the optional human message attached at construction.
	// Empty when the code's description says everything.
	Message() string

	// UserInfo returns attached metadata as a read-only map. The chained
	// underlying error, when present, is stored under UnderlyingErrorKey.
	UserInfo() map[string]any

	// Unwrap returns the underlying error for errors.Is and errors.As
	// compatibility. Returns nil when nothing is chained.
	Unwrap() error
}

// publicError is the concrete implementation of PublicError.
// It is private to enforce construction through the Normalizer.
type publicError struct {
	code     Code
	message  string
	userInfo map[string]any
	cause    error
}

// Error returns the string representation of the error.
// Format: "[CODE] description" or "[CODE] description: message" when a
// message differing from the description is attached.
func (e *publicError) Error() string {
	desc := e.code.Description()
	if e.message != "" && e.message != desc {
		return fmt.Sprintf("[%s] %s: %s", e.code, desc, e.message)
	}
	return fmt.Sprintf("[%s] %s", e.code, desc)
}

// Code returns the public error code.
func (e *publicError) Code() Code {
	return e.code
}

// Message returns the attached human message.
func (e *publicError) Message() string {
	return e.message
}

// UserInfo returns a defensive copy of the userInfo map, with the
// underlying error merged in under UnderlyingErrorKey.
func (e *publicError) UserInfo() map[string]any {
	info := make(map[string]any, len(e.userInfo)+1)
	for k, v := range e.userInfo {
		info[k] = v
	}
	if e.cause != nil {
		info[UnderlyingErrorKey] = e.cause
	}
	return info
}

// Unwrap returns the chained underlying error.
func (e *publicError) Unwrap() error {
	return e.cause
}

// Is matches any public error carrying the same code, so that
// errors.Is(err, fault.Sentinel(fault.CodeNetwork)) holds for every
// network public error regardless of message or cause.
func (e *publicError) Is(target error) bool {
	other, ok := target.(*publicError)
	return ok && other.code == e.code
}

// Sentinel returns a bare public error for the code, usable as an
// errors.Is target. It carries no message, no cause, and emits no log.
func Sentinel(code Code) PublicError {
	return &publicError{code: code}
}

// taggedError is the internal error produced by the named constructors.
// It carries the stable code before normalization converts it into a
// PublicError.
type taggedError struct {
	code    Code
	message string
	cause   error
}

func (e *taggedError) Error() string {
	msg := e.message
	if msg == "" {
		msg = e.code.Description()
	}
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, msg, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, msg)
}

func (e *taggedError) Unwrap() error {
	return e.cause
}
