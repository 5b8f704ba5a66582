package fault

import (
	stderrors "errors"
)

// AsPublic finds the first PublicError in err's chain. Callers that only
// handle plain errors at the outer boundary use this to narrow back to the
// public surface without loss.
func AsPublic(err error) (PublicError, bool) {
	if err == nil {
		return nil, false
	}
	var pub *publicError
	if stderrors.As(err, &pub) {
		return pub, true
	}
	return nil, false
}

// GetCode extracts the public code from an error chain.
// Returns CodeUnknown when err is nil or carries no public error.
func GetCode(err error) Code {
	if pub, ok := AsPublic(err); ok {
		return pub.Code()
	}
	var tagged *taggedError
	if stderrors.As(err, &tagged) {
		return tagged.code
	}
	return CodeUnknown
}

// IsCode reports whether the error chain carries the given public code.
func IsCode(err error, code Code) bool {
	if err == nil {
		return false
	}
	return GetCode(err) == code
}
