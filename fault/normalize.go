package fault

import (
	"errors"
	"fmt"
	"strings"
)

// Normalizer converts heterogeneous errors into PublicError values and
// emits exactly one log line per conversion. It holds no state besides the
// log sink and is safe for concurrent use.
type Normalizer struct {
	log Logger
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithLogger substitutes the log sink. The default forwards to capitan.
func WithLogger(l Logger) Option {
	return func(n *Normalizer) {
		n.log = l
	}
}

// New creates a Normalizer.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{log: DefaultLogger()}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// std is the process-wide default instance, for convenience only; inject a
// Normalizer where testability matters.
var std = New()

// Normalize converts err through the default Normalizer.
func Normalize(err error) PublicError {
	return std.Normalize(err)
}

// NormalizeMessage converts err through the default Normalizer, attaching
// an extra log message.
func NormalizeMessage(err error, extra string) PublicError {
	return std.NormalizeMessage(err, extra)
}

// Normalize converts any error into a PublicError with a stable code and
// emits one log line. Inputs already normalized pass through unchanged
// with no second emission.
func (n *Normalizer) Normalize(err error) PublicError {
	return n.normalize(err, "")
}

// NormalizeMessage is Normalize with an extra human message appended to
// the log line. The extra message is suppressed when it is textually
// identical to the error's description.
func (n *Normalizer) NormalizeMessage(err error, extra string) PublicError {
	return n.normalize(err, extra)
}

func (n *Normalizer) normalize(err error, extra string) PublicError {
	if err == nil {
		return nil
	}

	// Idempotent: an already-public error is returned as-is, and the log
	// line it was born with is not repeated.
	var pub *publicError
	if errors.As(err, &pub) {
		return pub
	}

	var be *backendError
	if errors.As(err, &be) {
		return n.fromBackend(be)
	}

	var tagged *taggedError
	if errors.As(err, &tagged) {
		p := &publicError{
			code:    tagged.code,
			message: tagged.message,
			cause:   tagged.cause,
		}
		if extra == "" {
			extra = tagged.message
		}
		n.emit(p.code.Description(), extra)
		return p
	}

	// Raw origin error: wrap without classification.
	p := &publicError{code: CodeUnknown, cause: err}
	if extra == "" {
		extra = err.Error()
	}
	n.emit(p.code.Description(), extra)
	return p
}

// fromBackend builds the public error for a backend response. Attribute
// errors take precedence over the plain message in the log line; the plain
// message is still retained on the error object.
func (n *Normalizer) fromBackend(be *backendError) PublicError {
	code := be.resp.Code.Public()

	info := map[string]any{
		BackendCodeKey: be.originalCode(),
	}
	if len(be.resp.AttributeErrors) > 0 {
		attrs := make(map[string]string, len(be.resp.AttributeErrors))
		for k, v := range be.resp.AttributeErrors {
			attrs[k] = v
		}
		info[AttributeErrorsKey] = attrs
	}

	p := &publicError{
		code:     code,
		message:  be.resp.Message,
		userInfo: info,
		cause:    be,
	}

	if attrs := be.attributeErrorsDescription(); attrs != "" {
		n.emit(code.Description(), attrs)
		return p
	}
	n.emit(code.Description(), strings.TrimSpace(fmt.Sprintf("%s (%d)", be.resp.Message, be.originalCode())))
	return p
}

// emit sends exactly one log line at error level. The extra message is
// dropped when empty or equal to the description, so no line ever repeats
// itself.
func (n *Normalizer) emit(description, extra string) {
	parts := []string{LevelError.Prefix(), description}
	if extra != "" && extra != description {
		parts = append(parts, extra)
	}
	n.log.Emit(LevelError, strings.Join(parts, " "))
}
