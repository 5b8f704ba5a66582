package fault

import (
	"github.com/goccy/go-json"
)

// Payload is the flat, serializable representation of a public error for
// API responses and structured logs. The underlying error chain is
// intentionally reduced to a string to avoid leaking internals.
type Payload struct {
	// Code is the public error code.
	Code string `json:"code"`

	// Description is the code's fixed description.
	Description string `json:"description"`

	// Message is the optional attached human message.
	Message string `json:"message,omitempty"`

	// Underlying is the string form of the chained error, when any.
	Underlying string `json:"underlying,omitempty"`
}

// ToPayload converts any error to a Payload. Errors that are not public
// are normalized first through the default Normalizer. Returns nil if err
// is nil.
func ToPayload(err error) *Payload {
	if err == nil {
		return nil
	}
	pub, ok := AsPublic(err)
	if !ok {
		pub = Normalize(err)
	}

	p := &Payload{
		Code:        string(pub.Code()),
		Description: pub.Code().Description(),
		Message:     pub.Message(),
	}
	if cause := pub.Unwrap(); cause != nil {
		p.Underlying = cause.Error()
	}
	return p
}

// MarshalJSON implements json.Marshaler so public errors can be marshaled
// directly.
func (e *publicError) MarshalJSON() ([]byte, error) {
	payload := &Payload{
		Code:        string(e.code),
		Description: e.code.Description(),
		Message:     e.message,
	}
	if e.cause != nil {
		payload.Underlying = e.cause.Error()
	}
	return json.Marshal(payload)
}
