package fault

import (
	"fmt"
	"sort"
	"strings"
)

// BackendCode is the raw numeric error code returned by the backend.
type BackendCode int

// Known backend codes.
const (
	BackendCustomerInfoUnavailable     BackendCode = 7113
	BackendInvalidAPIKey               BackendCode = 7225
	BackendInvalidSubscriberAttributes BackendCode = 7263
	BackendPurchaseBlocked             BackendCode = 7638
	BackendEndpointBlocked             BackendCode = 7878
)

// backendToPublic maps every known backend code to its public code.
var backendToPublic = map[BackendCode]Code{
	BackendCustomerInfoUnavailable:     CodeCustomerInfo,
	BackendInvalidAPIKey:               CodeInvalidAPIKey,
	BackendInvalidSubscriberAttributes: CodeInvalidSubscriberAttributes,
	BackendPurchaseBlocked:             CodePurchaseNotAllowed,
	BackendEndpointBlocked:             CodeAPIEndpointBlocked,
}

// Public returns the public code for a backend code. The mapping is total:
// unknown backend codes map to CodeUnknownBackend, never an error.
func (b BackendCode) Public() Code {
	if c, ok := backendToPublic[b]; ok {
		return c
	}
	return CodeUnknownBackend
}

// ErrorResponse is the already-parsed error payload of a backend response.
// It is consumed once to build a PublicError plus one log line, then
// discarded.
type ErrorResponse struct {
	// Code is the backend error code.
	Code BackendCode `json:"code"`

	// OriginalCode is the raw numeric code as received, kept for log
	// lines even when Code was normalized upstream.
	OriginalCode int `json:"original_code"`

	// Message is the backend's human-readable message.
	Message string `json:"message"`

	// AttributeErrors maps attribute names to their rejection reasons.
	AttributeErrors map[string]string `json:"attribute_errors,omitempty"`
}

// Err returns the response as an error value suitable for Normalize.
func (r *ErrorResponse) Err() error {
	return &backendError{resp: *r}
}

// backendError adapts an ErrorResponse to the error interface so the
// normalizer can treat backend failures like any other origin.
type backendError struct {
	resp ErrorResponse
}

func (e *backendError) Error() string {
	if e.resp.Message != "" {
		return fmt.Sprintf("backend error %d: %s", e.originalCode(), e.resp.Message)
	}
	return fmt.Sprintf("backend error %d", e.originalCode())
}

// originalCode prefers the raw code when it was carried separately.
func (e *backendError) originalCode() int {
	if e.resp.OriginalCode != 0 {
		return e.resp.OriginalCode
	}
	return int(e.resp.Code)
}

// attributeErrorsDescription renders the attribute errors deterministically,
// sorted by attribute name.
func (e *backendError) attributeErrorsDescription() string {
	if len(e.resp.AttributeErrors) == 0 {
		return ""
	}
	names := make([]string, 0, len(e.resp.AttributeErrors))
	for name := range e.resp.AttributeErrors {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.resp.AttributeErrors[name]))
	}
	return strings.Join(parts, "; ")
}
