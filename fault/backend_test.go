package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/lenient/fault"
)

func TestBackendCode_PublicMapping(t *testing.T) {
	cases := []struct {
		backend fault.BackendCode
		public  fault.Code
	}{
		{fault.BackendCustomerInfoUnavailable, fault.CodeCustomerInfo},
		{fault.BackendInvalidAPIKey, fault.CodeInvalidAPIKey},
		{fault.BackendInvalidSubscriberAttributes, fault.CodeInvalidSubscriberAttributes},
		{fault.BackendPurchaseBlocked, fault.CodePurchaseNotAllowed},
		{fault.BackendEndpointBlocked, fault.CodeAPIEndpointBlocked},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.public, tc.backend.Public(), "backend code %d", tc.backend)
	}
}

func TestBackendCode_PublicMappingIsTotal(t *testing.T) {
	assert.Equal(t, fault.CodeUnknownBackend, fault.BackendCode(9999).Public())
	assert.Equal(t, fault.CodeUnknownBackend, fault.BackendCode(0).Public())
	assert.Equal(t, fault.CodeUnknownBackend, fault.BackendCode(-1).Public())
}

func TestNormalize_BackendResponse(t *testing.T) {
	n, sink := newCapturing()

	resp := &fault.ErrorResponse{
		Code:    fault.BackendInvalidAPIKey,
		Message: "API key is malformed.",
	}
	pub := n.Normalize(resp.Err())

	require.NotNil(t, pub)
	assert.Equal(t, fault.CodeInvalidAPIKey, pub.Code())
	assert.Equal(t, "API key is malformed.", pub.Message())
	assert.Equal(t, 7225, pub.UserInfo()[fault.BackendCodeKey])

	msgs := sink.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "ERROR: "+fault.CodeInvalidAPIKey.Description()+" API key is malformed. (7225)", msgs[0].Text)
}

func TestNormalize_BackendResponsePrefersOriginalCode(t *testing.T) {
	n, sink := newCapturing()

	resp := &fault.ErrorResponse{
		Code:         fault.BackendEndpointBlocked,
		OriginalCode: 7879,
		Message:      "blocked",
	}
	pub := n.Normalize(resp.Err())

	assert.Equal(t, 7879, pub.UserInfo()[fault.BackendCodeKey])

	msgs := sink.Messages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Text, "(7879)")
}

func TestNormalize_BackendResponseAttributeErrorsWinTheLogLine(t *testing.T) {
	n, sink := newCapturing()

	resp := &fault.ErrorResponse{
		Code:    fault.BackendInvalidSubscriberAttributes,
		Message: "Some attributes were rejected.",
		AttributeErrors: map[string]string{
			"$email":       "is not a valid email",
			"$displayName": "is too long",
		},
	}
	pub := n.Normalize(resp.Err())

	assert.Equal(t, fault.CodeInvalidSubscriberAttributes, pub.Code())
	// The plain message stays on the error even though the log line
	// carries the attribute errors instead.
	assert.Equal(t, "Some attributes were rejected.", pub.Message())

	attrs, ok := pub.UserInfo()[fault.AttributeErrorsKey].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "is not a valid email", attrs["$email"])

	msgs := sink.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t,
		"ERROR: "+fault.CodeInvalidSubscriberAttributes.Description()+
			" $displayName: is too long; $email: is not a valid email",
		msgs[0].Text)
}

func TestNormalize_BackendResponseUnknownCode(t *testing.T) {
	n, sink := newCapturing()

	resp := &fault.ErrorResponse{Code: 7000, Message: "new failure mode"}
	pub := n.Normalize(resp.Err())

	assert.Equal(t, fault.CodeUnknownBackend, pub.Code())
	assert.Equal(t, 7000, pub.UserInfo()[fault.BackendCodeKey])

	msgs := sink.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "ERROR: "+fault.CodeUnknownBackend.Description()+" new failure mode (7000)", msgs[0].Text)
}

func TestNormalize_BackendResponseEmptyMessage(t *testing.T) {
	n, sink := newCapturing()

	resp := &fault.ErrorResponse{Code: fault.BackendPurchaseBlocked}
	n.Normalize(resp.Err())

	msgs := sink.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "ERROR: "+fault.CodePurchaseNotAllowed.Description()+" (7638)", msgs[0].Text)
}

func TestErrorResponse_ErrString(t *testing.T) {
	err := (&fault.ErrorResponse{Code: fault.BackendInvalidAPIKey, Message: "bad key"}).Err()
	assert.Equal(t, "backend error 7225: bad key", err.Error())

	err = (&fault.ErrorResponse{Code: fault.BackendInvalidAPIKey}).Err()
	assert.Equal(t, "backend error 7225", err.Error())
}
