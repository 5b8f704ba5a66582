package fault_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/lenient/fault"
)

func TestCode_Description(t *testing.T) {
	assert.Equal(t, "Error performing request.", fault.CodeNetwork.Description())
	assert.Equal(t, "An unknown error occurred.", fault.CodeUnknown.Description())
	assert.Equal(t, "An unknown error occurred.", fault.Code("NOT_A_CODE").Description(),
		"unrecognized codes share the unknown description")
}

func TestCode_Valid(t *testing.T) {
	assert.True(t, fault.CodeConfiguration.Valid())
	assert.True(t, fault.CodeUnknownBackend.Valid())
	assert.False(t, fault.Code("NOT_A_CODE").Valid())
}

func TestPublicError_ErrorString(t *testing.T) {
	n, _ := newCapturing()

	pub := n.Normalize(fault.OfflineConnectionError())
	assert.Equal(t,
		"[OFFLINE_CONNECTION_ERROR] "+fault.CodeOfflineConnection.Description(),
		pub.Error())

	pub = n.Normalize(fault.ConfigurationError("API key missing"))
	assert.Equal(t,
		"[CONFIGURATION_ERROR] "+fault.CodeConfiguration.Description()+": API key missing",
		pub.Error())
}

func TestSentinel_MatchesByCode(t *testing.T) {
	n, _ := newCapturing()

	pub := n.Normalize(fault.NetworkError(errors.New("dial tcp: refused")))

	assert.ErrorIs(t, pub, fault.Sentinel(fault.CodeNetwork))
	assert.NotErrorIs(t, pub, fault.Sentinel(fault.CodeOfflineConnection))
}

func TestSentinel_MatchesThroughChain(t *testing.T) {
	n, _ := newCapturing()

	pub := n.Normalize(fault.PurchaseNotAllowedError())
	wrapped := newWrapping("purchase flow", pub)

	assert.ErrorIs(t, wrapped, fault.Sentinel(fault.CodePurchaseNotAllowed))
}

// newWrapping wraps err behind a plain error boundary.
func newWrapping(msg string, err error) error {
	return &wrappingError{msg: msg, err: err}
}

type wrappingError struct {
	msg string
	err error
}

func (e *wrappingError) Error() string { return e.msg + ": " + e.err.Error() }
func (e *wrappingError) Unwrap() error { return e.err }

func TestPublicError_UserInfoIsACopy(t *testing.T) {
	n, _ := newCapturing()

	resp := &fault.ErrorResponse{Code: fault.BackendInvalidAPIKey, Message: "m"}
	pub := n.Normalize(resp.Err())

	info := pub.UserInfo()
	info[fault.BackendCodeKey] = -1

	assert.Equal(t, 7225, pub.UserInfo()[fault.BackendCodeKey],
		"mutating the returned map must not affect the error")
}

func TestPublicError_UserInfoCarriesUnderlying(t *testing.T) {
	n, _ := newCapturing()

	cause := errors.New("root cause")
	pub := n.Normalize(fault.CustomerInfoError(cause))

	require.Contains(t, pub.UserInfo(), fault.UnderlyingErrorKey)
	assert.Equal(t, cause, pub.UserInfo()[fault.UnderlyingErrorKey])

	pub = n.Normalize(fault.OfflineConnectionError())
	assert.NotContains(t, pub.UserInfo(), fault.UnderlyingErrorKey)
}

func TestLevel_Prefix(t *testing.T) {
	assert.Equal(t, "ERROR:", fault.LevelError.Prefix())
	assert.Equal(t, "WARN:", fault.LevelWarn.Prefix())
	assert.Equal(t, "INFO:", fault.LevelInfo.Prefix())
	assert.Equal(t, "INFO:", fault.Level("TRACE").Prefix())
}
