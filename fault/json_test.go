package fault_test

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/lenient/fault"
)

func TestToPayload(t *testing.T) {
	n, _ := newCapturing()

	assert.Nil(t, fault.ToPayload(nil))

	pub := n.Normalize(fault.NetworkError(errors.New("dial tcp: refused")))
	p := fault.ToPayload(pub)
	require.NotNil(t, p)
	assert.Equal(t, "NETWORK_ERROR", p.Code)
	assert.Equal(t, fault.CodeNetwork.Description(), p.Description)
	assert.Equal(t, "dial tcp: refused", p.Underlying)
}

func TestToPayload_NormalizesRawErrors(t *testing.T) {
	p := fault.ToPayload(errors.New("raw"))
	require.NotNil(t, p)
	assert.Equal(t, "UNKNOWN", p.Code)
	assert.Equal(t, "raw", p.Underlying)
}

func TestPublicError_MarshalJSON(t *testing.T) {
	n, _ := newCapturing()

	pub := n.Normalize(fault.ConfigurationError("missing API key"))
	data, err := json.Marshal(pub)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "CONFIGURATION_ERROR", out["code"])
	assert.Equal(t, fault.CodeConfiguration.Description(), out["description"])
	assert.Equal(t, "missing API key", out["message"])
	assert.NotContains(t, out, "underlying")
}
