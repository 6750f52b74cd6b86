package serve

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_ScanUnmarshal(t *testing.T) {
	input := `{"type":"scan","payload":{"content":"the cat sat","source":"test"}}`

	var req Request
	err := json.Unmarshal([]byte(input), &req)
	require.NoError(t, err)

	assert.Equal(t, RequestScan, req.Type)

	var payload ScanPayload
	err = json.Unmarshal(req.Payload, &payload)
	require.NoError(t, err)

	assert.Equal(t, "the cat sat", payload.Content)
	assert.Equal(t, "test", payload.Source)
}

func TestResponse_Marshal(t *testing.T) {
	data, err := json.Marshal(Response{Success: true, Type: "ready"})
	require.NoError(t, err)

	assert.Contains(t, string(data), `"success":true`)
	assert.Contains(t, string(data), `"type":"ready"`)
	assert.NotContains(t, string(data), `"kind"`)
}
