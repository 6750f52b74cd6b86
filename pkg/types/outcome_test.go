package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, OutcomeFound, OutcomeOf(true))
	assert.Equal(t, OutcomeNotFound, OutcomeOf(false))
}

func TestOutcome_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Outcome Outcome `json:"outcome"`
	}{OutcomeNotFound})
	require.NoError(t, err)
	assert.Equal(t, `{"outcome":"not-found"}`, string(data))
}
