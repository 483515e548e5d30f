package types

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallEnvelope_RawArguments(t *testing.T) {
	raw, err := CallEnvelope{ToolName: "x"}.RawArguments()
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw))

	raw, err = CallEnvelope{ToolName: "x", Arguments: map[string]any{"memberId": "m1"}}.RawArguments()
	require.NoError(t, err)
	assert.JSONEq(t, `{"memberId":"m1"}`, string(raw))
}

func TestResultConstructors(t *testing.T) {
	ok := NewTextResult(`{"a":1}`)
	assert.False(t, ok.IsError)
	assert.Equal(t, []Content{{Type: "text", Text: `{"a":1}`}}, ok.Content)

	failed := NewErrorResult(errors.New("API Error 404: not found"))
	assert.True(t, failed.IsError)
	assert.Equal(t, "Error: API Error 404: not found", failed.Content[0].Text)

	b, err := json.Marshal(ok)
	require.NoError(t, err)
	assert.JSONEq(t, `{"content":[{"type":"text","text":"{\"a\":1}"}]}`, string(b))
}
