package types

import "encoding/json"

// CallEnvelope is a single tool invocation as produced by the calling agent.
type CallEnvelope struct {
	ToolName  string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// RawArguments returns the arguments re-encoded as JSON.
// A nil map encodes as an empty object.
func (e CallEnvelope) RawArguments() (json.RawMessage, error) {
	if e.Arguments == nil {
		return json.RawMessage(`{}`), nil
	}
	return json.Marshal(e.Arguments)
}

type CallToolResult struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewTextResult wraps text as a successful single-block result.
func NewTextResult(text string) *CallToolResult {
	return &CallToolResult{
		Content: []Content{{Type: "text", Text: text}},
	}
}

// NewErrorResult wraps err as a failed single-block result.
func NewErrorResult(err error) *CallToolResult {
	return &CallToolResult{
		Content: []Content{{Type: "text", Text: "Error: " + err.Error()}},
		IsError: true,
	}
}
