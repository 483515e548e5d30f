// Package tools declares the LearningSuite tool catalog and dispatches tool
// calls to the matching API operation.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// NamePrefix is prepended to every operation name to form its tool name.
const NamePrefix = "learningsuite_"

// Descriptor is the advertised metadata of a tool.
type Descriptor struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"inputSchema"`
}

// Handler runs a tool with its raw JSON arguments and returns the raw JSON
// payload of the API response.
type Handler func(ctx context.Context, args json.RawMessage) (json.RawMessage, error)

// Tool binds a descriptor to the handler that implements it.
type Tool struct {
	Descriptor
	Handler Handler
}

func newTool(operation, description string, schema *jsonschema.Schema, h Handler) Tool {
	return Tool{
		Descriptor: Descriptor{
			Name:        NamePrefix + operation,
			Description: description,
			InputSchema: schema,
		},
		Handler: h,
	}
}

// bind adapts a typed client method into a Handler. The arguments are decoded
// into P; required fields are not checked here, the API reports them.
func bind[P any](call func(context.Context, P) (json.RawMessage, error)) Handler {
	return func(ctx context.Context, args json.RawMessage) (json.RawMessage, error) {
		var p P
		if err := decodeArguments(args, &p); err != nil {
			return nil, err
		}
		return call(ctx, p)
	}
}

func decodeArguments(args json.RawMessage, v any) error {
	trimmed := strings.TrimSpace(string(args))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}
