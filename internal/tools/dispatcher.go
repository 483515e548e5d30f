package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/takashabe/learningsuite-mcp/pkg/types"
)

// ErrUnknownTool is returned for a tool name that has no binding.
var ErrUnknownTool = errors.New("Unknown tool")

// UnknownToolError reports a call to name, which has no binding.
func UnknownToolError(name string) error {
	return fmt.Errorf("%w: %s", ErrUnknownTool, name)
}

// Dispatcher routes tool calls to their bindings. It holds no mutable state
// and is safe for concurrent use.
type Dispatcher struct {
	registry *Registry
	logger   zerolog.Logger
	tracer   trace.Tracer
}

func NewDispatcher(registry *Registry, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		logger:   logger,
		tracer:   otel.Tracer("github.com/takashabe/learningsuite-mcp/internal/tools"),
	}
}

func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Call invokes the tool named in env.
func (d *Dispatcher) Call(ctx context.Context, env types.CallEnvelope) *types.CallToolResult {
	args, err := env.RawArguments()
	if err != nil {
		return types.NewErrorResult(fmt.Errorf("invalid arguments: %w", err))
	}
	return d.Invoke(ctx, env.ToolName, args)
}

// Invoke runs the named tool with raw JSON arguments. It always returns a
// result; every failure, including a panic in the binding, becomes an error
// result.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args json.RawMessage) (result *types.CallToolResult) {
	callID := uuid.NewString()
	start := time.Now()
	logger := d.logger.With().Str("tool", name).Str("call_id", callID).Logger()

	ctx, span := d.tracer.Start(ctx, "tools/call "+name, trace.WithAttributes(
		attribute.String("mcp.tool.name", name),
		attribute.String("mcp.call.id", callID),
	))

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("tool binding panicked")
			result = types.NewErrorResult(fmt.Errorf("internal error in %s: %v", name, r))
		}
		if result.IsError {
			span.SetStatus(codes.Error, result.Content[0].Text)
		}
		span.End()
		logger.Info().
			Dur("duration", time.Since(start)).
			Bool("is_error", result.IsError).
			Msg("tool call finished")
	}()

	tool, ok := d.registry.Lookup(name)
	if !ok {
		return types.NewErrorResult(UnknownToolError(name))
	}

	payload, err := tool.Handler(ctx, args)
	if err != nil {
		logger.Warn().Err(err).Msg("tool call failed")
		return types.NewErrorResult(err)
	}

	text, err := formatPayload(payload)
	if err != nil {
		return types.NewErrorResult(err)
	}
	return types.NewTextResult(text)
}

// formatPayload pretty-prints a JSON payload, keeping the key order of the
// API response.
func formatPayload(payload json.RawMessage) (string, error) {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		payload = json.RawMessage(`{}`)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, payload, "", "  "); err != nil {
		return "", fmt.Errorf("failed to format response: %w", err)
	}
	return buf.String(), nil
}
