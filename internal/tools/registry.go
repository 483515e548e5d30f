package tools

import (
	"fmt"

	"github.com/takashabe/learningsuite-mcp/internal/learningsuite"
)

// Registry is the read-only tool catalog. It is built once and never mutated.
type Registry struct {
	tools []Tool
	index map[string]int
}

// NewRegistry declares every LearningSuite tool, bound to client.
func NewRegistry(client *learningsuite.Client) (*Registry, error) {
	var all []Tool
	for _, group := range [][]Tool{
		memberTools(client),
		groupTools(client),
		courseTools(client),
		hubTools(client),
		communityTools(client),
		notificationTools(client),
		webhookTools(client),
	} {
		all = append(all, group...)
	}
	return newRegistry(all)
}

func newRegistry(tools []Tool) (*Registry, error) {
	r := &Registry{
		tools: make([]Tool, 0, len(tools)),
		index: make(map[string]int, len(tools)),
	}
	for _, t := range tools {
		if err := validate(t); err != nil {
			return nil, err
		}
		if _, dup := r.index[t.Name]; dup {
			return nil, fmt.Errorf("tool %s registered twice", t.Name)
		}
		r.index[t.Name] = len(r.tools)
		r.tools = append(r.tools, t)
	}
	return r, nil
}

func validate(t Tool) error {
	if t.Name == "" {
		return fmt.Errorf("tool name is required")
	}
	if t.Handler == nil {
		return fmt.Errorf("tool %s has no binding", t.Name)
	}
	if t.InputSchema == nil || t.InputSchema.Type != "object" {
		return fmt.Errorf("tool %s: input schema must be an object", t.Name)
	}
	for _, field := range t.InputSchema.Required {
		if _, ok := t.InputSchema.Properties[field]; !ok {
			return fmt.Errorf("tool %s: required field %q is not a property", t.Name, field)
		}
	}
	return nil
}

// ListTools returns every descriptor in declaration order. The schemas are
// copies; changing them does not affect the registry.
func (r *Registry) ListTools() []Descriptor {
	out := make([]Descriptor, len(r.tools))
	for i, t := range r.tools {
		out[i] = t.Descriptor
		out[i].InputSchema = cloneSchema(t.InputSchema)
	}
	return out
}

func (r *Registry) Lookup(name string) (Tool, bool) {
	i, ok := r.index[name]
	if !ok {
		return Tool{}, false
	}
	return r.tools[i], true
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.tools))
	for i, t := range r.tools {
		names[i] = t.Name
	}
	return names
}
