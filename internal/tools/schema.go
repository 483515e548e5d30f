package tools

import (
	"slices"

	"github.com/google/jsonschema-go/jsonschema"
)

type props map[string]*jsonschema.Schema

func object(p props, required ...string) *jsonschema.Schema {
	if p == nil {
		p = props{}
	}
	return &jsonschema.Schema{
		Type:       "object",
		Properties: p,
		Required:   required,
	}
}

func str(description string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Description: description}
}

func num(description string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "number", Description: description}
}

func boolean(description string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "boolean", Description: description}
}

func strList(description string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "array",
		Description: description,
		Items:       &jsonschema.Schema{Type: "string"},
	}
}

func enum(description string, values []string) *jsonschema.Schema {
	s := str(description)
	s.Enum = make([]any, len(values))
	for i, v := range values {
		s.Enum[i] = v
	}
	return s
}

func enumList(description string, values []string) *jsonschema.Schema {
	s := strList(description)
	s.Items = enum("", values)
	return s
}

// paged adds the limit/offset pair to p.
func paged(p props) props {
	if p == nil {
		p = props{}
	}
	p["limit"] = num("Maximum number of items to return")
	p["offset"] = num("Number of items to skip")
	return p
}

func id(what string) *jsonschema.Schema {
	return str("ID of the " + what)
}

// cloneSchema copies s including the Required and Enum slices, which
// CloneSchemas leaves shared.
func cloneSchema(s *jsonschema.Schema) *jsonschema.Schema {
	c := s.CloneSchemas()
	var walk func(*jsonschema.Schema)
	walk = func(s *jsonschema.Schema) {
		if s == nil {
			return
		}
		s.Required = slices.Clone(s.Required)
		s.Enum = slices.Clone(s.Enum)
		for _, p := range s.Properties {
			walk(p)
		}
		walk(s.Items)
	}
	walk(c)
	return c
}
