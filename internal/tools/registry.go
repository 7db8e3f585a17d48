// Package tools implements the tool registry, the invocation dispatcher, and
// the built-in geo tools exposed to the model.
package tools

import (
	"github.com/geonet-ai/geonet/internal/schema"
)

// ToolName is the canonical name of a built-in tool.
type ToolName string

const (
	ToolGetCoordinates    ToolName = "get_coordinates"
	ToolCalculateDistance ToolName = "calculate_distance"
	ToolReverseGeocode    ToolName = "reverse_geocode"
)

// Registry is an ordered, name-unique collection of tool schemas.
// It is constructed once per session and never mutated afterwards: there is
// no hot-swapping of capabilities mid-conversation.
type Registry struct {
	order []schema.ToolSchema
	index map[string]int
}

// NewRegistry builds a registry from the given schemas in order.
// It fails with DuplicateToolError if two schemas share a name.
func NewRegistry(schemas ...schema.ToolSchema) (*Registry, error) {
	r := &Registry{index: make(map[string]int, len(schemas))}
	for _, ts := range schemas {
		if err := r.register(ts); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) register(ts schema.ToolSchema) error {
	if _, exists := r.index[ts.Name]; exists {
		return &DuplicateToolError{Name: ts.Name}
	}
	r.index[ts.Name] = len(r.order)
	r.order = append(r.order, ts)
	return nil
}

// Get returns the schema with the given name.
func (r *Registry) Get(name string) (schema.ToolSchema, bool) {
	i, ok := r.index[name]
	if !ok {
		return schema.ToolSchema{}, false
	}
	return r.order[i], true
}

// Len returns the number of registered tools.
func (r *Registry) Len() int { return len(r.order) }

// Schemas returns the registered schemas in registration order.
func (r *Registry) Schemas() []schema.ToolSchema {
	out := make([]schema.ToolSchema, len(r.order))
	copy(out, r.order)
	return out
}

// Definitions returns all tool definitions in OpenAI function-calling format,
// in registration order.
func (r *Registry) Definitions() []map[string]any {
	defs := make([]map[string]any, 0, len(r.order))
	for _, ts := range r.order {
		defs = append(defs, ts.Definition())
	}
	return defs
}
