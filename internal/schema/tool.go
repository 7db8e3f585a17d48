// Package schema contains the core contracts shared across geonet packages.
// Concrete implementations live in their respective packages; this package is
// the single canonical source of truth for every shared type and interface.
package schema

import (
	"context"
	"strconv"
)

// FieldType is the explicit type tag carried by a tool input field.
// The dispatcher interprets it procedurally when coercing raw arguments.
type FieldType string

const (
	FieldString  FieldType = "string"
	FieldNumber  FieldType = "number"
	FieldBoolean FieldType = "boolean"
)

// Field describes one typed input field of a tool.
type Field struct {
	Name        string
	Type        FieldType
	Required    bool
	Description string
}

// Args is the validated, typed argument set handed to a tool handler.
// Values are guaranteed to match the declared field types: string for
// FieldString, float64 for FieldNumber, bool for FieldBoolean.
type Args map[string]any

// String returns the named string argument, or "" when absent.
func (a Args) String(name string) string {
	s, _ := a[name].(string)
	return s
}

// Float returns the named number argument, or 0 when absent.
func (a Args) Float(name string) float64 {
	f, _ := a[name].(float64)
	return f
}

// Bool returns the named boolean argument, or false when absent.
func (a Args) Bool(name string) bool {
	b, _ := a[name].(bool)
	return b
}

// Has reports whether the named argument was supplied.
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Handler executes a tool with validated arguments and returns the text fed
// back into the conversation. Domain outcomes such as "not found" are
// successful, informative text; an error is returned only for genuine faults
// (provider unreachable, internal failure).
type Handler func(ctx context.Context, args Args) (string, error)

// ToolSchema describes one callable tool: its name, the description shown to
// the model, its typed input fields, and the handler that executes it.
type ToolSchema struct {
	Name        string
	Description string
	Fields      []Field
	Handler     Handler
}

// Definition returns the tool in OpenAI function-calling format, built
// procedurally from the field descriptors.
func (t ToolSchema) Definition() map[string]any {
	properties := make(map[string]any, len(t.Fields))
	required := make([]string, 0, len(t.Fields))
	for _, f := range t.Fields {
		properties[f.Name] = map[string]any{
			"type":        string(f.Type),
			"description": f.Description,
		}
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return map[string]any{
		"type": "function",
		"function": map[string]any{
			"name":        t.Name,
			"description": t.Description,
			"parameters": map[string]any{
				"type":       "object",
				"properties": properties,
				"required":   required,
			},
		},
	}
}

// InvocationRequest is a model-issued request to run one tool.
// RawArguments carries the untyped values exactly as received from the model.
type InvocationRequest struct {
	ToolName     string
	RawArguments map[string]any
}

// FormatCoord renders a coordinate the way the geo tools present it to the
// model: shortest decimal representation, no trailing zeros.
func FormatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
