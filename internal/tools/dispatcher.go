package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/geonet-ai/geonet/internal/schema"
)

// Dispatcher validates model-issued invocation requests against the bound
// registry and runs the matching handler.
//
// Validation failures (unknown tool, missing or mistyped fields) are caught
// before any handler runs and surface as typed errors; the session turns
// them into tool-output text so the model can recover. Handler errors pass
// through unchanged: they mark genuine faults, not domain outcomes.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher binds a dispatcher to an immutable registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Dispatch validates req and invokes the matching handler exactly once.
// The returned string is the text fed back into the conversation.
func (d *Dispatcher) Dispatch(ctx context.Context, req schema.InvocationRequest) (string, error) {
	ts, ok := d.registry.Get(req.ToolName)
	if !ok {
		return "", &UnknownToolError{Name: req.ToolName}
	}

	args, err := coerceArgs(ts, req.RawArguments)
	if err != nil {
		return "", err
	}

	slog.Debug("dispatching tool", "tool", ts.Name, "args", len(args))
	return ts.Handler(ctx, args)
}

// coerceArgs checks every declared field of ts against raw and builds the
// typed argument set. Extra raw fields not declared by the schema are
// ignored for forward compatibility.
func coerceArgs(ts schema.ToolSchema, raw map[string]any) (schema.Args, error) {
	args := make(schema.Args, len(ts.Fields))
	for _, f := range ts.Fields {
		v, present := raw[f.Name]
		if !present {
			if f.Required {
				return nil, &ValidationError{Tool: ts.Name, Field: f.Name, Reason: "is required"}
			}
			continue
		}

		coerced, err := coerceValue(f.Type, v)
		if err != nil {
			return nil, &ValidationError{
				Tool:   ts.Name,
				Field:  f.Name,
				Reason: fmt.Sprintf("must be a %s (got %T)", f.Type, v),
			}
		}
		args[f.Name] = coerced
	}
	return args, nil
}

// coerceValue converts one raw value to the declared field type.
// JSON-decoded payloads deliver float64/bool/string/json.Number; model
// output sometimes stringifies numbers and booleans, so those parse too.
func coerceValue(t schema.FieldType, v any) (any, error) {
	switch t {
	case schema.FieldString:
		switch x := v.(type) {
		case string:
			return x, nil
		case float64:
			return strconv.FormatFloat(x, 'f', -1, 64), nil
		case json.Number:
			return x.String(), nil
		}

	case schema.FieldNumber:
		switch x := v.(type) {
		case float64:
			return x, nil
		case int:
			return float64(x), nil
		case int64:
			return float64(x), nil
		case json.Number:
			return x.Float64()
		case string:
			return strconv.ParseFloat(x, 64)
		}

	case schema.FieldBoolean:
		switch x := v.(type) {
		case bool:
			return x, nil
		case string:
			return strconv.ParseBool(x)
		}
	}
	return nil, fmt.Errorf("cannot coerce %T to %s", v, t)
}
