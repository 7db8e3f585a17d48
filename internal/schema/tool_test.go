package schema

import "testing"

func TestFormatCoord(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{48.8566, "48.8566"},
		{2.3522, "2.3522"},
		{0, "0"},
		{-33.8688, "-33.8688"},
		{50, "50"},
	}
	for _, tc := range tests {
		if got := FormatCoord(tc.in); got != tc.want {
			t.Errorf("FormatCoord(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestArgsAccessors(t *testing.T) {
	args := Args{"name": "Paris", "lat": 48.8566, "verbose": true}

	if got := args.String("name"); got != "Paris" {
		t.Errorf("String = %q", got)
	}
	if got := args.Float("lat"); got != 48.8566 {
		t.Errorf("Float = %v", got)
	}
	if !args.Bool("verbose") {
		t.Error("Bool = false")
	}
	if !args.Has("lat") {
		t.Error("Has(lat) = false")
	}
	if args.Has("missing") {
		t.Error("Has(missing) = true")
	}
	if got := args.String("missing"); got != "" {
		t.Errorf("String(missing) = %q, want empty", got)
	}
	if got := args.Float("missing"); got != 0 {
		t.Errorf("Float(missing) = %v, want 0", got)
	}
}

func TestToolSchema_Definition(t *testing.T) {
	schema := ToolSchema{
		Name:        "get_coordinates",
		Description: "Look up coordinates for a named place.",
		Fields: []Field{
			{Name: "place_name", Type: FieldString, Required: true, Description: "The place to look up"},
			{Name: "precise", Type: FieldBoolean, Required: false, Description: "Ask for full precision"},
		},
	}

	def := schema.Definition()
	if def["type"] != "function" {
		t.Fatalf("unexpected type %v", def["type"])
	}

	fn := def["function"].(map[string]any)
	if fn["name"] != "get_coordinates" {
		t.Errorf("unexpected name %v", fn["name"])
	}

	params := fn["parameters"].(map[string]any)
	props := params["properties"].(map[string]any)
	place := props["place_name"].(map[string]any)
	if place["type"] != "string" {
		t.Errorf("unexpected field type %v", place["type"])
	}

	required := params["required"].([]string)
	if len(required) != 1 || required[0] != "place_name" {
		t.Errorf("unexpected required list %v", required)
	}
}
