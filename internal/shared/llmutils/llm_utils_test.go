package llmutils

import (
	"testing"

	"github.com/geonet-ai/geonet/internal/schema"
)

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("unexpected %q", got)
	}
	if got := Truncate("hello world", 5); got != "hello..." {
		t.Errorf("unexpected %q", got)
	}
}

func TestStripThink(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no block", "Paris is in France.", "Paris is in France."},
		{"single block", "<think>hmm</think>Paris is in France.", "Paris is in France."},
		{"multiline block", "<think>line one\nline two</think>\nParis.", "Paris."},
		{"only block", "<think>nothing else</think>", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripThink(tc.in); got != tc.want {
				t.Errorf("StripThink(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestToolHint(t *testing.T) {
	hint := ToolHint([]schema.ToolCallRequest{
		{Name: "get_coordinates", Arguments: map[string]any{"place_name": "Paris"}},
	})
	if hint != `get_coordinates("Paris")` {
		t.Errorf("unexpected hint %q", hint)
	}

	hint = ToolHint([]schema.ToolCallRequest{
		{Name: "reverse_geocode", Arguments: map[string]any{"latitude": 48.8566}},
	})
	if hint != "reverse_geocode" {
		t.Errorf("unexpected hint %q", hint)
	}
}
