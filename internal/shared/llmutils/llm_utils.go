// Package llmutils holds small helpers for working with model output.
package llmutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/geonet-ai/geonet/internal/schema"
)

var reThink = regexp.MustCompile(`(?s)<think>.*?</think>`)

// Truncate shortens a string to at most n characters, adding "..." if it was truncated.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// StripThink removes <think>…</think> blocks that some models embed.
func StripThink(s string) string {
	return strings.TrimSpace(reThink.ReplaceAllString(s, ""))
}

// ToolHint generates a short hint string for a list of tool calls,
// e.g. `get_coordinates("Paris")`.
func ToolHint(tcs []schema.ToolCallRequest) string {
	parts := make([]string, 0, len(tcs))
	for _, tc := range tcs {
		var firstVal string
		for _, v := range tc.Arguments {
			if s, ok := v.(string); ok {
				firstVal = s
			}
			break
		}
		if firstVal == "" {
			parts = append(parts, tc.Name)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s(%q)", tc.Name, Truncate(firstVal, 40)))
	}
	return strings.Join(parts, ", ")
}
