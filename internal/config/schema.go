// Package config defines the geonet configuration schema and its YAML
// loader. The file lives at ~/.geonet/config.yaml.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML files can carry values like "120s".
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML renders the duration as a string.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// ProviderConfig holds credentials for the model endpoint.
type ProviderConfig struct {
	APIKey       string            `yaml:"apiKey"`
	APIBase      string            `yaml:"apiBase,omitempty"`
	ExtraHeaders map[string]string `yaml:"extraHeaders,omitempty"`
}

// AgentConfig holds model parameters and the per-turn budget.
type AgentConfig struct {
	Model             string   `yaml:"model"`
	MaxTokens         int      `yaml:"maxTokens"`
	Temperature       float64  `yaml:"temperature"`
	MaxToolIterations int      `yaml:"maxToolIterations"`
	MemoryWindow      int      `yaml:"memoryWindow"`
	TurnTimeout       Duration `yaml:"turnTimeout"`
	SystemPrompt      string   `yaml:"systemPrompt,omitempty"`
}

// GeocoderConfig configures the shared geocoding client.
type GeocoderConfig struct {
	BaseURL     string   `yaml:"baseUrl,omitempty"`
	UserAgent   string   `yaml:"userAgent,omitempty"`
	Timeout     Duration `yaml:"timeout,omitempty"`
	MinInterval Duration `yaml:"minInterval,omitempty"`
}

// Config is the root configuration.
type Config struct {
	Provider ProviderConfig `yaml:"provider"`
	Agent    AgentConfig    `yaml:"agent"`
	Geocoder GeocoderConfig `yaml:"geocoder"`
}

// DefaultSystemPrompt mirrors the persona the agent was designed around.
const DefaultSystemPrompt = `You are an advanced GeoAI Assistant with multiple capabilities:
1. Find coordinates for any location using get_coordinates
2. Calculate distances between locations using calculate_distance
3. Find location names from coordinates using reverse_geocode

Always use the appropriate tool for each request and provide detailed, helpful responses.`

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Provider: ProviderConfig{
			APIBase: "https://openrouter.ai/api/v1",
		},
		Agent: AgentConfig{
			Model:             "openai/gpt-5-mini",
			MaxTokens:         4096,
			Temperature:       0.7,
			MaxToolIterations: 10,
			MemoryWindow:      50,
			TurnTimeout:       Duration(120 * time.Second),
		},
		Geocoder: GeocoderConfig{
			UserAgent: "geonet_agent_interactive",
		},
	}
}

// SystemPrompt returns the configured system instruction, or the default.
func (c *Config) SystemPrompt() string {
	if c.Agent.SystemPrompt != "" {
		return c.Agent.SystemPrompt
	}
	return DefaultSystemPrompt
}
