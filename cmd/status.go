package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/geonet-ai/geonet/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show geonet status",
	RunE:  runStatus,
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfgPath := config.ConfigPath()

	fmt.Printf("%s geonet Status\n\n", logo)

	_, statErr := os.Stat(cfgPath)
	cfgMark := "✗"
	if statErr == nil {
		cfgMark = "✓"
	}
	fmt.Printf("Config:   %s %s\n", cfgPath, cfgMark)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("  (could not load config: %v)\n", err)
		return nil
	}

	keyMark := "✗ (run 'geonet onboard' and add your API key)"
	if cfg.Provider.APIKey != "" {
		keyMark = "✓"
	}
	fmt.Printf("API key:  %s\n", keyMark)
	fmt.Printf("Model:    %s\n", cfg.Agent.Model)
	fmt.Printf("Endpoint: %s\n", cfg.Provider.APIBase)

	geoBase := cfg.Geocoder.BaseURL
	if geoBase == "" {
		geoBase = "https://nominatim.openstreetmap.org (default)"
	}
	fmt.Printf("Geocoder: %s\n", geoBase)
	fmt.Printf("Timeout:  %s per turn\n", cfg.Agent.TurnTimeout.Std())
	return nil
}
