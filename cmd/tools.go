package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geonet-ai/geonet/internal/config"
	"github.com/geonet-ai/geonet/internal/geocode"
	"github.com/geonet-ai/geonet/internal/tools"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools exposed to the model",
	RunE:  runTools,
}

func runTools(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	geo := geocode.NewClient(geocode.Options{
		BaseURL:   cfg.Geocoder.BaseURL,
		UserAgent: cfg.Geocoder.UserAgent,
	})
	registry, err := tools.NewGeoRegistry(geo)
	if err != nil {
		return err
	}

	for _, ts := range registry.Schemas() {
		fmt.Printf("%s — %s\n", ts.Name, ts.Description)
		for _, f := range ts.Fields {
			req := "optional"
			if f.Required {
				req = "required"
			}
			fmt.Printf("    %-12s %s, %s — %s\n", f.Name, f.Type, req, f.Description)
		}
		fmt.Println()
	}
	return nil
}
