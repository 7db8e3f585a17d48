// Package cmd implements the geonet CLI using cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"
const logo = "🌍"

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "geonet",
	Short: logo + " geonet — GeoAI Assistant",
	Long:  logo + " geonet — a conversational assistant with geocoding, reverse geocoding and distance tools",
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version

	rootCmd.AddCommand(agentCmd)
	rootCmd.AddCommand(onboardCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(toolsCmd)
}
