package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/geonet-ai/geonet/internal/geocode"
	"github.com/geonet-ai/geonet/internal/schema"
)

// NewReverseGeocodeTool returns the reverse_geocode tool: coordinates to a
// human-readable address.
func NewReverseGeocodeTool(geo geocode.Geocoder) schema.ToolSchema {
	return schema.ToolSchema{
		Name:        string(ToolReverseGeocode),
		Description: "Get the location name and address from latitude and longitude coordinates.",
		Fields: []schema.Field{
			{
				Name:        "latitude",
				Type:        schema.FieldNumber,
				Required:    true,
				Description: "Latitude coordinate (e.g., 13.7563)",
			},
			{
				Name:        "longitude",
				Type:        schema.FieldNumber,
				Required:    true,
				Description: "Longitude coordinate (e.g., 100.5018)",
			},
		},
		Handler: func(ctx context.Context, args schema.Args) (string, error) {
			lat := args.Float("latitude")
			lon := args.Float("longitude")
			slog.Info("Reverse geocoding", "lat", lat, "lon", lon)

			latStr := schema.FormatCoord(lat)
			lonStr := schema.FormatCoord(lon)

			place, err := geo.Reverse(ctx, lat, lon)
			if errors.Is(err, geocode.ErrNotFound) {
				return fmt.Sprintf("No location found for coordinates %s, %s.", latStr, lonStr), nil
			}
			if err != nil {
				return "", err
			}

			return fmt.Sprintf("Coordinates %s, %s correspond to: %s", latStr, lonStr, place.Address), nil
		},
	}
}
