package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/geonet-ai/geonet/internal/geocode"
	"github.com/geonet-ai/geonet/internal/schema"
)

// NewCoordinatesTool returns the get_coordinates tool: free-form place name
// to latitude/longitude via the shared geocoder.
func NewCoordinatesTool(geo geocode.Geocoder) schema.ToolSchema {
	return schema.ToolSchema{
		Name:        string(ToolGetCoordinates),
		Description: "Get the latitude and longitude of a specific city or place name.",
		Fields: []schema.Field{
			{
				Name:        "place_name",
				Type:        schema.FieldString,
				Required:    true,
				Description: "The name of the city or place to locate (e.g., 'Bangkok', 'Eiffel Tower').",
			},
		},
		Handler: func(ctx context.Context, args schema.Args) (string, error) {
			place := args.String("place_name")
			slog.Info("Fetching coordinates", "place", place)

			loc, err := geo.Geocode(ctx, place)
			if errors.Is(err, geocode.ErrNotFound) {
				return fmt.Sprintf("Could not find coordinates for %s.", place), nil
			}
			if err != nil {
				return "", err
			}

			return fmt.Sprintf("%s is located at Lat: %s, Lon: %s",
				place, schema.FormatCoord(loc.Latitude), schema.FormatCoord(loc.Longitude)), nil
		},
	}
}
