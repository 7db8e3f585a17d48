package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/geonet-ai/geonet/internal/geocode"
	"github.com/geonet-ai/geonet/internal/schema"
)

// NewDistanceTool returns the calculate_distance tool: geocodes two place
// names and reports the great-circle distance between them.
//
// The two lookups run concurrently; the shared client's rate limiting still
// serialises the actual requests when talking to the public service.
func NewDistanceTool(geo geocode.Geocoder) schema.ToolSchema {
	return schema.ToolSchema{
		Name:        string(ToolCalculateDistance),
		Description: "Calculate the distance between two locations in kilometers and miles.",
		Fields: []schema.Field{
			{
				Name:        "location1",
				Type:        schema.FieldString,
				Required:    true,
				Description: "First location name (e.g., 'Paris')",
			},
			{
				Name:        "location2",
				Type:        schema.FieldString,
				Required:    true,
				Description: "Second location name (e.g., 'London')",
			},
		},
		Handler: func(ctx context.Context, args schema.Args) (string, error) {
			loc1 := args.String("location1")
			loc2 := args.String("location2")
			slog.Info("Calculating distance", "from", loc1, "to", loc2)

			var places [2]geocode.Place
			var missing [2]bool

			g, gctx := errgroup.WithContext(ctx)
			for i, name := range []string{loc1, loc2} {
				i, name := i, name
				g.Go(func() error {
					p, err := geo.Geocode(gctx, name)
					if errors.Is(err, geocode.ErrNotFound) {
						missing[i] = true
						return nil
					}
					if err != nil {
						return err
					}
					places[i] = p
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return "", err
			}

			if missing[0] {
				return fmt.Sprintf("Could not find location: %s", loc1), nil
			}
			if missing[1] {
				return fmt.Sprintf("Could not find location: %s", loc2), nil
			}

			d := geocode.GreatCircle(places[0], places[1])
			return fmt.Sprintf("Distance between %s and %s: %.2f km (%.2f miles)",
				loc1, loc2, d.Kilometers(), d.Miles()), nil
		},
	}
}
