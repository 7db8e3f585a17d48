package tools

import "github.com/geonet-ai/geonet/internal/geocode"

// NewGeoRegistry builds the standard geo tool registry, with every handler
// sharing the one injected geocoding client.
func NewGeoRegistry(geo geocode.Geocoder) (*Registry, error) {
	return NewRegistry(
		NewCoordinatesTool(geo),
		NewDistanceTool(geo),
		NewReverseGeocodeTool(geo),
	)
}
