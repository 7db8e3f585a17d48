package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/geonet-ai/geonet/internal/geocode"
	"github.com/geonet-ai/geonet/internal/schema"
)

// stubGeocoder serves fixed places without touching the network.
type stubGeocoder struct {
	places map[string]geocode.Place
	err    error // overrides every lookup when set
}

func (s *stubGeocoder) Geocode(_ context.Context, place string) (geocode.Place, error) {
	if s.err != nil {
		return geocode.Place{}, s.err
	}
	p, ok := s.places[place]
	if !ok {
		return geocode.Place{}, geocode.ErrNotFound
	}
	return p, nil
}

func (s *stubGeocoder) Reverse(_ context.Context, lat, lon float64) (geocode.Place, error) {
	if s.err != nil {
		return geocode.Place{}, s.err
	}
	for _, p := range s.places {
		if p.Latitude == lat && p.Longitude == lon {
			return p, nil
		}
	}
	return geocode.Place{}, geocode.ErrNotFound
}

func newStub() *stubGeocoder {
	return &stubGeocoder{places: map[string]geocode.Place{
		"Paris":  {Latitude: 48.8566, Longitude: 2.3522, Address: "Paris, Île-de-France, France"},
		"London": {Latitude: 51.5074, Longitude: -0.1278, Address: "London, Greater London, England"},
	}}
}

func newGeoDispatcher(t *testing.T, geo geocode.Geocoder) *Dispatcher {
	t.Helper()
	r, err := NewGeoRegistry(geo)
	if err != nil {
		t.Fatalf("build geo registry: %v", err)
	}
	return NewDispatcher(r)
}

func TestGetCoordinates_Known(t *testing.T) {
	d := newGeoDispatcher(t, newStub())

	got, err := d.Dispatch(context.Background(), schema.InvocationRequest{
		ToolName:     "get_coordinates",
		RawArguments: map[string]any{"place_name": "Paris"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Paris is located at Lat: 48.8566, Lon: 2.3522"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGetCoordinates_NotFoundIsText(t *testing.T) {
	d := newGeoDispatcher(t, newStub())

	got, err := d.Dispatch(context.Background(), schema.InvocationRequest{
		ToolName:     "get_coordinates",
		RawArguments: map[string]any{"place_name": "Atlantis"},
	})
	if err != nil {
		t.Fatalf("not-found must be a successful textual result, got error: %v", err)
	}
	if got != "Could not find coordinates for Atlantis." {
		t.Errorf("unexpected text: %q", got)
	}
}

func TestGetCoordinates_ProviderFaultIsError(t *testing.T) {
	stub := newStub()
	stub.err = &geocode.UnavailableError{Op: "geocode", Err: fmt.Errorf("connection refused")}
	d := newGeoDispatcher(t, stub)

	_, err := d.Dispatch(context.Background(), schema.InvocationRequest{
		ToolName:     "get_coordinates",
		RawArguments: map[string]any{"place_name": "Paris"},
	})

	var unavailable *geocode.UnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("provider failure must surface as an error, got %v", err)
	}
}

func TestCalculateDistance(t *testing.T) {
	d := newGeoDispatcher(t, newStub())

	got, err := d.Dispatch(context.Background(), schema.InvocationRequest{
		ToolName:     "calculate_distance",
		RawArguments: map[string]any{"location1": "Paris", "location2": "London"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "Distance between Paris and London: 343.") {
		t.Errorf("expected ~343.x km, got %q", got)
	}
	if !strings.Contains(got, "miles)") {
		t.Errorf("expected a miles figure, got %q", got)
	}
}

func TestCalculateDistance_FirstMissing(t *testing.T) {
	d := newGeoDispatcher(t, newStub())

	got, err := d.Dispatch(context.Background(), schema.InvocationRequest{
		ToolName:     "calculate_distance",
		RawArguments: map[string]any{"location1": "Xanadu", "location2": "London"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Could not find location: Xanadu" {
		t.Errorf("unexpected text: %q", got)
	}
}

func TestCalculateDistance_SecondMissing(t *testing.T) {
	d := newGeoDispatcher(t, newStub())

	got, err := d.Dispatch(context.Background(), schema.InvocationRequest{
		ToolName:     "calculate_distance",
		RawArguments: map[string]any{"location1": "Paris", "location2": "Xanadu"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Could not find location: Xanadu" {
		t.Errorf("unexpected text: %q", got)
	}
}

func TestReverseGeocode_Known(t *testing.T) {
	d := newGeoDispatcher(t, newStub())

	got, err := d.Dispatch(context.Background(), schema.InvocationRequest{
		ToolName:     "reverse_geocode",
		RawArguments: map[string]any{"latitude": 48.8566, "longitude": 2.3522},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Coordinates 48.8566, 2.3522 correspond to: Paris, Île-de-France, France"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReverseGeocode_NothingNearby(t *testing.T) {
	d := newGeoDispatcher(t, newStub())

	got, err := d.Dispatch(context.Background(), schema.InvocationRequest{
		ToolName:     "reverse_geocode",
		RawArguments: map[string]any{"latitude": 0, "longitude": 0},
	})
	if err != nil {
		t.Fatalf("not-found must be a successful textual result, got error: %v", err)
	}
	if got != "No location found for coordinates 0, 0." {
		t.Errorf("unexpected text: %q", got)
	}
}

func TestGeocodeReverseRoundTrip(t *testing.T) {
	stub := newStub()
	d := newGeoDispatcher(t, stub)
	ctx := context.Background()

	place, err := stub.Geocode(ctx, "Paris")
	if err != nil {
		t.Fatalf("stub geocode failed: %v", err)
	}

	got, err := d.Dispatch(ctx, schema.InvocationRequest{
		ToolName: "reverse_geocode",
		RawArguments: map[string]any{
			"latitude":  place.Latitude,
			"longitude": place.Longitude,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "Paris") {
		t.Errorf("round trip should land back on Paris, got %q", got)
	}
}
