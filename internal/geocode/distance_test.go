package geocode

import (
	"math"
	"testing"
)

func TestGreatCircle_ParisLondon(t *testing.T) {
	paris := Place{Latitude: 48.8566, Longitude: 2.3522}
	london := Place{Latitude: 51.5074, Longitude: -0.1278}

	d := GreatCircle(paris, london)

	// Published great-circle distance is ~343-344 km.
	if km := d.Kilometers(); math.Abs(km-343.5) > 3 {
		t.Errorf("expected ~343.5 km, got %.2f", km)
	}
	if mi := d.Miles(); math.Abs(mi-213.5) > 2 {
		t.Errorf("expected ~213.5 miles, got %.2f", mi)
	}
}

func TestGreatCircle_SamePlace(t *testing.T) {
	bangkok := Place{Latitude: 13.7563, Longitude: 100.5018}
	if km := GreatCircle(bangkok, bangkok).Kilometers(); km != 0 {
		t.Errorf("expected zero distance, got %v", km)
	}
}

func TestGreatCircle_Symmetric(t *testing.T) {
	a := Place{Latitude: 35.6762, Longitude: 139.6503}  // Tokyo
	b := Place{Latitude: -33.8688, Longitude: 151.2093} // Sydney

	ab := GreatCircle(a, b).Kilometers()
	ba := GreatCircle(b, a).Kilometers()
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", ab, ba)
	}
	// Tokyo-Sydney is ~7,820 km.
	if math.Abs(ab-7820) > 80 {
		t.Errorf("expected ~7820 km, got %.0f", ab)
	}
}

func TestGreatCircle_Antimeridian(t *testing.T) {
	a := Place{Latitude: 0, Longitude: 179.5}
	b := Place{Latitude: 0, Longitude: -179.5}

	// One degree of longitude at the equator is ~111 km; crossing the
	// antimeridian must take the short way round.
	if km := GreatCircle(a, b).Kilometers(); km > 150 {
		t.Errorf("expected short path across the antimeridian, got %.0f km", km)
	}
}
