package geocode

import "math"

// meanEarthRadiusKm matches the sphere radius commonly used for
// great-circle distance.
const meanEarthRadiusKm = 6371.0088

const kmPerMile = 1.609344

// Distance is a great-circle distance between two places.
type Distance struct {
	km float64
}

// Kilometers returns the distance in kilometres.
func (d Distance) Kilometers() float64 { return d.km }

// Miles returns the distance in statute miles.
func (d Distance) Miles() float64 { return d.km / kmPerMile }

// GreatCircle computes the haversine distance between two places.
// Accurate to ~0.5% against an ellipsoidal model, which is sufficient for
// conversational answers.
func GreatCircle(a, b Place) Distance {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return Distance{km: meanEarthRadiusKm * c}
}
