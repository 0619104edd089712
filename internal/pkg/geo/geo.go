package geo

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/china630/bolt-usta-app/internal/pkg/models"
)

// Earth's mean radius in kilometers
const earthRadiusKm = 6371.0

// Distance calculates the great-circle distance between two points in
// kilometers using the Haversine formula. It is a pure function: no error
// conditions, non-negative result, zero for identical coordinates.
func Distance(a, b models.Location) float64 {
	lat1 := degreesToRadians(a.Latitude)
	lat2 := degreesToRadians(b.Latitude)
	dLat := degreesToRadians(b.Latitude - a.Latitude)
	dLon := degreesToRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Encode converts a location to a geohash string with the given precision
func Encode(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// Decode converts a geohash string back to latitude and longitude
func Decode(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// Neighbors returns the neighboring geohashes of a given geohash
func Neighbors(hash string) []string {
	return geohash.Neighbors(hash)
}
