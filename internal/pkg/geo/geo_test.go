package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/china630/bolt-usta-app/internal/pkg/models"
)

func TestDistance_Identity(t *testing.T) {
	points := []models.Location{
		{Latitude: 0, Longitude: 0},
		{Latitude: -6.175392, Longitude: 106.827153},
		{Latitude: 41.311081, Longitude: 69.240562},
		{Latitude: -90, Longitude: 180},
	}

	for _, p := range points {
		assert.InDelta(t, 0.0, Distance(p, p), 1e-9)
	}
}

func TestDistance_Symmetry(t *testing.T) {
	pairs := []struct {
		a, b models.Location
	}{
		{
			a: models.Location{Latitude: 0, Longitude: 0},
			b: models.Location{Latitude: 0, Longitude: 1},
		},
		{
			a: models.Location{Latitude: 41.311081, Longitude: 69.240562},
			b: models.Location{Latitude: 41.326424, Longitude: 69.228807},
		},
		{
			a: models.Location{Latitude: -33.868820, Longitude: 151.209290},
			b: models.Location{Latitude: 51.507351, Longitude: -0.127758},
		},
	}

	for _, pair := range pairs {
		assert.InDelta(t, Distance(pair.a, pair.b), Distance(pair.b, pair.a), 1e-9)
	}
}

func TestDistance_KnownValue(t *testing.T) {
	// One degree of longitude on the equator is roughly 111.19 km
	a := models.Location{Latitude: 0, Longitude: 0}
	b := models.Location{Latitude: 0, Longitude: 1}

	assert.InDelta(t, 111.19, Distance(a, b), 0.5)
}

func TestDistance_SmallScale(t *testing.T) {
	// 0.01 degrees of longitude on the equator is roughly 1.112 km; accuracy
	// at this scale is what the 5 km search radius depends on.
	a := models.Location{Latitude: 0, Longitude: 0}
	b := models.Location{Latitude: 0, Longitude: 0.01}

	d := Distance(a, b)
	assert.InDelta(t, 1.112, d, 0.01)
	assert.GreaterOrEqual(t, d, 0.0)
}

func TestGeohash_RoundTrip(t *testing.T) {
	loc := models.Location{Latitude: 41.311081, Longitude: 69.240562}

	hash := Encode(loc, 9)
	assert.Len(t, hash, 9)

	lat, lng := Decode(hash)
	assert.InDelta(t, loc.Latitude, lat, 0.001)
	assert.InDelta(t, loc.Longitude, lng, 0.001)
}

func TestGeohash_Neighbors(t *testing.T) {
	loc := models.Location{Latitude: 41.311081, Longitude: 69.240562}

	neighbors := Neighbors(Encode(loc, 6))
	assert.Len(t, neighbors, 8)
}
