package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/models"
)

func TestDistanceKM(t *testing.T) {
	assert.Zero(t, DistanceKM(5.6, -0.18, 5.6, -0.18))

	// one degree of latitude is roughly 111 km
	d := DistanceKM(0, 0, 1, 0)
	assert.InDelta(t, 111, d, 1)

	// Accra to Kumasi is about 200 km
	d = DistanceKM(5.6037, -0.1870, 6.6885, -1.6244)
	assert.InDelta(t, 200, d, 15)
}

func TestWithinRadius(t *testing.T) {
	lat, lng := 5.6037, -0.1870
	listing := &models.Listing{Latitude: &lat, Longitude: &lng}

	assert.True(t, WithinRadius(listing, 5.60, -0.19, 5))
	assert.False(t, WithinRadius(listing, 6.6885, -1.6244, 50))
}

func TestWithinRadiusNoCoordinates(t *testing.T) {
	listing := &models.Listing{}
	assert.False(t, WithinRadius(listing, 5.6, -0.18, 1000))
}
