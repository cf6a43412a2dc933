// Package geo wraps the spherical distance math used by the nearby-listings
// search.
package geo

import (
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/models"
)

// DistanceKM returns the haversine distance in kilometers between two
// lat/lng points.
func DistanceKM(lat1, lng1, lat2, lng2 float64) float64 {
	// orb points are (lng, lat)
	return orbgeo.DistanceHaversine(orb.Point{lng1, lat1}, orb.Point{lng2, lat2}) / 1000
}

// WithinRadius reports whether the listing lies within radiusKM of the given
// point. Listings without coordinates are never within any radius.
func WithinRadius(l *models.Listing, lat, lng, radiusKM float64) bool {
	if !l.HasCoordinates() {
		return false
	}
	return DistanceKM(lat, lng, *l.Latitude, *l.Longitude) <= radiusKM
}
