package utils

import (
	"math"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/apperrors"
	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
	"github.com/mmcloughlin/geohash"
)

// GeohashPrecision is the cell precision stored on presence records;
// precision 9 cells are roughly 5m x 5m
const GeohashPrecision = 9

// EncodeCoordinates converts a coordinate pair to a geohash cell
func EncodeCoordinates(c models.Coordinates, precision uint) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, precision)
}

// ValidateCoordinates rejects non-finite or out-of-range coordinates
func ValidateCoordinates(c models.Coordinates) error {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) ||
		math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
		return apperrors.ErrInvalidCoordinates
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return apperrors.ErrInvalidCoordinates
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return apperrors.ErrInvalidCoordinates
	}
	return nil
}

// DistanceMiles calculates the great-circle distance between two points in
// miles using the Haversine formula
func DistanceMiles(p1, p2 models.Coordinates) float64 {
	// Earth's radius in miles
	const earthRadius = 3958.8

	lat1 := p1.Latitude * math.Pi / 180.0
	lon1 := p1.Longitude * math.Pi / 180.0
	lat2 := p2.Latitude * math.Pi / 180.0
	lon2 := p2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}
