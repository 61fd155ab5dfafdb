package services

import (
	"math"

	"campus-guide-backend/campus/models"
)

const earthRadiusMetres = 6371000.0

// HaversineDistance returns the great-circle distance in metres between two
// latitude/longitude pairs given in degrees.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	toRadians := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMetres * c
}

// ClosestBuilding scans the building list linearly and returns the nearest
// building to the given position along with its distance in metres. Returns
// nil when the list is empty.
func ClosestBuilding(buildings []models.Building, latitude, longitude float64) (*models.Building, float64) {
	var closest *models.Building
	best := math.MaxFloat64

	for i := range buildings {
		b := &buildings[i]
		d := HaversineDistance(latitude, longitude, b.Latitude, b.Longitude)
		if d < best {
			best = d
			closest = b
		}
	}

	if closest == nil {
		return nil, 0
	}
	return closest, best
}
