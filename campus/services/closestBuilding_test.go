package services

import (
	"testing"

	"campus-guide-backend/campus/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineDistanceKnownPair(t *testing.T) {
	// Ottawa downtown to Gatineau across the river, roughly 2.6 km.
	d := HaversineDistance(45.4215, -75.6972, 45.4442, -75.7013)

	assert.InDelta(t, 2540, d, 150)
}

func TestHaversineDistanceZeroForSamePoint(t *testing.T) {
	assert.InDelta(t, 0, HaversineDistance(45.0, -75.0, 45.0, -75.0), 0.001)
}

func TestClosestBuildingPicksNearest(t *testing.T) {
	buildings := []models.Building{
		{Code: "FAR", Latitude: 46.0, Longitude: -76.0},
		{Code: "NEAR", Latitude: 45.3841, Longitude: -75.6972},
		{Code: "MID", Latitude: 45.5, Longitude: -75.8},
	}

	closest, distance := ClosestBuilding(buildings, 45.3840, -75.6970)
	require.NotNil(t, closest)

	assert.Equal(t, "NEAR", closest.Code)
	assert.Less(t, distance, 100.0)
}

func TestClosestBuildingEmptyList(t *testing.T) {
	closest, distance := ClosestBuilding(nil, 45.0, -75.0)

	assert.Nil(t, closest)
	assert.Zero(t, distance)
}
