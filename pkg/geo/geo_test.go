package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_SamePoint(t *testing.T) {
	d := DistanceKm(55.7558, 37.6173, 55.7558, 37.6173)
	assert.Equal(t, 0.0, d)
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Москва (центр) - Санкт-Петербург (центр), около 634 км
	d := DistanceKm(55.7558, 37.6173, 59.9343, 30.3351)
	assert.InDelta(t, 634, d, 5)
}

func TestDistanceKm_ShortDistance(t *testing.T) {
	// Две точки в пределах одного города, порядок единиц километров
	d := DistanceKm(55.7558, 37.6173, 55.7887, 37.6175)
	assert.InDelta(t, 3.66, d, 0.1)
}

func TestDistanceKm_Symmetric(t *testing.T) {
	d1 := DistanceKm(55.7558, 37.6173, 59.9343, 30.3351)
	d2 := DistanceKm(59.9343, 30.3351, 55.7558, 37.6173)
	assert.InDelta(t, d1, d2, 1e-9)
}
