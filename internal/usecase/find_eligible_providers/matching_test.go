package find_eligible_providers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AssignmentService/internal/domain"
	"github.com/m04kA/SMC-AssignmentService/pkg/ptr"
)

func TestCoversLocation_NoCoordinates(t *testing.T) {
	// Без координат решает принадлежность городу, расстояние 0
	provider := &domain.Provider{}
	booking := &domain.Booking{}

	covers, distance := coversLocation(provider, booking)
	assert.True(t, covers)
	assert.Equal(t, 0.0, distance)

	// Координаты есть только у провайдера
	provider.Latitude = ptr.Ptr(55.7558)
	provider.Longitude = ptr.Ptr(37.6173)
	covers, distance = coversLocation(provider, booking)
	assert.True(t, covers)
	assert.Equal(t, 0.0, distance)
}

func TestCoversLocation_WithinRadius(t *testing.T) {
	provider := &domain.Provider{
		Latitude:        ptr.Ptr(55.7558),
		Longitude:       ptr.Ptr(37.6173),
		ServiceRadiusKm: ptr.Ptr(10.0),
	}
	booking := &domain.Booking{
		Latitude:  ptr.Ptr(55.7887),
		Longitude: ptr.Ptr(37.6175),
	}

	covers, distance := coversLocation(provider, booking)
	assert.True(t, covers)
	assert.InDelta(t, 3.66, distance, 0.1)
}

func TestCoversLocation_OutsideRadius(t *testing.T) {
	provider := &domain.Provider{
		Latitude:        ptr.Ptr(55.7558),
		Longitude:       ptr.Ptr(37.6173),
		ServiceRadiusKm: ptr.Ptr(2.0),
	}
	booking := &domain.Booking{
		Latitude:  ptr.Ptr(55.7887),
		Longitude: ptr.Ptr(37.6175),
	}

	covers, _ := coversLocation(provider, booking)
	assert.False(t, covers)
}

func TestCoversLocation_NoRadiusLimit(t *testing.T) {
	// Радиус не задан - покрывается весь город, расстояние считается для сортировки
	provider := &domain.Provider{
		Latitude:  ptr.Ptr(55.7558),
		Longitude: ptr.Ptr(37.6173),
	}
	booking := &domain.Booking{
		Latitude:  ptr.Ptr(55.9000),
		Longitude: ptr.Ptr(37.6200),
	}

	covers, distance := coversLocation(provider, booking)
	assert.True(t, covers)
	assert.Greater(t, distance, 10.0)
}

func TestSortCandidates(t *testing.T) {
	candidates := []Candidate{
		{ProviderID: 3, DistanceKm: 5.0},
		{ProviderID: 7, DistanceKm: 1.0},
		{ProviderID: 2, DistanceKm: 5.0},
		{ProviderID: 1, DistanceKm: 0.0},
	}

	sortCandidates(candidates)

	ids := make([]int64, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ProviderID)
	}
	// Расстояние по возрастанию, при равенстве - меньший ID первым
	assert.Equal(t, []int64{1, 7, 2, 3}, ids)
}
