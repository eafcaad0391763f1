package find_eligible_providers

import (
	"sort"

	"github.com/m04kA/SMC-AssignmentService/internal/domain"
	"github.com/m04kA/SMC-AssignmentService/pkg/geo"
)

// coversLocation проверяет географическую пригодность провайдера
// и вычисляет расстояние до точки обслуживания.
//
// Провайдеры выбираются из каталога уже по городу бронирования, поэтому
// вхождение в город гарантировано. Дополнительно:
// - если у провайдера задан радиус обслуживания и обе стороны имеют
//   координаты, точка должна попадать в радиус;
// - если координат нет у бронирования или провайдера, расстояние считается 0 -
//   принадлежность городу остается решающей
func coversLocation(provider *domain.Provider, booking *domain.Booking) (bool, float64) {
	if !provider.HasCoordinates() || booking.Latitude == nil || booking.Longitude == nil {
		return true, 0
	}

	distance := geo.DistanceKm(
		*provider.Latitude, *provider.Longitude,
		*booking.Latitude, *booking.Longitude,
	)

	if provider.HasServiceRadius() && distance > *provider.ServiceRadiusKm {
		return false, distance
	}

	return true, distance
}

// sortCandidates упорядочивает кандидатов по возрастанию расстояния,
// при равном расстоянии - по возрастанию ID провайдера (детерминизм)
func sortCandidates(candidates []Candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].DistanceKm != candidates[j].DistanceKm {
			return candidates[i].DistanceKm < candidates[j].DistanceKm
		}
		return candidates[i].ProviderID < candidates[j].ProviderID
	})
}
