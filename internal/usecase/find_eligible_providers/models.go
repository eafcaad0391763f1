package find_eligible_providers

import (
	"time"

	"github.com/m04kA/SMC-AssignmentService/pkg/types"
)

// Request модель запроса на подбор кандидатов для бронирования
type Request struct {
	BookingID int64 // ID бронирования в статусе pending
}

// Response модель ответа с упорядоченным списком кандидатов
type Response struct {
	BookingID       int64            // ID бронирования
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала слота
	DurationMinutes int              // Длительность слота
	Candidates      []Candidate      // Кандидаты, отсортированные по расстоянию
}

// Candidate провайдер, подходящий для бронирования на момент запроса
type Candidate struct {
	ProviderID int64   // ID провайдера
	Name       string  // Имя провайдера
	Phone      string  // Телефон
	City       string  // Город
	DistanceKm float64 // Расстояние до точки обслуживания (0, если координат нет)
}
