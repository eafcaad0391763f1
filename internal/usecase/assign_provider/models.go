package assign_provider

import (
	"time"

	"github.com/m04kA/SMC-AssignmentService/pkg/types"
)

// Request модель запроса на назначение провайдера
type Request struct {
	BookingID  int64 // ID бронирования в статусе pending
	ProviderID int64 // ID верифицированного провайдера
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID              int64            // ID бронирования
	Status          string           // Новый статус (assigned)
	ProviderID      int64            // Назначенный провайдер
	CustomerID      int64            // ID клиента
	ServiceName     string           // Название услуги
	ServiceCategory string           // Категория услуги
	City            string           // Город обслуживания
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала слота
	DurationMinutes int              // Длительность слота
	UpdatedAt       time.Time        // Время обновления
}
