package events

// eventTypeBookingAssigned тип события назначения провайдера
const eventTypeBookingAssigned = "booking.assigned"

// BookingAssignedEvent событие успешного назначения провайдера на бронирование
// Потребляется сервисами уведомлений и аналитики
type BookingAssignedEvent struct {
	BookingID       int64  `json:"bookingId"`
	ProviderID      int64  `json:"providerId"`
	CustomerID      int64  `json:"customerId"`
	ServiceCategory string `json:"serviceCategory"`
	City            string `json:"city"`
	BookingDate     string `json:"bookingDate"` // "2025-10-15"
	StartTime       string `json:"startTime"`   // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	AssignedAt      string `json:"assignedAt"` // ISO 8601
}
