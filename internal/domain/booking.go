package domain

import (
	"time"

	"github.com/m04kA/SMC-AssignmentService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusAssigned   BookingStatus = "assigned"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// Booking represents a customer's request for a home service in the system
type Booking struct {
	ID              int64
	CustomerID      int64
	ServiceID       int64
	City            string
	Latitude        *float64 // Координаты точки обслуживания (опционально)
	Longitude       *float64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus
	ProviderID      *int64 // Назначенный провайдер (nil, пока бронирование pending)

	// Denormalized data for history
	CustomerName    string
	CustomerPhone   string
	ServiceName     string
	ServiceCategory string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending returns true if the booking is waiting for a provider
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// IsAssigned returns true if a provider has been committed to the booking
func (b *Booking) IsAssigned() bool {
	return b.Status == StatusAssigned
}

// CanBeAssigned returns true if the booking may receive a provider
// Единственный переход, которым владеет этот сервис: pending -> assigned
func (b *Booking) CanBeAssigned() bool {
	return b.Status == StatusPending
}

// RequiresProvider returns true if the booking's status implies a provider reference
func (b *Booking) RequiresProvider() bool {
	for _, s := range providerHoldingStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// HasConsistentProviderRef проверяет инвариант:
// provider_id заполнен тогда и только тогда, когда статус требует провайдера
func (b *Booking) HasConsistentProviderRef() bool {
	if b.RequiresProvider() {
		return b.ProviderID != nil
	}
	return b.ProviderID == nil
}

// SlotEnd returns the end time of the booking's slot
func (b *Booking) SlotEnd() (types.TimeString, error) {
	return b.StartTime.AddMinutes(b.DurationMinutes)
}

// SlotLabel returns the slot in the console's "10:00-12:00" form
func (b *Booking) SlotLabel() string {
	end, err := b.SlotEnd()
	if err != nil {
		return b.StartTime.String()
	}
	return b.StartTime.String() + "-" + end.String()
}
