package domain

import (
	"time"

	"github.com/m04kA/SMC-AssignmentService/pkg/types"
)

// Provider represents a service professional eligible to fulfill bookings
type Provider struct {
	ID              int64
	Name            string
	Phone           string
	City            string
	ServiceCategory string
	IsVerified      bool
	Latitude        *float64 // Координаты базовой точки провайдера (опционально)
	Longitude       *float64
	ServiceRadiusKm *float64 // Радиус обслуживания вокруг базовой точки (nil = весь город)

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCoordinates returns true if the provider carries a base point
func (p *Provider) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// HasServiceRadius returns true if the provider limits its coverage by radius
func (p *Provider) HasServiceRadius() bool {
	return p.ServiceRadiusKm != nil && *p.ServiceRadiusKm > 0
}

// Commitment represents a provider's committed slot in its calendar
// Календарь растет монотонно: записи добавляются при назначении и не удаляются
type Commitment struct {
	ID              int64
	ProviderID      int64
	BookingID       int64
	CommitmentDate  time.Time
	StartTime       types.TimeString
	DurationMinutes int

	CreatedAt time.Time
}

// End returns the end time of the committed slot
func (c *Commitment) End() (types.TimeString, error) {
	return c.StartTime.AddMinutes(c.DurationMinutes)
}

// ProvidersFilter фильтр для получения списка провайдеров
type ProvidersFilter struct {
	City            *string // Фильтр по городу (опционально)
	ServiceCategory *string // Фильтр по категории услуг (опционально)
	IsVerified      *bool   // Фильтр по статусу верификации (опционально)
}
