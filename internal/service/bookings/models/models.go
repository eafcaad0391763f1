package models

import (
	"time"

	"github.com/m04kA/SMC-AssignmentService/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64    `json:"id"`
	CustomerID      int64    `json:"customerId"`
	ServiceID       int64    `json:"serviceId"`
	City            string   `json:"city"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	BookingDate     string   `json:"bookingDate"` // "2025-10-15"
	StartTime       string   `json:"startTime"`   // "10:00"
	TimeSlot        string   `json:"timeSlot"`    // "10:00-12:00" - формат консоли
	DurationMinutes int      `json:"durationMinutes"`
	Status          string   `json:"status"`
	ProviderID      *int64   `json:"providerId,omitempty"`

	// Денормализованные данные
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	ServiceName     string `json:"serviceName"`
	ServiceCategory string `json:"serviceCategory"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		ServiceID:       b.ServiceID,
		City:            b.City,
		Latitude:        b.Latitude,
		Longitude:       b.Longitude,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		TimeSlot:        b.SlotLabel(),
		DurationMinutes: b.DurationMinutes,
		Status:          string(b.Status),
		ProviderID:      b.ProviderID,
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
		ServiceName:     b.ServiceName,
		ServiceCategory: b.ServiceCategory,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
