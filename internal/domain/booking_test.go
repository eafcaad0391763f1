package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AssignmentService/pkg/ptr"
	"github.com/m04kA/SMC-AssignmentService/pkg/types"
)

func TestBooking_CanBeAssigned(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{StatusPending, true},
		{StatusAssigned, false},
		{StatusInProgress, false},
		{StatusCompleted, false},
		{StatusCancelled, false},
	}

	for _, tt := range tests {
		b := &Booking{Status: tt.status}
		assert.Equal(t, tt.want, b.CanBeAssigned(), "status=%s", tt.status)
	}
}

func TestBooking_HasConsistentProviderRef(t *testing.T) {
	// pending без провайдера - корректно
	pending := &Booking{Status: StatusPending}
	assert.True(t, pending.HasConsistentProviderRef())

	// pending с провайдером - нарушение инварианта
	pending.ProviderID = ptr.Ptr(int64(7))
	assert.False(t, pending.HasConsistentProviderRef())

	// assigned с провайдером - корректно
	assigned := &Booking{Status: StatusAssigned, ProviderID: ptr.Ptr(int64(7))}
	assert.True(t, assigned.HasConsistentProviderRef())

	// assigned без провайдера - нарушение инварианта
	assigned.ProviderID = nil
	assert.False(t, assigned.HasConsistentProviderRef())

	// cancelled без провайдера - корректно
	cancelled := &Booking{Status: StatusCancelled}
	assert.True(t, cancelled.HasConsistentProviderRef())
}

func TestBooking_SlotLabel(t *testing.T) {
	b := &Booking{
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 120,
	}
	assert.Equal(t, "10:00-12:00", b.SlotLabel())

	b = &Booking{
		StartTime:       types.TimeString("09:30"),
		DurationMinutes: 45,
	}
	assert.Equal(t, "09:30-10:15", b.SlotLabel())

	// Слот, упирающийся в границу суток, показывается без конца
	b = &Booking{
		StartTime:       types.TimeString("23:50"),
		DurationMinutes: 20,
	}
	assert.Equal(t, "23:50", b.SlotLabel())
}

func TestBooking_SlotEnd(t *testing.T) {
	b := &Booking{
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 90,
	}

	end, err := b.SlotEnd()
	assert.NoError(t, err)
	assert.Equal(t, types.TimeString("11:30"), end)
}
