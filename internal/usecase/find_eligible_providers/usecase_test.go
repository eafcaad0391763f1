package find_eligible_providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AssignmentService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AssignmentService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AssignmentService/pkg/ptr"
	"github.com/m04kA/SMC-AssignmentService/pkg/types"
)

// --- mocks ---

type mockBookingRepo struct {
	booking *domain.Booking
	err     error
}

func (m *mockBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return m.booking, m.err
}

type mockProviderRepo struct {
	providers   []*domain.Provider
	listErr     error
	conflicts   map[int64]bool
	conflictErr error
}

func (m *mockProviderRepo) ListVerifiedByCategoryAndCity(_ context.Context, _, _ string) ([]*domain.Provider, error) {
	return m.providers, m.listErr
}

func (m *mockProviderRepo) HasConflict(_ context.Context, providerID int64, _ time.Time, _ types.TimeString, _ int) (bool, error) {
	if m.conflictErr != nil {
		return false, m.conflictErr
	}
	return m.conflicts[providerID], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- fixtures ---

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:              10,
		CustomerID:      1,
		ServiceID:       2,
		City:            "Москва",
		BookingDate:     time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 120,
		Status:          domain.StatusPending,
		ServiceCategory: "cleaning",
	}
}

func verifiedProvider(id int64, name string) *domain.Provider {
	return &domain.Provider{
		ID:              id,
		Name:            name,
		Phone:           "+79990000000",
		City:            "Москва",
		ServiceCategory: "cleaning",
		IsVerified:      true,
	}
}

// --- tests ---

func TestExecute_FreeProviderListed_BusyProviderSkipped(t *testing.T) {
	// P1 свободен, у P2 в календаре пересекающееся обязательство
	providerRepository := &mockProviderRepo{
		providers: []*domain.Provider{
			verifiedProvider(1, "P1"),
			verifiedProvider(2, "P2"),
		},
		conflicts: map[int64]bool{2: true},
	}

	uc := NewUseCase(&mockBookingRepo{booking: pendingBooking()}, providerRepository, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 10})
	require.NoError(t, err)
	require.Len(t, resp.Candidates, 1)
	assert.Equal(t, int64(1), resp.Candidates[0].ProviderID)
	assert.Equal(t, "P1", resp.Candidates[0].Name)
}

func TestExecute_SortsByDistanceThenID(t *testing.T) {
	booking := pendingBooking()
	booking.Latitude = ptr.Ptr(55.7558)
	booking.Longitude = ptr.Ptr(37.6173)

	near := verifiedProvider(5, "near")
	near.Latitude = ptr.Ptr(55.7600)
	near.Longitude = ptr.Ptr(37.6200)

	far := verifiedProvider(1, "far")
	far.Latitude = ptr.Ptr(55.9000)
	far.Longitude = ptr.Ptr(37.6200)

	// Без координат расстояние 0, такой кандидат идет первым
	noCoords := verifiedProvider(9, "no-coords")

	providerRepository := &mockProviderRepo{
		providers: []*domain.Provider{far, near, noCoords},
	}

	uc := NewUseCase(&mockBookingRepo{booking: booking}, providerRepository, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 10})
	require.NoError(t, err)
	require.Len(t, resp.Candidates, 3)
	assert.Equal(t, int64(9), resp.Candidates[0].ProviderID)
	assert.Equal(t, int64(5), resp.Candidates[1].ProviderID)
	assert.Equal(t, int64(1), resp.Candidates[2].ProviderID)
}

func TestExecute_ProviderOutsideServiceRadiusSkipped(t *testing.T) {
	booking := pendingBooking()
	booking.Latitude = ptr.Ptr(55.7558)
	booking.Longitude = ptr.Ptr(37.6173)

	// Базовая точка примерно в 16 км от бронирования, радиус 5 км
	limited := verifiedProvider(3, "limited")
	limited.Latitude = ptr.Ptr(55.9000)
	limited.Longitude = ptr.Ptr(37.6200)
	limited.ServiceRadiusKm = ptr.Ptr(5.0)

	providerRepository := &mockProviderRepo{
		providers: []*domain.Provider{limited},
	}

	uc := NewUseCase(&mockBookingRepo{booking: booking}, providerRepository, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 10})
	require.NoError(t, err)
	assert.Empty(t, resp.Candidates)
}

func TestExecute_EmptyCandidateListIsSuccess(t *testing.T) {
	uc := NewUseCase(
		&mockBookingRepo{booking: pendingBooking()},
		&mockProviderRepo{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.BookingID)
	assert.Empty(t, resp.Candidates)
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc := NewUseCase(
		&mockBookingRepo{err: bookingRepo.ErrBookingNotFound},
		&mockProviderRepo{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 404})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_BookingNotPending(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusAssigned
	booking.ProviderID = ptr.Ptr(int64(1))

	uc := NewUseCase(&mockBookingRepo{booking: booking}, &mockProviderRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 10})
	assert.ErrorIs(t, err, ErrBookingNotPending)
}

func TestExecute_InvalidBookingID(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{}, &mockProviderRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ConflictCheckFailure(t *testing.T) {
	providerRepository := &mockProviderRepo{
		providers:   []*domain.Provider{verifiedProvider(1, "P1")},
		conflictErr: errors.New("db is down"),
	}

	uc := NewUseCase(&mockBookingRepo{booking: pendingBooking()}, providerRepository, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 10})
	assert.ErrorIs(t, err, ErrInternal)
}
