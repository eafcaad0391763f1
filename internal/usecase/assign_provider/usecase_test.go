package assign_provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AssignmentService/internal/domain"
	"github.com/m04kA/SMC-AssignmentService/internal/infra/events"
	bookingRepo "github.com/m04kA/SMC-AssignmentService/internal/infra/storage/booking"
	providerRepo "github.com/m04kA/SMC-AssignmentService/internal/infra/storage/provider"
	"github.com/m04kA/SMC-AssignmentService/pkg/ptr"
	"github.com/m04kA/SMC-AssignmentService/pkg/types"
)

// --- mocks ---

type mockBookingRepo struct {
	booking *domain.Booking
	getErr  error

	casResult *domain.Booking
	casErr    error
	casCalls  int
}

func (m *mockBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return m.booking, m.getErr
}

func (m *mockBookingRepo) UpdateStatusCAS(_ context.Context, _ int64, _, _ domain.BookingStatus, _ int64) (*domain.Booking, error) {
	m.casCalls++
	return m.casResult, m.casErr
}

type mockProviderRepo struct {
	provider *domain.Provider
	getErr   error

	conflict    bool
	conflictErr error

	appendErr error
	appended  []*domain.Commitment
}

func (m *mockProviderRepo) GetByID(_ context.Context, _ int64) (*domain.Provider, error) {
	return m.provider, m.getErr
}

func (m *mockProviderRepo) HasConflict(_ context.Context, _ int64, _ time.Time, _ types.TimeString, _ int) (bool, error) {
	return m.conflict, m.conflictErr
}

func (m *mockProviderRepo) AppendCommitment(_ context.Context, commitment *domain.Commitment) (*domain.Commitment, error) {
	if m.appendErr != nil {
		return nil, m.appendErr
	}
	m.appended = append(m.appended, commitment)
	return commitment, nil
}

// fakeTxManager выполняет fn без транзакции либо возвращает заранее заданную ошибку
type fakeTxManager struct {
	err error
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

type mockPublisher struct {
	events []events.BookingAssignedEvent
	err    error
}

func (m *mockPublisher) PublishBookingAssigned(_ context.Context, event events.BookingAssignedEvent) error {
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, event)
	return nil
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
		ServiceName:     "Генеральная уборка",
		ServiceCategory: "cleaning",
	}
}

func eligibleProvider() *domain.Provider {
	return &domain.Provider{
		ID:              7,
		Name:            "P7",
		City:            "Москва",
		ServiceCategory: "cleaning",
		IsVerified:      true,
	}
}

func assignedBooking() *domain.Booking {
	b := pendingBooking()
	b.Status = domain.StatusAssigned
	b.ProviderID = ptr.Ptr(int64(7))
	b.UpdatedAt = time.Now()
	return b
}

// --- tests ---

func TestExecute_Success(t *testing.T) {
	bookings := &mockBookingRepo{
		booking:   pendingBooking(),
		casResult: assignedBooking(),
	}
	providers := &mockProviderRepo{provider: eligibleProvider()}
	publisher := &mockPublisher{}

	uc := NewUseCase(bookings, providers, &fakeTxManager{}, publisher, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 10, ProviderID: 7})
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, string(domain.StatusAssigned), resp.Status)
	assert.Equal(t, int64(7), resp.ProviderID)

	// Обязательство добавлено в календарь провайдера
	require.Len(t, providers.appended, 1)
	assert.Equal(t, int64(7), providers.appended[0].ProviderID)
	assert.Equal(t, int64(10), providers.appended[0].BookingID)
	assert.Equal(t, types.TimeString("10:00"), providers.appended[0].StartTime)
	assert.Equal(t, 120, providers.appended[0].DurationMinutes)

	// Событие опубликовано после успешного назначения
	require.Len(t, publisher.events, 1)
	assert.Equal(t, int64(10), publisher.events[0].BookingID)
	assert.Equal(t, int64(7), publisher.events[0].ProviderID)
}

func TestExecute_PublishFailureDoesNotFailAssignment(t *testing.T) {
	bookings := &mockBookingRepo{
		booking:   pendingBooking(),
		casResult: assignedBooking(),
	}
	providers := &mockProviderRepo{provider: eligibleProvider()}
	publisher := &mockPublisher{err: errors.New("kafka is down")}

	uc := NewUseCase(bookings, providers, &fakeTxManager{}, publisher, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 10, ProviderID: 7})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusAssigned), resp.Status)
}

func TestExecute_BookingNotFound(t *testing.T) {
	bookings := &mockBookingRepo{getErr: bookingRepo.ErrBookingNotFound}

	uc := NewUseCase(bookings, &mockProviderRepo{}, &fakeTxManager{}, &mockPublisher{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 404, ProviderID: 7})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_RepeatAssignRejected(t *testing.T) {
	// Повторный assign по уже назначенному бронированию
	bookings := &mockBookingRepo{booking: assignedBooking()}
	providers := &mockProviderRepo{provider: eligibleProvider()}

	uc := NewUseCase(bookings, providers, &fakeTxManager{}, &mockPublisher{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 10, ProviderID: 7})
	assert.ErrorIs(t, err, ErrBookingNotPending)
	assert.Empty(t, providers.appended)
	assert.Zero(t, bookings.casCalls)
}

func TestExecute_CancelledBookingRejected(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusCancelled

	uc := NewUseCase(
		&mockBookingRepo{booking: booking},
		&mockProviderRepo{provider: eligibleProvider()},
		&fakeTxManager{},
		&mockPublisher{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 10, ProviderID: 7})
	assert.ErrorIs(t, err, ErrBookingNotPending)
}

func TestExecute_ProviderNotFound(t *testing.T) {
	uc := NewUseCase(
		&mockBookingRepo{booking: pendingBooking()},
		&mockProviderRepo{getErr: providerRepo.ErrProviderNotFound},
		&fakeTxManager{},
		&mockPublisher{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 10, ProviderID: 404})
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestExecute_UnverifiedProviderNotEligible(t *testing.T) {
	provider := eligibleProvider()
	provider.IsVerified = false

	providers := &mockProviderRepo{provider: provider}

	uc := NewUseCase(
		&mockBookingRepo{booking: pendingBooking()},
		providers,
		&fakeTxManager{},
		&mockPublisher{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 10, ProviderID: 7})
	assert.ErrorIs(t, err, ErrProviderNotEligible)
	assert.Empty(t, providers.appended)
}

func TestExecute_CategoryMismatchNotEligible(t *testing.T) {
	provider := eligibleProvider()
	provider.ServiceCategory = "plumbing"

	uc := NewUseCase(
		&mockBookingRepo{booking: pendingBooking()},
		&mockProviderRepo{provider: provider},
		&fakeTxManager{},
		&mockPublisher{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 10, ProviderID: 7})
	assert.ErrorIs(t, err, ErrProviderNotEligible)
}

func TestExecute_CalendarConflict(t *testing.T) {
	providers := &mockProviderRepo{provider: eligibleProvider(), conflict: true}

	uc := NewUseCase(
		&mockBookingRepo{booking: pendingBooking()},
		providers,
		&fakeTxManager{},
		&mockPublisher{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 10, ProviderID: 7})
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Empty(t, providers.appended)
}

func TestExecute_UniqueViolationMapsToSlotConflict(t *testing.T) {
	// Гонка прошла мимо проверки чтением, уникальное ограничение словило дубль
	providers := &mockProviderRepo{
		provider:  eligibleProvider(),
		appendErr: providerRepo.ErrSlotTaken,
	}

	uc := NewUseCase(
		&mockBookingRepo{booking: pendingBooking()},
		providers,
		&fakeTxManager{},
		&mockPublisher{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 10, ProviderID: 7})
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_LostStatusRaceMapsToNotPending(t *testing.T) {
	// Конкурент успел перевести бронирование из pending между чтением и CAS
	bookings := &mockBookingRepo{
		booking: pendingBooking(),
		casErr:  bookingRepo.ErrStatusNotMatched,
	}

	publisher := &mockPublisher{}
	uc := NewUseCase(
		bookings,
		&mockProviderRepo{provider: eligibleProvider()},
		&fakeTxManager{},
		publisher,
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 10, ProviderID: 7})
	assert.ErrorIs(t, err, ErrBookingNotPending)
	assert.Empty(t, publisher.events)
}

func TestExecute_SerializationFailure_BookingTakenByConcurrent(t *testing.T) {
	// Конкурент успел назначить это же бронирование: после провала
	// сериализации перечитывание видит статус assigned
	txMgr := &fakeTxManager{err: &pq.Error{Code: "40001"}}
	bookings := &mockBookingRepo{booking: assignedBooking()}

	uc := NewUseCase(bookings, &mockProviderRepo{}, txMgr, &mockPublisher{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 10, ProviderID: 7})
	assert.ErrorIs(t, err, ErrBookingNotPending)
}

func TestExecute_SerializationFailure_SlotTakenByConcurrent(t *testing.T) {
	// Бронирование все еще pending: конкурент занял слот провайдера
	txMgr := &fakeTxManager{err: &pq.Error{Code: "40001"}}
	bookings := &mockBookingRepo{booking: pendingBooking()}

	uc := NewUseCase(bookings, &mockProviderRepo{}, txMgr, &mockPublisher{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 10, ProviderID: 7})
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_SerializationFailure_BookingGone(t *testing.T) {
	txMgr := &fakeTxManager{err: &pq.Error{Code: "40001"}}
	bookings := &mockBookingRepo{getErr: bookingRepo.ErrBookingNotFound}

	uc := NewUseCase(bookings, &mockProviderRepo{}, txMgr, &mockPublisher{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 10, ProviderID: 7})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{}, &mockProviderRepo{}, &fakeTxManager{}, &mockPublisher{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 0, ProviderID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BookingID: 10, ProviderID: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
