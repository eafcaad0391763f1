package find_eligible_providers

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("find_eligible_providers: booking not found")

	// ErrBookingNotPending возвращается, когда бронирование уже не ожидает назначения
	ErrBookingNotPending = errors.New("find_eligible_providers: booking is not pending")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("find_eligible_providers: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("find_eligible_providers: internal error")
)
