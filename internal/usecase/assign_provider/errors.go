package assign_provider

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("assign_provider: booking not found")

	// ErrProviderNotFound возвращается, когда провайдер не найден
	ErrProviderNotFound = errors.New("assign_provider: provider not found")

	// ErrBookingNotPending возвращается, когда бронирование уже не в статусе pending,
	// в том числе когда его забрал конкурентный запрос
	ErrBookingNotPending = errors.New("assign_provider: booking is not pending")

	// ErrProviderNotEligible возвращается, когда провайдер не проходит жесткие
	// правила пригодности: не верифицирован или не та категория услуг
	ErrProviderNotEligible = errors.New("assign_provider: provider is not eligible")

	// ErrSlotConflict возвращается при временном конфликте: провайдер уже
	// удерживает обязательство, пересекающееся со слотом бронирования
	ErrSlotConflict = errors.New("assign_provider: provider slot conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("assign_provider: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("assign_provider: internal error")
)
