package assign_provider

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AssignmentService/internal/api/handlers"
	assignUC "github.com/m04kA/SMC-AssignmentService/internal/usecase/assign_provider"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgProviderNotFound   = "провайдер не найден"
	msgNotPending         = "бронирование не ожидает назначения"
	msgNotEligible        = "провайдер не подходит для этого бронирования"
	msgSlotConflict       = "слот провайдера уже занят"
)

type Handler struct {
	useCase AssignProviderUseCase
	logger  Logger
}

func NewHandler(useCase AssignProviderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/assign
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/assign - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Декодируем body
	var req AssignProviderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/assign - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Назначаем провайдера
	resp, err := h.useCase.Execute(r.Context(), &assignUC.Request{
		BookingID:  bookingID,
		ProviderID: req.ProviderID,
	})
	if err != nil {
		switch {
		case errors.Is(err, assignUC.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/assign - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, assignUC.ErrProviderNotFound):
			h.logger.Warn("POST /bookings/{id}/assign - Provider not found: provider_id=%d", req.ProviderID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, assignUC.ErrBookingNotPending):
			h.logger.Warn("POST /bookings/{id}/assign - Booking not pending: booking_id=%d", bookingID)
			handlers.RespondUnprocessable(w, msgNotPending)

		case errors.Is(err, assignUC.ErrProviderNotEligible):
			h.logger.Warn("POST /bookings/{id}/assign - Provider not eligible: booking_id=%d, provider_id=%d",
				bookingID, req.ProviderID)
			handlers.RespondUnprocessable(w, msgNotEligible)

		case errors.Is(err, assignUC.ErrSlotConflict):
			h.logger.Warn("POST /bookings/{id}/assign - Slot conflict: booking_id=%d, provider_id=%d",
				bookingID, req.ProviderID)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, assignUC.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/assign - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings/{id}/assign - Failed to assign: booking_id=%d, provider_id=%d, error=%v",
				bookingID, req.ProviderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/assign - Provider assigned: booking_id=%d, provider_id=%d",
		bookingID, req.ProviderID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
