package get_eligible_providers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AssignmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AssignmentService/internal/usecase/find_eligible_providers"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
	msgNotPending       = "бронирование не ожидает назначения"
)

type Handler struct {
	useCase FindEligibleProvidersUseCase
	logger  Logger
}

func NewHandler(useCase FindEligibleProvidersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/eligible-providers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/eligible-providers - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Подбираем кандидатов
	resp, err := h.useCase.Execute(r.Context(), &find_eligible_providers.Request{BookingID: bookingID})
	if err != nil {
		switch {
		case errors.Is(err, find_eligible_providers.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/eligible-providers - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, find_eligible_providers.ErrBookingNotPending):
			h.logger.Warn("GET /bookings/{id}/eligible-providers - Booking not pending: booking_id=%d", bookingID)
			handlers.RespondUnprocessable(w, msgNotPending)

		case errors.Is(err, find_eligible_providers.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{id}/eligible-providers - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("GET /bookings/{id}/eligible-providers - Failed: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id}/eligible-providers - Found %d candidates: booking_id=%d",
		len(resp.Candidates), bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
