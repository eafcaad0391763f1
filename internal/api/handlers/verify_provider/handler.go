package verify_provider

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AssignmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AssignmentService/internal/service/providers"
)

const (
	msgInvalidProviderID = "некорректный ID провайдера"
	msgNotFound          = "провайдер не найден"
)

type Handler struct {
	service ProviderService
	logger  Logger
}

func NewHandler(service ProviderService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/providers/{providerId}/verify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем providerId из URL
	vars := mux.Vars(r)
	providerIDStr := vars["providerId"]

	providerID, err := strconv.ParseInt(providerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /providers/{id}/verify - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	// Верифицируем провайдера
	provider, err := h.service.Verify(r.Context(), providerID)
	if err != nil {
		switch {
		case errors.Is(err, providers.ErrProviderNotFound):
			h.logger.Warn("PATCH /providers/{id}/verify - Provider not found: provider_id=%d", providerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, providers.ErrInvalidInput):
			h.logger.Warn("PATCH /providers/{id}/verify - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProviderID)

		default:
			h.logger.Error("PATCH /providers/{id}/verify - Failed to verify: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /providers/{id}/verify - Provider verified: provider_id=%d", providerID)
	handlers.RespondJSON(w, http.StatusOK, provider)
}
