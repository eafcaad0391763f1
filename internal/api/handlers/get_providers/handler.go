package get_providers

import (
	"net/http"

	"github.com/m04kA/SMC-AssignmentService/internal/api/handlers"
)

const msgInvalidQuery = "некорректные параметры фильтрации"

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

// Handle GET /api/v1/providers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Разбираем фильтры из query string
	req, err := ParseListRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /providers - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	resp, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /providers - Failed to list providers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
