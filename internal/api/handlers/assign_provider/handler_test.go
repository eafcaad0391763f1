package assign_provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	assignUC "github.com/m04kA/SMC-AssignmentService/internal/usecase/assign_provider"
)

type stubUseCase struct {
	resp *assignUC.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, _ *assignUC.Request) (*assignUC.Response, error) {
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc AssignProviderUseCase, url, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{bookingId}/assign", handler.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"booking not found", assignUC.ErrBookingNotFound, http.StatusNotFound},
		{"provider not found", assignUC.ErrProviderNotFound, http.StatusNotFound},
		{"booking not pending", assignUC.ErrBookingNotPending, http.StatusUnprocessableEntity},
		{"provider not eligible", assignUC.ErrProviderNotEligible, http.StatusUnprocessableEntity},
		{"slot conflict", assignUC.ErrSlotConflict, http.StatusConflict},
		{"invalid input", assignUC.ErrInvalidInput, http.StatusBadRequest},
		{"internal error", assignUC.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &stubUseCase{err: tt.err},
				"/api/v1/bookings/10/assign", `{"providerId": 7}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_InvalidBookingID(t *testing.T) {
	rec := doRequest(t, &stubUseCase{},
		"/api/v1/bookings/abc/assign", `{"providerId": 7}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &stubUseCase{},
		"/api/v1/bookings/10/assign", `{broken`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_Success(t *testing.T) {
	resp := &assignUC.Response{
		ID:         10,
		Status:     "assigned",
		ProviderID: 7,
	}

	rec := doRequest(t, &stubUseCase{resp: resp},
		"/api/v1/bookings/10/assign", `{"providerId": 7}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"assigned"`)
}
