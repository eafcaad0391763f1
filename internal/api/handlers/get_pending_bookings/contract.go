package get_pending_bookings

import (
	"context"

	"github.com/m04kA/SMC-AssignmentService/internal/service/bookings/models"
)

type BookingService interface {
	ListPending(ctx context.Context) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
