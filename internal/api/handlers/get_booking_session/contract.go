package get_booking_session

import (
	"context"

	"github.com/m04kA/SMC-InteriorStudio/internal/service/bookingsession/models"
)

type SessionService interface {
	Get(ctx context.Context, id string) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
