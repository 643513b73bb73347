package submit_booking

import (
	"context"

	"github.com/m04kA/SMC-InteriorStudio/internal/service/bookingsession/models"
)

type SessionService interface {
	Submit(ctx context.Context, id string, wait bool) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
