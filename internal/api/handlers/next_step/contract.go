package next_step

import (
	"context"

	"github.com/m04kA/SMC-InteriorStudio/internal/service/bookingsession/models"
)

type SessionService interface {
	Next(ctx context.Context, id string) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
