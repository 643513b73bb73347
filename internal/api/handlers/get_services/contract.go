package get_services

import (
	"context"

	"github.com/m04kA/SMC-InteriorStudio/internal/service/catalog/models"
)

type ListingService interface {
	Services(ctx context.Context, category string) (*models.ServicesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
