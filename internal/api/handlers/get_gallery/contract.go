package get_gallery

import (
	"context"

	"github.com/m04kA/SMC-InteriorStudio/internal/service/catalog/models"
)

type GalleryService interface {
	Gallery(ctx context.Context, category, query string) (*models.GalleryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
