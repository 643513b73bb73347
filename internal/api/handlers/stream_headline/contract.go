package stream_headline

import (
	"context"

	"github.com/m04kA/SMC-InteriorStudio/internal/domain"
)

type HeadlineService interface {
	GetHeadline(ctx context.Context, id string) (domain.Headline, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
