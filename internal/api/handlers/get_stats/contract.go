package get_stats

import (
	"context"

	"github.com/m04kA/SMC-ReservationShowcase/internal/service/reservations/models"
)

type StatsService interface {
	Stats(ctx context.Context, businessType string) (*models.StatsResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
