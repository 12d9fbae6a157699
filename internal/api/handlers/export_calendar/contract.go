package export_calendar

import (
	"context"

	"github.com/m04kA/SMC-ReservationShowcase/internal/service/reservations/models"
)

type CalendarExporter interface {
	ExportICS(ctx context.Context, businessType, id string) (*models.CalendarFile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
