package get_month_calendar

import (
	"context"

	"github.com/m04kA/SMC-ReservationShowcase/internal/service/reservations/models"
)

type CalendarService interface {
	MonthCalendar(ctx context.Context, businessType, month string) (*models.CalendarResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
