package get_reservation

import (
	"context"

	"github.com/m04kA/SMC-ReservationShowcase/internal/service/reservations/models"
)

type ReservationService interface {
	GetByID(ctx context.Context, businessType, id string) (*models.ReservationResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
