package validate_customer

import (
	"context"

	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
	createReservation "github.com/m04kA/SMC-ReservationShowcase/internal/usecase/create_reservation"
)

type CustomerValidator interface {
	Validate(ctx context.Context, businessType domain.BusinessType, form createReservation.CustomerForm) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
