package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
	"github.com/m04kA/SMC-ReservationShowcase/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	BookedTimes(ctx context.Context, businessType domain.BusinessType, date time.Time) ([]types.TimeString, error)
}

// Catalog интерфейс каталога шаблонов бизнесов
type Catalog interface {
	Get(businessType domain.BusinessType) (*domain.BusinessConfig, error)
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	IncReservationCreated(business, source string)
	IncMockFallback(business, operation string)
	IncEventPublished(routingKey string, ok bool)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
