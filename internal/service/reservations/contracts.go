package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error
	Counts(ctx context.Context, businessType domain.BusinessType, today, monthStart time.Time) (domain.ReservationCounts, error)
	CountByDay(ctx context.Context, businessType domain.BusinessType, from, to time.Time) ([]domain.DayCount, error)
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
