package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationShowcase/internal/catalog"
	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
)

// UseCase use case для получения доступных слотов
type UseCase struct {
	reservationRepo ReservationRepository
	catalog         Catalog
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// location - часовой пояс бизнеса, по нему определяется "сегодня"
func NewUseCase(
	reservationRepo ReservationRepository,
	catalog Catalog,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		catalog:         catalog,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%s, date=%s, service=%s",
		req.BusinessType, req.Date.Format(domain.DateFormat), req.ServiceID)

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем шаблон бизнеса
	cfg, err := uc.catalog.Get(req.BusinessType)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: business=%s not found", req.BusinessType)
		return nil, ErrBusinessNotFound
	}

	// 3. Проверяем услугу, если указана
	if req.ServiceID != "" {
		if _, ok := cfg.FindService(req.ServiceID); !ok {
			uc.logger.Warn("GetAvailableSlots: service=%s not found in business=%s", req.ServiceID, req.BusinessType)
			return nil, ErrServiceNotFound
		}
	}

	// 4. Проверяем, что дата доступна для записи
	today := domain.DateOf(uc.timeProvider.Now().In(uc.location))
	date := domain.DateOf(req.Date)
	if !catalog.IsDateOpen(cfg, date, today) {
		uc.logger.Info("GetAvailableSlots: date %s is not available for business=%s",
			date.Format(domain.DateFormat), req.BusinessType)
		return nil, ErrDateNotAvailable
	}

	// 5. Получаем занятое время. Ошибка хранилища не блокирует запись: считаем, что занятых слотов нет
	booked, err := uc.reservationRepo.BookedTimes(ctx, req.BusinessType, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked times, treating as empty: %v", err)
		booked = nil
	}

	// 6. Отмечаем доступность
	groups := markAvailability(catalog.TimeSlotsFor(cfg, req.ServiceID), booked)

	uc.logger.Info("GetAvailableSlots: business=%s, date=%s, groups=%d, booked=%d",
		req.BusinessType, date.Format(domain.DateFormat), len(groups), len(booked))

	return &Response{
		Date:         date,
		BusinessType: req.BusinessType,
		ServiceID:    req.ServiceID,
		Groups:       groups,
	}, nil
}
