package create_reservation

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationShowcase/internal/catalog"
	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
	"github.com/m04kA/SMC-ReservationShowcase/pkg/mq"
	"github.com/m04kA/SMC-ReservationShowcase/pkg/ptr"
	"github.com/m04kA/SMC-ReservationShowcase/pkg/types"
)

// Источники сохраненного бронирования для метрик
const (
	sourceBackend = "backend"
	sourceMock    = "mock"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	catalog         Catalog
	publisher       EventPublisher
	metrics         Metrics
	location        *time.Location
	timeProvider    TimeProvider
	randIntN        func(n int) int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	catalog Catalog,
	publisher EventPublisher,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		catalog:         catalog,
		publisher:       publisher,
		metrics:         metrics,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		randIntN:        rand.IntN,
		logger:          logger,
	}
}

// Validate проверяет только данные клиента (шаг формы с контактами)
func (uc *UseCase) Validate(_ context.Context, businessType domain.BusinessType, form CustomerForm) error {
	cfg, err := uc.catalog.Get(businessType)
	if err != nil {
		return ErrBusinessNotFound
	}
	if fields := ValidateCustomer(cfg, form); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: business=%s, services=%v, date=%s, time=%s",
		req.BusinessType, req.ServiceIDs, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем шаблон бизнеса
	cfg, err := uc.catalog.Get(req.BusinessType)
	if err != nil {
		uc.logger.Warn("CreateReservation: business=%s not found", req.BusinessType)
		return nil, ErrBusinessNotFound
	}

	// 3. Собираем выбранные услуги, каждая учитывается один раз
	serviceIDs := uniqueServiceIDs(req.ServiceIDs)
	services := make([]domain.ReservedService, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		s, ok := cfg.FindService(id)
		if !ok {
			uc.logger.Warn("CreateReservation: service=%s not found in business=%s", id, req.BusinessType)
			return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, id)
		}
		services = append(services, domain.ReservedService{ID: s.ID, Name: s.Name, Duration: s.Duration, Price: s.Price})
	}

	// 4. Проверяем данные клиента
	if fields := ValidateCustomer(cfg, req.Customer); len(fields) > 0 {
		uc.logger.Warn("CreateReservation: customer data invalid, fields=%d", len(fields))
		return nil, &ValidationError{Fields: fields}
	}

	// 5. Проверяем дату и время
	now := uc.timeProvider.Now().In(uc.location)
	today := domain.DateOf(now)
	date := domain.DateOf(req.Date)
	if !catalog.IsDateOpen(cfg, date, today) {
		uc.logger.Warn("CreateReservation: date %s is not available", date.Format(domain.DateFormat))
		return nil, ErrDateNotAvailable
	}
	if !catalog.HasSlot(cfg, req.Time, serviceIDs...) {
		uc.logger.Warn("CreateReservation: time %s is not a slot of business=%s", req.Time, req.BusinessType)
		return nil, ErrInvalidTimeSlot
	}

	// 6. Проверка занятости без блокировок: ошибка хранилища не мешает записи
	booked, err := uc.reservationRepo.BookedTimes(ctx, req.BusinessType, date)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to check booked times, skipping: %v", err)
	}
	for _, b := range booked {
		if b.Equal(req.Time) {
			uc.logger.Warn("CreateReservation: slot %s %s already booked", date.Format(domain.DateFormat), req.Time)
			return nil, ErrSlotNotAvailable
		}
	}

	// 7. Формируем бронирование
	reservation := uc.buildReservation(cfg, req, date, services)

	// 8. Сохраняем. При недоступности хранилища возвращаем демо-бронирование, чтобы клиент дошел до завершения
	mock := false
	created, err := uc.reservationRepo.Create(ctx, reservation)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to save reservation %s, using mock: %v", reservation.ReservationNumber, err)
		reservation.ID = domain.MockIDPrefix + uuid.NewString()
		reservation.CreatedAt = now
		created = reservation
		mock = true
		uc.metrics.IncMockFallback(string(req.BusinessType), "create")
		uc.metrics.IncReservationCreated(string(req.BusinessType), sourceMock)
	} else {
		uc.metrics.IncReservationCreated(string(req.BusinessType), sourceBackend)
	}

	// 9. Публикуем событие. Демо-бронирование не сохранено, событие по нему не отправляется
	if !mock {
		err = uc.publisher.PublishJSON(ctx, mq.RoutingReservationCreated, domain.NewReservationCreatedEvent(created))
		uc.metrics.IncEventPublished(mq.RoutingReservationCreated, err == nil)
		if err != nil {
			uc.logger.Warn("CreateReservation: failed to publish event for %s: %v", created.ReservationNumber, err)
		}
	}

	uc.logger.Info("CreateReservation: created reservation id=%s, number=%s, mock=%t",
		created.ID, created.ReservationNumber, mock)

	return &Response{
		Reservation: created,
		Business:    cfg,
		Mock:        mock,
	}, nil
}

func (uc *UseCase) buildReservation(cfg *domain.BusinessConfig, req *Request, date time.Time, services []domain.ReservedService) *domain.Reservation {
	form := normalize(req.Customer)

	reservation := &domain.Reservation{
		BusinessType:      cfg.Type,
		ReservationNumber: GenerateNumber(cfg.NumberPrefix(), date, uc.randIntN(maxNumberSuffix)),
		CustomerName:      form.Name,
		CustomerKana:      form.NameKana,
		CustomerPhone:     form.Phone,
		CustomerEmail:     form.Email,
		Date:              date,
		Time:              types.MustTimeString(req.Time.String()),
		Services:          services,
		Status:            domain.StatusConfirmed,
	}

	for _, s := range services {
		reservation.TotalDuration += s.Duration
		reservation.TotalPrice += ptr.Value(s.Price)
	}

	if form.PartySize > 0 {
		reservation.PartySize = ptr.Ptr(form.PartySize)
	}
	reservation.Seating = optional(form.Seating)
	reservation.Allergies = optional(form.Allergies)
	reservation.InsuranceType = optional(form.InsuranceType)
	reservation.Occasion = optional(form.Occasion)
	reservation.Birthdate = optional(form.Birthdate)
	reservation.Notes = optional(form.Notes)

	return reservation
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return ptr.Ptr(s)
}
