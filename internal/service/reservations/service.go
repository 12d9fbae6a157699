package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationShowcase/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationShowcase/internal/mockdata"
	"github.com/m04kA/SMC-ReservationShowcase/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationShowcase/pkg/mq"
)

// Service сервис админки для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	catalog         Catalog
	publisher       EventPublisher
	metrics         Metrics
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	catalog Catalog,
	publisher EventPublisher,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		catalog:         catalog,
		publisher:       publisher,
		metrics:         metrics,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// List получает бронирования бизнеса для вкладок "сегодня" и "список"
// Если хранилище вернуло пустой результат или ошибку, отдаются демо-данные с тем же фильтром
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: business=%s, view=%s", req.BusinessType, req.View)

	cfg, err := s.business(req.BusinessType)
	if err != nil {
		return nil, err
	}

	today := s.today()
	filter, err := s.toDomainFilter(cfg.Type, req, today)
	if err != nil {
		s.logger.Warn("List: invalid request for business=%s: %v", req.BusinessType, err)
		return nil, err
	}

	list, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for business=%s, using mock data: %v", cfg.Type, err)
	}
	if len(list) > 0 {
		s.logger.Info("List: fetched %d reservations for business=%s", len(list), cfg.Type)
		return models.FromDomainReservationList(list, false), nil
	}

	s.metrics.IncMockFallback(string(cfg.Type), "list")
	mock := mockdata.Filter(cfg, today, filter)
	s.logger.Info("List: using %d mock reservations for business=%s", len(mock), cfg.Type)
	return models.FromDomainReservationList(mock, true), nil
}

// GetByID получает бронирование бизнеса по ID
// Идентификаторы демо-данных ищутся среди демо-бронирований
func (s *Service) GetByID(ctx context.Context, businessType, id string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: business=%s, id=%s", businessType, id)

	cfg, err := s.business(businessType)
	if err != nil {
		return nil, err
	}

	r, err := s.find(ctx, cfg, id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainReservation(r), nil
}

// UpdateStatus меняет статус бронирования и публикует событие
// Демо-бронирования не сохраняются: новый статус возвращается только в ответе
func (s *Service) UpdateStatus(ctx context.Context, businessType, id string, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateStatus: business=%s, id=%s, status=%s", businessType, id, req.Status)

	status, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	cfg, err := s.business(businessType)
	if err != nil {
		return nil, err
	}

	r, err := s.find(ctx, cfg, id)
	if err != nil {
		return nil, err
	}

	if r.IsMock() {
		r.Status = status
		s.logger.Info("UpdateStatus: mock reservation id=%s set to %s (not persisted)", id, status)
		return models.FromDomainReservation(r), nil
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}
	r.Status = status

	event := domain.ReservationStatusChangedEvent{
		ReservationID: r.ID,
		BusinessType:  string(r.BusinessType),
		Status:        string(status),
		ChangedAt:     s.timeProvider.Now(),
	}
	err = s.publisher.PublishJSON(ctx, mq.RoutingReservationStatusChanged, event)
	s.metrics.IncEventPublished(mq.RoutingReservationStatusChanged, err == nil)
	if err != nil {
		s.logger.Warn("UpdateStatus: failed to publish event for id=%s: %v", id, err)
	}

	s.logger.Info("UpdateStatus: reservation id=%s set to %s", id, status)
	return models.FromDomainReservation(r), nil
}

// ExportICS формирует файл календаря для бронирования
func (s *Service) ExportICS(ctx context.Context, businessType, id string) (*models.CalendarFile, error) {
	cfg, err := s.business(businessType)
	if err != nil {
		return nil, err
	}

	r, err := s.find(ctx, cfg, id)
	if err != nil {
		return nil, err
	}

	return &models.CalendarFile{
		Filename: r.ReservationNumber + ".ics",
		Content:  BuildICS(r, cfg, s.location, s.timeProvider.Now()),
	}, nil
}

func (s *Service) find(ctx context.Context, cfg *domain.BusinessConfig, id string) (*domain.Reservation, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: reservation id is required", ErrInvalidInput)
	}

	if domain.IsMockID(id) {
		r, ok := mockdata.Find(cfg, s.today(), id)
		if !ok {
			s.logger.Warn("find: mock reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		return r, nil
	}

	r, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("find: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("find: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Бронирование другого бизнеса недоступно из этой админки
	if r.BusinessType != cfg.Type {
		s.logger.Warn("find: reservation id=%s belongs to business=%s, not %s", id, r.BusinessType, cfg.Type)
		return nil, ErrReservationNotFound
	}

	return r, nil
}

func (s *Service) business(businessType string) (*domain.BusinessConfig, error) {
	cfg, err := s.catalog.Get(domain.BusinessType(businessType))
	if err != nil {
		s.logger.Warn("business=%s not found", businessType)
		return nil, ErrBusinessNotFound
	}
	return cfg, nil
}

func (s *Service) toDomainFilter(businessType domain.BusinessType, req *models.ListReservationsRequest, today time.Time) (domain.ReservationFilter, error) {
	filter := domain.ReservationFilter{BusinessType: businessType}

	switch req.View {
	case models.ViewToday:
		filter.Date = &today
	case models.ViewList, "":
		if req.Date != nil && *req.Date != "" {
			date, err := domain.ParseDate(*req.Date)
			if err != nil {
				return filter, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, *req.Date)
			}
			filter.Date = &date
		}
	default:
		return filter, fmt.Errorf("%w: %v: %s", ErrInvalidInput, models.ErrInvalidView, req.View)
	}

	if req.Status != nil && *req.Status != "" {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			return filter, fmt.Errorf("%w: %s", ErrInvalidStatus, *req.Status)
		}
		filter.Status = &status
	}

	return filter, nil
}

func (s *Service) today() time.Time {
	return domain.DateOf(s.timeProvider.Now().In(s.location))
}
