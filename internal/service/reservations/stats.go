package reservations

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
	"github.com/m04kA/SMC-ReservationShowcase/internal/mockdata"
	"github.com/m04kA/SMC-ReservationShowcase/internal/service/reservations/models"
)

// Stats считает статистику для карточек админки
// Месяц считается с первого числа без верхней границы, как в исходных отчетах
func (s *Service) Stats(ctx context.Context, businessType string) (*models.StatsResponse, error) {
	s.logger.Info("Stats: business=%s", businessType)

	cfg, err := s.business(businessType)
	if err != nil {
		return nil, err
	}

	today := s.today()
	counts, err := s.reservationRepo.Counts(ctx, cfg.Type, today, domain.FirstOfMonth(today))
	if err != nil {
		s.logger.Error("Stats: repository error for business=%s, using mock data: %v", cfg.Type, err)
		counts = domain.ReservationCounts{}
	}

	if counts.Today == 0 && counts.Month == 0 {
		s.metrics.IncMockFallback(string(cfg.Type), "stats")
		return models.FromDomainStats(mockdata.Stats(cfg, today), true), nil
	}

	stats := domain.DashboardStats{
		TodayCount: counts.Today,
		MonthCount: counts.Month,
		CancelRate: CancelRate(counts.MonthCancelled, counts.MonthTotal),
	}

	s.logger.Info("Stats: business=%s, today=%d, month=%d, cancelRate=%d%%",
		cfg.Type, stats.TodayCount, stats.MonthCount, stats.CancelRate)
	return models.FromDomainStats(stats, false), nil
}

// MonthCalendar возвращает количество активных бронирований по дням месяца
// month в формате YYYY-MM, пустая строка - текущий месяц
func (s *Service) MonthCalendar(ctx context.Context, businessType, month string) (*models.CalendarResponse, error) {
	s.logger.Info("MonthCalendar: business=%s, month=%s", businessType, month)

	cfg, err := s.business(businessType)
	if err != nil {
		return nil, err
	}

	today := s.today()
	from := domain.FirstOfMonth(today)
	if month != "" {
		from, err = time.Parse(domain.MonthFormat, month)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid month %q", ErrInvalidInput, month)
		}
	}
	to := from.AddDate(0, 1, -1)

	days, err := s.reservationRepo.CountByDay(ctx, cfg.Type, from, to)
	if err != nil {
		s.logger.Error("MonthCalendar: repository error for business=%s, using mock data: %v", cfg.Type, err)
		days = nil
	}
	if len(days) == 0 {
		s.metrics.IncMockFallback(string(cfg.Type), "calendar")
		days = countMockByDay(cfg, today, from, to)
	}

	resp := &models.CalendarResponse{
		Month: from.Format(domain.MonthFormat),
		Days:  make([]models.DayCountResponse, 0, len(days)),
	}
	for _, d := range days {
		resp.Days = append(resp.Days, models.DayCountResponse{Date: d.Date.Format(domain.DateFormat), Count: d.Count})
	}

	return resp, nil
}

// CancelRate процент отмен, округленный до целого. 0, если бронирований не было
func CancelRate(cancelled, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(cancelled) / float64(total) * 100))
}

func countMockByDay(cfg *domain.BusinessConfig, today, from, to time.Time) []domain.DayCount {
	list := mockdata.Filter(cfg, today, domain.ReservationFilter{
		BusinessType: cfg.Type,
		DateFrom:     &from,
		DateTo:       &to,
	})

	var days []domain.DayCount
	for _, r := range list {
		if !r.IsActive() {
			continue
		}
		if n := len(days); n > 0 && days[n-1].Date.Equal(r.Date) {
			days[n-1].Count++
			continue
		}
		days = append(days, domain.DayCount{Date: r.Date, Count: 1})
	}
	return days
}
