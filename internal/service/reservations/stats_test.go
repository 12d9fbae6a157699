package reservations

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
	"github.com/m04kA/SMC-ReservationShowcase/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ReservationShowcase/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationShowcase/pkg/mq"
)

func TestCancelRate(t *testing.T) {
	tests := []struct {
		cancelled, total, want int
	}{
		{0, 0, 0},
		{0, 10, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{4, 4, 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CancelRate(tt.cancelled, tt.total), "%d/%d", tt.cancelled, tt.total)
	}
}

func TestStats_FromRepository(t *testing.T) {
	repo := memory.NewRepository()
	seed(t, repo, domain.BusinessSalon, today, "10:00", domain.StatusConfirmed)
	seed(t, repo, domain.BusinessSalon, today, "11:00", domain.StatusCancelled)
	seed(t, repo, domain.BusinessSalon, today.AddDate(0, 0, 5), "12:00", domain.StatusCompleted)
	// Без верхней границы: следующий месяц тоже попадает в счет
	seed(t, repo, domain.BusinessSalon, today.AddDate(0, 1, 0), "14:00", domain.StatusConfirmed)
	// Прошлый месяц не учитывается
	seed(t, repo, domain.BusinessSalon, today.AddDate(0, -1, 0), "14:00", domain.StatusCancelled)
	svc := newService(t, repo, mq.NoopPublisher{})

	resp, err := svc.Stats(context.Background(), "salon")

	require.NoError(t, err)
	assert.Equal(t, &models.StatsResponse{TodayCount: 1, MonthCount: 3, CancelRate: 25}, resp)
}

func TestStats_MockFallback(t *testing.T) {
	repo := memory.NewRepository()
	// Только отмененные: оба счетчика нулевые
	seed(t, repo, domain.BusinessSalon, today, "10:00", domain.StatusCancelled)

	for name, svc := range map[string]*Service{
		"empty counts":     newService(t, repo, mq.NoopPublisher{}),
		"repository error": newService(t, failingRepository{err: errors.New("down")}, mq.NoopPublisher{}),
	} {
		t.Run(name, func(t *testing.T) {
			resp, err := svc.Stats(context.Background(), "salon")

			require.NoError(t, err)
			assert.Equal(t, &models.StatsResponse{TodayCount: 2, MonthCount: 3, CancelRate: 0, Mock: true}, resp)
		})
	}

	_, err := newService(t, repo, mq.NoopPublisher{}).Stats(context.Background(), "spa")
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestMonthCalendar(t *testing.T) {
	repo := memory.NewRepository()
	seed(t, repo, domain.BusinessSalon, today, "10:00", domain.StatusConfirmed)
	seed(t, repo, domain.BusinessSalon, today, "11:00", domain.StatusConfirmed)
	seed(t, repo, domain.BusinessSalon, today, "12:00", domain.StatusCancelled)
	seed(t, repo, domain.BusinessSalon, today.AddDate(0, 0, 20), "12:00", domain.StatusConfirmed)
	seed(t, repo, domain.BusinessSalon, today.AddDate(0, 1, 0), "12:00", domain.StatusConfirmed)
	svc := newService(t, repo, mq.NoopPublisher{})

	resp, err := svc.MonthCalendar(context.Background(), "salon", "2026-03")
	require.NoError(t, err)
	assert.Equal(t, &models.CalendarResponse{
		Month: "2026-03",
		Days: []models.DayCountResponse{
			{Date: "2026-03-11", Count: 2},
			{Date: "2026-03-31", Count: 1},
		},
	}, resp)

	current, err := svc.MonthCalendar(context.Background(), "salon", "")
	require.NoError(t, err)
	assert.Equal(t, resp, current)
}

func TestMonthCalendar_MockFallback(t *testing.T) {
	svc := newService(t, memory.NewRepository(), mq.NoopPublisher{})

	resp, err := svc.MonthCalendar(context.Background(), "restaurant", "2026-03")
	require.NoError(t, err)
	assert.Equal(t, []models.DayCountResponse{
		{Date: "2026-03-11", Count: 2},
		{Date: "2026-03-12", Count: 1},
	}, resp.Days)

	_, err = svc.MonthCalendar(context.Background(), "restaurant", "March")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
