package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
	"github.com/m04kA/SMC-ReservationShowcase/pkg/types"
)

var day = time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

func seed(t *testing.T, repo *Repository, businessType domain.BusinessType, date time.Time, slot string, status domain.ReservationStatus) *domain.Reservation {
	t.Helper()
	res, err := repo.Create(context.Background(), &domain.Reservation{
		BusinessType: businessType,
		Date:         date,
		Time:         types.MustTimeString(slot),
		Status:       status,
	})
	require.NoError(t, err)
	return res
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo := NewRepository()

	created := seed(t, repo, domain.BusinessSalon, day, "10:00", domain.StatusConfirmed)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	// изменения копии не влияют на хранилище
	got.Status = domain.StatusCancelled
	again, _ := repo.GetByID(context.Background(), created.ID)
	assert.Equal(t, domain.StatusConfirmed, again.Status)

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestRepository_ListSorted(t *testing.T) {
	repo := NewRepository()
	seed(t, repo, domain.BusinessSalon, day.AddDate(0, 0, 1), "10:00", domain.StatusConfirmed)
	seed(t, repo, domain.BusinessSalon, day, "15:00", domain.StatusConfirmed)
	seed(t, repo, domain.BusinessSalon, day, "9:00", domain.StatusConfirmed)
	seed(t, repo, domain.BusinessClinic, day, "9:00", domain.StatusConfirmed)

	list, err := repo.List(context.Background(), domain.ReservationFilter{BusinessType: domain.BusinessSalon})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, types.TimeString("09:00"), list[0].Time)
	assert.Equal(t, types.TimeString("15:00"), list[1].Time)
	assert.Equal(t, day.AddDate(0, 0, 1), list[2].Date)
}

func TestRepository_BookedTimesSkipsCancelled(t *testing.T) {
	repo := NewRepository()
	seed(t, repo, domain.BusinessClinic, day, "9:00", domain.StatusConfirmed)
	seed(t, repo, domain.BusinessClinic, day, "9:30", domain.StatusCancelled)
	seed(t, repo, domain.BusinessClinic, day, "10:00", domain.StatusCompleted)

	times, err := repo.BookedTimes(context.Background(), domain.BusinessClinic, day)
	require.NoError(t, err)
	assert.ElementsMatch(t, []types.TimeString{"09:00", "10:00"}, times)
}

func TestRepository_UpdateStatusAndCounts(t *testing.T) {
	repo := NewRepository()
	monthStart := domain.FirstOfMonth(day)

	a := seed(t, repo, domain.BusinessRestaurant, day, "12:00", domain.StatusConfirmed)
	seed(t, repo, domain.BusinessRestaurant, day, "18:00", domain.StatusConfirmed)
	seed(t, repo, domain.BusinessRestaurant, day.AddDate(0, 0, 5), "18:00", domain.StatusConfirmed)
	seed(t, repo, domain.BusinessRestaurant, monthStart.AddDate(0, 0, -1), "18:00", domain.StatusConfirmed)

	require.NoError(t, repo.UpdateStatus(context.Background(), a.ID, domain.StatusCancelled))
	assert.ErrorIs(t, repo.UpdateStatus(context.Background(), "missing", domain.StatusCompleted), ErrReservationNotFound)

	counts, err := repo.Counts(context.Background(), domain.BusinessRestaurant, day, monthStart)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationCounts{Today: 1, Month: 2, MonthCancelled: 1, MonthTotal: 3}, counts)

	days, err := repo.CountByDay(context.Background(), domain.BusinessRestaurant, monthStart, monthStart.AddDate(0, 1, -1))
	require.NoError(t, err)
	assert.Equal(t, []domain.DayCount{
		{Date: day, Count: 1},
		{Date: day.AddDate(0, 0, 5), Count: 1},
	}, days)
}

func TestRepository_ConcurrentCreate(t *testing.T) {
	repo := NewRepository()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Create(context.Background(), &domain.Reservation{BusinessType: domain.BusinessSalon, Date: day, Time: "10:00"})
		}()
	}
	wg.Wait()

	list, err := repo.List(context.Background(), domain.ReservationFilter{BusinessType: domain.BusinessSalon})
	require.NoError(t, err)
	assert.Len(t, list, 20)
}
