package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
	"github.com/m04kA/SMC-ReservationShowcase/pkg/types"
)

// Repository хранилище бронирований в памяти процесса
// Используется, когда подключение к базе данных не настроено
type Repository struct {
	mu    sync.RWMutex
	items map[string]*domain.Reservation
	now   func() time.Time
}

// NewRepository создает пустое хранилище
func NewRepository() *Repository {
	return &Repository{
		items: make(map[string]*domain.Reservation),
		now:   time.Now,
	}
}

// Create сохраняет копию бронирования
func (r *Repository) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	if res.CreatedAt.IsZero() {
		res.CreatedAt = r.now()
	}

	r.items[res.ID] = clone(res)
	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.items[id]
	if !ok {
		return nil, ErrReservationNotFound
	}
	return clone(res), nil
}

// List получает бронирования по фильтру, отсортированные по дате и времени
func (r *Repository) List(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Reservation, 0)
	for _, res := range r.items {
		if filter.Matches(res) {
			out = append(out, clone(res))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Time.IsBefore(out[j].Time)
	})

	return out, nil
}

// BookedTimes возвращает время начала неотмененных бронирований на дату
func (r *Repository) BookedTimes(_ context.Context, businessType domain.BusinessType, date time.Time) ([]types.TimeString, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	times := make([]types.TimeString, 0)
	for _, res := range r.items {
		if res.BusinessType == businessType && res.Date.Equal(date) && res.IsActive() {
			times = append(times, res.Time)
		}
	}
	return times, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(_ context.Context, id string, status domain.ReservationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.items[id]
	if !ok {
		return ErrReservationNotFound
	}
	res.Status = status
	return nil
}

// Counts считает бронирования для статистики
func (r *Repository) Counts(_ context.Context, businessType domain.BusinessType, today, monthStart time.Time) (domain.ReservationCounts, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var counts domain.ReservationCounts
	for _, res := range r.items {
		if res.BusinessType != businessType {
			continue
		}
		if res.Date.Equal(today) && res.IsActive() {
			counts.Today++
		}
		if res.Date.Before(monthStart) {
			continue
		}
		counts.MonthTotal++
		if res.IsActive() {
			counts.Month++
		} else {
			counts.MonthCancelled++
		}
	}
	return counts, nil
}

// CountByDay возвращает число неотмененных бронирований по дням периода [from, to]
func (r *Repository) CountByDay(_ context.Context, businessType domain.BusinessType, from, to time.Time) ([]domain.DayCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byDay := make(map[time.Time]int)
	for _, res := range r.items {
		if res.BusinessType != businessType || !res.IsActive() {
			continue
		}
		if res.Date.Before(from) || res.Date.After(to) {
			continue
		}
		byDay[res.Date]++
	}

	days := make([]domain.DayCount, 0, len(byDay))
	for date, count := range byDay {
		days = append(days, domain.DayCount{Date: date, Count: count})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })

	return days, nil
}

func clone(res *domain.Reservation) *domain.Reservation {
	c := *res
	c.Services = append([]domain.ReservedService(nil), res.Services...)
	return &c
}
