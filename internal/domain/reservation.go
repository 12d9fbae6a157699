package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationShowcase/pkg/types"
)

// ReservationStatus represents the status of a reservation as shown on the admin dashboard
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "確定"
	StatusCompleted ReservationStatus = "完了"
	StatusCancelled ReservationStatus = "キャンセル"
)

// IsValid returns true if the status is one of the known values
func (s ReservationStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ReservedService is a snapshot of a service at the moment of booking
type ReservedService struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Duration int    `json:"duration"`
	Price    *int   `json:"price"`
}

// Reservation represents a customer reservation
type Reservation struct {
	ID                string
	BusinessType      BusinessType
	ReservationNumber string

	CustomerName  string
	CustomerKana  string
	CustomerPhone string
	CustomerEmail string

	Date time.Time // calendar date, midnight UTC
	Time types.TimeString

	Services      []ReservedService
	TotalDuration int // minutes
	TotalPrice    int // yen

	// Optional form fields, depend on the business template
	PartySize     *int
	Seating       *string
	Allergies     *string
	InsuranceType *string
	Occasion      *string
	Birthdate     *string
	Notes         *string

	Status    ReservationStatus
	CreatedAt time.Time
}

// IsActive returns true if the reservation still occupies its slot
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// IsMock returns true for reservations served from demo data
func (r *Reservation) IsMock() bool {
	return IsMockID(r.ID)
}

// ServiceNames returns names of the reserved services in order
func (r *Reservation) ServiceNames() []string {
	names := make([]string, 0, len(r.Services))
	for _, s := range r.Services {
		names = append(names, s.Name)
	}
	return names
}

// ReservationFilter фильтр для выборки бронирований бизнеса
type ReservationFilter struct {
	BusinessType BusinessType       // Обязательный параметр
	Date         *time.Time         // Конкретная дата (опционально)
	DateFrom     *time.Time         // Начало периода включительно (опционально)
	DateTo       *time.Time         // Конец периода включительно (опционально)
	Status       *ReservationStatus // Фильтр по статусу (опционально)
}

// Matches проверяет бронирование на соответствие фильтру
// Используется in-memory хранилищем и mock данными
func (f ReservationFilter) Matches(r *Reservation) bool {
	if r.BusinessType != f.BusinessType {
		return false
	}
	if f.Date != nil && !r.Date.Equal(*f.Date) {
		return false
	}
	if f.DateFrom != nil && r.Date.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && r.Date.After(*f.DateTo) {
		return false
	}
	if f.Status != nil && r.Status != *f.Status {
		return false
	}
	return true
}

// DashboardStats aggregated numbers for the admin dashboard
type DashboardStats struct {
	TodayCount int
	MonthCount int
	CancelRate int // percent, rounded
}

// DayCount number of active reservations on a day
type DayCount struct {
	Date  time.Time
	Count int
}

// ReservationCounts raw counters used to build DashboardStats
type ReservationCounts struct {
	Today          int // active reservations today
	Month          int // active reservations since the first of the month
	MonthCancelled int // cancelled reservations since the first of the month
	MonthTotal     int // all reservations since the first of the month
}
