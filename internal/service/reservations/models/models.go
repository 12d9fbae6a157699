package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrInvalidView возвращается при неизвестной вкладке списка
	ErrInvalidView = errors.New("invalid view")
)

// Вкладки списка бронирований в админке
const (
	ViewToday = "today"
	ViewList  = "list"
)

// Request модели

// ListReservationsRequest запрос на получение бронирований бизнеса
type ListReservationsRequest struct {
	BusinessType string  `json:"businessType"`
	View         string  `json:"view"`             // today | list, по умолчанию list
	Date         *string `json:"date,omitempty"`   // Фильтр по дате для вкладки list (опционально)
	Status       *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID                string `json:"id"`
	BusinessType      string `json:"businessType"`
	ReservationNumber string `json:"reservationNumber"`
	CustomerName      string `json:"customerName"`
	CustomerNameKana  string `json:"customerNameKana"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	Date              string `json:"date"` // "2026-03-11"
	Time              string `json:"time"` // "10:00"

	Services      []domain.ReservedService `json:"services"`
	TotalDuration int                      `json:"totalDuration"`
	TotalPrice    int                      `json:"totalPrice"`

	PartySize         *int    `json:"partySize,omitempty"`
	SeatingPreference *string `json:"seatingPreference,omitempty"`
	Allergies         *string `json:"allergies,omitempty"`
	InsuranceType     *string `json:"insuranceType,omitempty"`
	Occasion          *string `json:"occasion,omitempty"`
	Birthdate         *string `json:"birthdate,omitempty"`
	Notes             *string `json:"notes,omitempty"`

	Status    string    `json:"status"`
	Mock      bool      `json:"mock"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Mock         bool                  `json:"mock"` // Список собран из демо-данных
}

// StatsResponse статистика для карточек админки
type StatsResponse struct {
	TodayCount int  `json:"todayCount"`
	MonthCount int  `json:"monthCount"`
	CancelRate int  `json:"cancelRate"`
	Mock       bool `json:"mock"`
}

// DayCountResponse количество бронирований за день
type DayCountResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// CalendarResponse календарь месяца для админки
type CalendarResponse struct {
	Month string             `json:"month"` // "2026-03"
	Days  []DayCountResponse `json:"days"`
}

// CalendarFile файл .ics для скачивания
type CalendarFile struct {
	Filename string
	Content  []byte
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	services := r.Services
	if services == nil {
		services = []domain.ReservedService{}
	}

	return &ReservationResponse{
		ID:                r.ID,
		BusinessType:      string(r.BusinessType),
		ReservationNumber: r.ReservationNumber,
		CustomerName:      r.CustomerName,
		CustomerNameKana:  r.CustomerKana,
		Phone:             r.CustomerPhone,
		Email:             r.CustomerEmail,
		Date:              r.Date.Format(domain.DateFormat),
		Time:              r.Time.String(),
		Services:          services,
		TotalDuration:     r.TotalDuration,
		TotalPrice:        r.TotalPrice,
		PartySize:         r.PartySize,
		SeatingPreference: r.Seating,
		Allergies:         r.Allergies,
		InsuranceType:     r.InsuranceType,
		Occasion:          r.Occasion,
		Birthdate:         r.Birthdate,
		Notes:             r.Notes,
		Status:            string(r.Status),
		Mock:              r.IsMock(),
		CreatedAt:         r.CreatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation, mock bool) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
		Mock:         mock,
	}

	for _, r := range reservations {
		if item := FromDomainReservation(r); item != nil {
			resp.Reservations = append(resp.Reservations, *item)
		}
	}

	return resp
}

// FromDomainStats конвертирует статистику в DTO
func FromDomainStats(stats domain.DashboardStats, mock bool) *StatsResponse {
	return &StatsResponse{
		TodayCount: stats.TodayCount,
		MonthCount: stats.MonthCount,
		CancelRate: stats.CancelRate,
		Mock:       mock,
	}
}

// ToDomainStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
