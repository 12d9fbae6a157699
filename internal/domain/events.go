package domain

import "time"

// ReservationCreatedEvent событие о новом бронировании
type ReservationCreatedEvent struct {
	ReservationID     string    `json:"reservation_id"`
	BusinessType      string    `json:"business_type"`
	ReservationNumber string    `json:"reservation_number"`
	Date              string    `json:"date"`
	Time              string    `json:"time"`
	Services          []string  `json:"services"`
	TotalPrice        int       `json:"total_price"`
	Mock              bool      `json:"mock"`
	CreatedAt         time.Time `json:"created_at"`
}

// ReservationStatusChangedEvent событие о смене статуса бронирования
type ReservationStatusChangedEvent struct {
	ReservationID string    `json:"reservation_id"`
	BusinessType  string    `json:"business_type"`
	Status        string    `json:"status"`
	ChangedAt     time.Time `json:"changed_at"`
}

// NewReservationCreatedEvent формирует событие по бронированию
func NewReservationCreatedEvent(r *Reservation) ReservationCreatedEvent {
	return ReservationCreatedEvent{
		ReservationID:     r.ID,
		BusinessType:      string(r.BusinessType),
		ReservationNumber: r.ReservationNumber,
		Date:              r.Date.Format(DateFormat),
		Time:              r.Time.String(),
		Services:          r.ServiceNames(),
		TotalPrice:        r.TotalPrice,
		Mock:              r.IsMock(),
		CreatedAt:         r.CreatedAt,
	}
}
