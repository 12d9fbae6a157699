package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
	"github.com/m04kA/SMC-ReservationShowcase/pkg/types"
)

// CustomerForm данные клиента из формы бронирования
type CustomerForm struct {
	Name     string
	NameKana string
	Phone    string
	Email    string
	Notes    string

	// Поля, зависящие от шаблона бизнеса
	Birthdate     string
	InsuranceType string
	PartySize     int
	Seating       string
	Allergies     string
	Occasion      string
}

// Request модель запроса на создание бронирования
type Request struct {
	BusinessType domain.BusinessType // Тип бизнеса
	ServiceIDs   []string            // Выбранные услуги (минимум одна)
	Date         time.Time           // Дата бронирования (полночь UTC)
	Time         types.TimeString    // Время начала
	Customer     CustomerForm        // Данные клиента
}

// Response модель ответа с созданным бронированием
type Response struct {
	Reservation *domain.Reservation
	Business    *domain.BusinessConfig
	Mock        bool // true, если хранилище недоступно и бронирование не сохранено
}
