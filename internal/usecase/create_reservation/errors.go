package create_reservation

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrBusinessNotFound возвращается для неизвестного типа бизнеса
	ErrBusinessNotFound = errors.New("create_reservation: business not found")

	// ErrServiceNotFound возвращается, когда выбранная услуга не найдена в шаблоне
	ErrServiceNotFound = errors.New("create_reservation: service not found")

	// ErrDateNotAvailable возвращается для прошедшей даты или выходного дня
	ErrDateNotAvailable = errors.New("create_reservation: date is not available")

	// ErrInvalidTimeSlot возвращается, когда время не входит в слоты выбранных услуг
	ErrInvalidTimeSlot = errors.New("create_reservation: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда выбранное время уже занято
	ErrSlotNotAvailable = errors.New("create_reservation: slot is already booked")

	// ErrValidation возвращается, когда данные клиента не прошли проверку
	ErrValidation = errors.New("create_reservation: customer data is invalid")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")
)

// ValidationError ошибки по полям формы клиента
type ValidationError struct {
	Fields map[string]string // поле -> сообщение для клиента
}

// Error возвращает описание с перечнем полей
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return ErrValidation.Error() + ": " + strings.Join(names, ", ")
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrValidation)
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
