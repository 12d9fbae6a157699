package get_available_slots

import "errors"

var (
	// ErrBusinessNotFound возвращается для неизвестного типа бизнеса
	ErrBusinessNotFound = errors.New("get_available_slots: business not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в шаблоне бизнеса
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrDateNotAvailable возвращается для прошедшей даты или выходного дня
	ErrDateNotAvailable = errors.New("get_available_slots: date is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")
)
