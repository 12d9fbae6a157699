package domain

import (
	"strings"
	"time"
)

// Форматы даты и времени
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// Группы слотов ресторана
const (
	SlotGroupLunch  = "ランチ"
	SlotGroupDinner = "ディナー"
)

// DefaultDurationMinutes длительность события в календаре, если услуги не выбраны
const DefaultDurationMinutes = 60

// MockIDPrefix префикс идентификаторов демо-бронирований
const MockIDPrefix = "mock-"

// IsMockID сообщает, относится ли идентификатор к демо-данным
func IsMockID(id string) bool {
	return strings.HasPrefix(id, MockIDPrefix)
}

// AllStatuses статусы в порядке отображения
var AllStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// DateOf возвращает календарную дату момента t (в его часовом поясе) как полночь UTC
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate разбирает дату в формате YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// FirstOfMonth возвращает первое число месяца даты
func FirstOfMonth(date time.Time) time.Time {
	y, m, _ := date.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}
