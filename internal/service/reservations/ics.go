package reservations

import (
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
)

const icsUIDDomain = "demo.jp"

// BuildICS формирует календарь с одним событием бронирования
// Начало - дата и время бронирования в часовом поясе бизнеса, длительность - сумма услуг
func BuildICS(r *domain.Reservation, cfg *domain.BusinessConfig, location *time.Location, now time.Time) []byte {
	start := time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(), 0, 0, 0, 0, location).
		Add(time.Duration(r.Time.Minutes()) * time.Minute)

	duration := r.TotalDuration
	if duration <= 0 {
		duration = domain.DefaultDurationMinutes
	}
	end := start.Add(time.Duration(duration) * time.Minute)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(fmt.Sprintf("-//%s//Reservation//JP", cfg.Name))

	event := cal.AddEvent(fmt.Sprintf("%s@%s", r.ReservationNumber, icsUIDDomain))
	event.SetDtStampTime(now.UTC())
	event.SetStartAt(start)
	event.SetEndAt(end)
	event.SetSummary(fmt.Sprintf("%s - %s", cfg.Name, strings.Join(r.ServiceNames(), "、")))
	event.SetLocation(cfg.Address)
	event.SetDescription("予約番号: " + r.ReservationNumber)

	return []byte(cal.Serialize())
}
