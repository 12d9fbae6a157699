package get_available_slots

import (
	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
	"github.com/m04kA/SMC-ReservationShowcase/pkg/types"
)

// markAvailability отмечает занятые слоты. Время сравнивается без учета ведущего нуля
func markAvailability(groups []domain.SlotGroup, booked []types.TimeString) []domain.AvailableSlotGroup {
	taken := make(map[int]struct{}, len(booked))
	for _, b := range booked {
		if err := b.Validate(); err != nil {
			continue
		}
		taken[b.Minutes()] = struct{}{}
	}

	result := make([]domain.AvailableSlotGroup, 0, len(groups))
	for _, g := range groups {
		out := domain.AvailableSlotGroup{
			Label: g.Label,
			Slots: make([]domain.AvailableSlot, 0, len(g.Slots)),
		}
		for _, s := range g.Slots {
			_, isTaken := taken[s.Minutes()]
			out.Slots = append(out.Slots, domain.AvailableSlot{Time: s, Available: !isTaken})
		}
		result = append(result, out)
	}

	return result
}
