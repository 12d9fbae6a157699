package get_available_slots

import (
	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ReservationShowcase/internal/usecase/get_available_slots"
)

// SlotResponse слот с признаком доступности
type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// SlotGroupResponse группа слотов. Label пустой для плоского списка
type SlotGroupResponse struct {
	Label string         `json:"label,omitempty"`
	Slots []SlotResponse `json:"slots"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date         string              `json:"date"`
	BusinessType string              `json:"businessType"`
	ServiceID    string              `json:"serviceId,omitempty"`
	Groups       []SlotGroupResponse `json:"groups"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		BusinessType: string(resp.BusinessType),
		ServiceID:    resp.ServiceID,
		Groups:       make([]SlotGroupResponse, 0, len(resp.Groups)),
	}

	for _, g := range resp.Groups {
		group := SlotGroupResponse{Label: g.Label, Slots: make([]SlotResponse, 0, len(g.Slots))}
		for _, s := range g.Slots {
			group.Slots = append(group.Slots, SlotResponse{Time: s.Time.Short(), Available: s.Available})
		}
		out.Groups = append(out.Groups, group)
	}

	return out
}
