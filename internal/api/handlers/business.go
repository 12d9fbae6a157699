package handlers

import (
	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
	"github.com/m04kA/SMC-ReservationShowcase/pkg/types"
)

// ServiceResponse услуга бизнеса
type ServiceResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Duration int    `json:"duration"`
	Price    *int   `json:"price"`
}

// TimeSlotsResponse слоты: плоский список или группы ресторана
type TimeSlotsResponse struct {
	All    []string `json:"all,omitempty"`
	Lunch  []string `json:"lunch,omitempty"`
	Dinner []string `json:"dinner,omitempty"`
}

// ThemeResponse цвета формы бронирования
type ThemeResponse struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Name      string `json:"name"`
}

// BusinessResponse шаблон бизнеса для формы бронирования
type BusinessResponse struct {
	Type           string            `json:"type"`
	Name           string            `json:"name"`
	Icon           string            `json:"icon"`
	Description    string            `json:"description"`
	Phone          string            `json:"phone"`
	Email          string            `json:"email"`
	Address        string            `json:"address"`
	Hours          string            `json:"hours"`
	ClosedDays     string            `json:"closedDays"`
	ClosedWeekdays []int             `json:"closedWeekdays"`
	Services       []ServiceResponse `json:"services"`
	TimeSlots      TimeSlotsResponse `json:"timeSlots"`
	FormFields     []string          `json:"formFields"`
	Theme          ThemeResponse     `json:"theme"`
	InsuranceTypes []string          `json:"insuranceTypes,omitempty"`
	PartySizes     []int             `json:"partySizes,omitempty"`
	SeatingOptions []string          `json:"seatingOptions,omitempty"`
	Occasions      []string          `json:"occasions,omitempty"`
	LineBotID      string            `json:"lineBotId,omitempty"`
}

// FromDomainBusiness конвертирует шаблон бизнеса в DTO
func FromDomainBusiness(cfg *domain.BusinessConfig) *BusinessResponse {
	if cfg == nil {
		return nil
	}

	resp := &BusinessResponse{
		Type:           string(cfg.Type),
		Name:           cfg.Name,
		Icon:           cfg.Icon,
		Description:    cfg.Description,
		Phone:          cfg.Phone,
		Email:          cfg.Email,
		Address:        cfg.Address,
		Hours:          cfg.Hours,
		ClosedDays:     cfg.Closed,
		ClosedWeekdays: cfg.ClosedOn,
		Services:       make([]ServiceResponse, 0, len(cfg.Services)),
		TimeSlots: TimeSlotsResponse{
			All:    shortTimes(cfg.TimeSlots.All),
			Lunch:  shortTimes(cfg.TimeSlots.Lunch),
			Dinner: shortTimes(cfg.TimeSlots.Dinner),
		},
		FormFields:     make([]string, 0, len(cfg.FormFields)),
		Theme:          ThemeResponse{Primary: cfg.Theme.Primary, Secondary: cfg.Theme.Secondary, Name: cfg.Theme.Name},
		InsuranceTypes: cfg.InsuranceTypes,
		PartySizes:     cfg.PartySizes,
		SeatingOptions: cfg.SeatingOptions,
		Occasions:      cfg.Occasions,
		LineBotID:      cfg.LineBotID,
	}

	if resp.ClosedWeekdays == nil {
		resp.ClosedWeekdays = []int{}
	}
	for _, s := range cfg.Services {
		resp.Services = append(resp.Services, ServiceResponse{ID: s.ID, Name: s.Name, Duration: s.Duration, Price: s.Price})
	}
	for _, f := range cfg.FormFields {
		resp.FormFields = append(resp.FormFields, string(f))
	}

	return resp
}

// shortTimes время в виде шаблона ("9:00")
func shortTimes(times []types.TimeString) []string {
	if len(times) == 0 {
		return nil
	}
	out := make([]string, 0, len(times))
	for _, t := range times {
		out = append(out, t.Short())
	}
	return out
}
