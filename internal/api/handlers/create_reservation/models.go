package create_reservation

import (
	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
	"github.com/m04kA/SMC-ReservationShowcase/internal/service/reservations/models"
	createReservation "github.com/m04kA/SMC-ReservationShowcase/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-ReservationShowcase/pkg/types"
)

// CustomerRequest данные клиента из формы
type CustomerRequest struct {
	Name          string `json:"name"`
	NameKana      string `json:"nameKana"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Notes         string `json:"notes,omitempty"`
	Birthdate     string `json:"birthdate,omitempty"`
	InsuranceType string `json:"insuranceType,omitempty"`
	PartySize     int    `json:"partySize,omitempty"`
	Seating       string `json:"seating,omitempty"`
	Allergies     string `json:"allergies,omitempty"`
	Occasion      string `json:"occasion,omitempty"`
}

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ServiceIDs []string        `json:"serviceIds"`
	Date       string          `json:"date"` // "2026-03-11"
	Time       string          `json:"time"` // "10:00" или "9:00"
	Customer   CustomerRequest `json:"customer"`
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	Reservation  *models.ReservationResponse `json:"reservation"`
	BusinessName string                      `json:"businessName"`
	Mock         bool                        `json:"mock"`
}

// ToForm конвертирует данные клиента в модель use case
func (c CustomerRequest) ToForm() createReservation.CustomerForm {
	return createReservation.CustomerForm{
		Name:          c.Name,
		NameKana:      c.NameKana,
		Phone:         c.Phone,
		Email:         c.Email,
		Notes:         c.Notes,
		Birthdate:     c.Birthdate,
		InsuranceType: c.InsuranceType,
		PartySize:     c.PartySize,
		Seating:       c.Seating,
		Allergies:     c.Allergies,
		Occasion:      c.Occasion,
	}
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(businessType string) (*createReservation.Request, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return nil, errInvalidDate
	}

	t, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, errInvalidTime
	}

	return &createReservation.Request{
		BusinessType: domain.BusinessType(businessType),
		ServiceIDs:   r.ServiceIDs,
		Date:         date,
		Time:         t,
		Customer:     r.Customer.ToForm(),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *CreateReservationResponse {
	return &CreateReservationResponse{
		Reservation:  models.FromDomainReservation(resp.Reservation),
		BusinessName: resp.Business.Name,
		Mock:         resp.Mock,
	}
}
