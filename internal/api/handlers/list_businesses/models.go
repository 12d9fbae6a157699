package list_businesses

import "github.com/m04kA/SMC-ReservationShowcase/internal/api/handlers"

// ListResponse HTTP response model
type ListResponse struct {
	Businesses []handlers.BusinessResponse `json:"businesses"`
}
