package validate_customer

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationShowcase/internal/api/handlers"
	createReservationHandler "github.com/m04kA/SMC-ReservationShowcase/internal/api/handlers/create_reservation"
	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
	createReservation "github.com/m04kA/SMC-ReservationShowcase/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidation         = "проверьте данные формы"
	msgBusinessNotFound   = "бизнес не найден"
)

// ValidResponse ответ при успешной проверке
type ValidResponse struct {
	Valid bool `json:"valid"`
}

type Handler struct {
	validator CustomerValidator
	logger    Logger
}

func NewHandler(validator CustomerValidator, logger Logger) *Handler {
	return &Handler{
		validator: validator,
		logger:    logger,
	}
}

// Handle POST /api/v1/businesses/{businessType}/reservations/validate
// Проверяет только данные клиента (шаг формы с контактами)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessType := mux.Vars(r)["businessType"]

	var req createReservationHandler.CustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{type}/reservations/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.validator.Validate(r.Context(), domain.BusinessType(businessType), req.ToForm())
	if err != nil {
		var validationErr *createReservation.ValidationError
		switch {
		case errors.As(err, &validationErr):
			handlers.RespondValidationError(w, msgValidation, validationErr.Fields)

		case errors.Is(err, createReservation.ErrBusinessNotFound):
			h.logger.Warn("POST /businesses/{type}/reservations/validate - Business not found: %s", businessType)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		default:
			h.logger.Error("POST /businesses/{type}/reservations/validate - Failed to validate: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ValidResponse{Valid: true})
}
