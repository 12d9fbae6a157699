package create_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationShowcase/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-ReservationShowcase/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidInput       = "выберите хотя бы одну услугу, дату и время"
	msgValidation         = "проверьте данные формы"
	msgBusinessNotFound   = "бизнес не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgDateNotAvailable   = "выбранная дата недоступна для бронирования"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgSlotNotAvailable   = "выбранный временной слот уже занят"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/businesses/{businessType}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessType := mux.Vars(r)["businessType"]

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{type}/reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(businessType)
	if err != nil {
		h.logger.Warn("POST /businesses/{type}/reservations - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *createReservation.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /businesses/{type}/reservations - Validation failed: business=%s, %v", businessType, err)
			handlers.RespondValidationError(w, msgValidation, validationErr.Fields)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /businesses/{type}/reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrBusinessNotFound):
			h.logger.Warn("POST /businesses/{type}/reservations - Business not found: %s", businessType)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, createReservation.ErrServiceNotFound):
			h.logger.Warn("POST /businesses/{type}/reservations - Service not found: %v", err)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createReservation.ErrDateNotAvailable):
			h.logger.Warn("POST /businesses/{type}/reservations - Date not available: business=%s, date=%s", businessType, req.Date)
			handlers.RespondBadRequest(w, msgDateNotAvailable)

		case errors.Is(err, createReservation.ErrInvalidTimeSlot):
			h.logger.Warn("POST /businesses/{type}/reservations - Invalid time slot: business=%s, time=%s", businessType, req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /businesses/{type}/reservations - Slot not available: business=%s, %s %s", businessType, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /businesses/{type}/reservations - Failed to create reservation: business=%s, error=%v", businessType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses/{type}/reservations - Reservation created: id=%s, number=%s, mock=%t",
		result.Reservation.ID, result.Reservation.ReservationNumber, result.Mock)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
