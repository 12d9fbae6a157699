package list_reservations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationShowcase/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationShowcase/internal/service/reservations"
	"github.com/m04kA/SMC-ReservationShowcase/internal/service/reservations/models"
)

const (
	msgBusinessNotFound = "бизнес не найден"
	msgInvalidFilter    = "некорректные параметры фильтра: view=today|list, date=YYYY-MM-DD"
	msgInvalidStatus    = "некорректный статус, допустимые значения: 確定, 完了, キャンセル"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessType}/admin/reservations
// Query params: view (today|list), date (YYYY-MM-DD), status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessType := mux.Vars(r)["businessType"]
	query := r.URL.Query()

	req := &models.ListReservationsRequest{
		BusinessType: businessType,
		View:         query.Get("view"),
	}
	if date := query.Get("date"); date != "" {
		req.Date = &date
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	resp, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, reservations.ErrInvalidStatus):
			h.logger.Warn("GET /businesses/{type}/admin/reservations - Invalid status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{type}/admin/reservations - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /businesses/{type}/admin/reservations - Failed to list: business=%s, error=%v", businessType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{type}/admin/reservations - Returned %d reservations: business=%s, mock=%t",
		len(resp.Reservations), businessType, resp.Mock)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
