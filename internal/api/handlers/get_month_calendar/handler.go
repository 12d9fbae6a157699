package get_month_calendar

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationShowcase/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationShowcase/internal/service/reservations"
)

const (
	msgBusinessNotFound = "бизнес не найден"
	msgInvalidMonth     = "некорректный месяц, ожидается формат YYYY-MM"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessType}/admin/calendar?month=YYYY-MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessType := mux.Vars(r)["businessType"]
	month := r.URL.Query().Get("month")

	calendar, err := h.service.MonthCalendar(r.Context(), businessType, month)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{type}/admin/calendar - Invalid month: %s", month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /businesses/{type}/admin/calendar - Failed to build calendar: business=%s, error=%v", businessType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, calendar)
}
