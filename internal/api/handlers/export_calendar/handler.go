package export_calendar

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationShowcase/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationShowcase/internal/service/reservations"
)

const (
	contentTypeCalendar = "text/calendar; charset=utf-8"

	msgNotFound         = "бронирование не найдено"
	msgBusinessNotFound = "бизнес не найден"
	msgInvalidID        = "некорректный ID бронирования"
)

type Handler struct {
	exporter CalendarExporter
	logger   Logger
}

func NewHandler(exporter CalendarExporter, logger Logger) *Handler {
	return &Handler{
		exporter: exporter,
		logger:   logger,
	}
}

// Handle GET /api/v1/businesses/{businessType}/reservations/{reservationId}/calendar.ics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	businessType := vars["businessType"]
	reservationID := vars["reservationId"]

	file, err := h.exporter.ExportICS(r.Context(), businessType, reservationID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{id}/calendar.ics - Reservation not found: id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidID)

		default:
			h.logger.Error("GET /reservations/{id}/calendar.ics - Failed to export: id=%s, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondFile(w, contentTypeCalendar, file.Filename, file.Content)
}
