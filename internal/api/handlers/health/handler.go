package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ReservationShowcase/internal/api/handlers"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	statusOK       = "ok"
	statusDegraded = "degraded"

	pingTimeout = 2 * time.Second
)

// Response состояние сервиса
type Response struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

type Handler struct {
	pinger Pinger
	logger Logger
}

// NewHandler pinger может быть nil, тогда хранилище считается in-memory
func NewHandler(pinger Pinger, logger Logger) *Handler {
	return &Handler{
		pinger: pinger,
		logger: logger,
	}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.pinger == nil {
		handlers.RespondJSON(w, http.StatusOK, Response{Status: statusOK, Storage: StorageMemory})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.pinger.PingContext(ctx); err != nil {
		h.logger.Warn("GET /health - Database ping failed: %v", err)
		handlers.RespondJSON(w, http.StatusServiceUnavailable, Response{Status: statusDegraded, Storage: StoragePostgres})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{Status: statusOK, Storage: StoragePostgres})
}
