package line_webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationShowcase/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
	"github.com/m04kA/SMC-ReservationShowcase/internal/integrations/line"
	usecase "github.com/m04kA/SMC-ReservationShowcase/internal/usecase/line_webhook"
)

// Тексты ошибок совпадают с теми, что ожидает консоль LINE
const (
	msgInvalidBusinessType = "Invalid business type"
	msgNotConfigured       = "LINE not configured"
	msgNoSignature         = "No signature"
	msgInvalidSignature    = "Invalid signature"
	msgInternal            = "Internal error"

	statusReady = "LINE webhook endpoint ready"

	maxBodySize = 1 << 20
)

type Handler struct {
	useCase WebhookUseCase
	logger  Logger
}

func NewHandler(useCase WebhookUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/line/{businessType}/webhook
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessType := mux.Vars(r)["businessType"]

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		h.logger.Error("POST /line/{type}/webhook - Failed to read body: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &usecase.Request{
		BusinessType: domain.BusinessType(businessType),
		Body:         body,
		Signature:    r.Header.Get(line.SignatureHeader),
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBusinessNotFound):
			handlers.RespondBadRequest(w, msgInvalidBusinessType)

		case errors.Is(err, usecase.ErrNotConfigured):
			h.logger.Error("POST /line/{type}/webhook - LINE not configured: business=%s", businessType)
			handlers.RespondError(w, http.StatusInternalServerError, msgNotConfigured)

		case errors.Is(err, usecase.ErrMissingSignature):
			h.logger.Warn("POST /line/{type}/webhook - Missing signature: business=%s", businessType)
			handlers.RespondBadRequest(w, msgNoSignature)

		case errors.Is(err, usecase.ErrInvalidSignature):
			h.logger.Warn("POST /line/{type}/webhook - Invalid signature: business=%s", businessType)
			handlers.RespondBadRequest(w, msgInvalidSignature)

		default:
			h.logger.Error("POST /line/{type}/webhook - Failed to handle webhook: business=%s, error=%v", businessType, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	h.logger.Info("POST /line/{type}/webhook - Handled: business=%s, events=%d, replied=%d",
		businessType, resp.Events, resp.Replied)
	handlers.RespondJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// HandleStatus GET /api/line/{businessType}/webhook
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, StatusResponse{Status: statusReady})
}
