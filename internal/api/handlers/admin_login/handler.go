package admin_login

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationShowcase/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationShowcase/internal/service/auth"
	"github.com/m04kA/SMC-ReservationShowcase/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверный логин или пароль"
	msgBusinessNotFound   = "бизнес не найден"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/businesses/{businessType}/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessType := mux.Vars(r)["businessType"]

	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{type}/admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Login(businessType, &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, auth.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgBusinessNotFound)

		default:
			h.logger.Error("POST /businesses/{type}/admin/login - Failed to login: business=%s, error=%v", businessType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses/{type}/admin/login - Admin logged in: business=%s", businessType)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
