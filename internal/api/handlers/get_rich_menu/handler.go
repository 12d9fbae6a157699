package get_rich_menu

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationShowcase/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
	"github.com/m04kA/SMC-ReservationShowcase/internal/usecase/line_webhook"
)

const msgInvalidBusinessType = "Invalid business type"

type Handler struct {
	provider RichMenuProvider
}

func NewHandler(provider RichMenuProvider) *Handler {
	return &Handler{provider: provider}
}

// Handle GET /api/line/{businessType}/richmenu
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessType := domain.BusinessType(mux.Vars(r)["businessType"])

	menu, err := h.provider.RichMenu(businessType)
	if err != nil {
		if errors.Is(err, line_webhook.ErrBusinessNotFound) {
			handlers.RespondBadRequest(w, msgInvalidBusinessType)
			return
		}
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, menu)
}
