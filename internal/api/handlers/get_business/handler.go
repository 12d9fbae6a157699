package get_business

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationShowcase/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
)

const msgBusinessNotFound = "бизнес не найден"

type Handler struct {
	catalog Catalog
	logger  Logger
}

func NewHandler(catalog Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessType}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessType := mux.Vars(r)["businessType"]

	cfg, err := h.catalog.Get(domain.BusinessType(businessType))
	if err != nil {
		h.logger.Warn("GET /businesses/{type} - Business not found: %s", businessType)
		handlers.RespondNotFound(w, msgBusinessNotFound)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainBusiness(cfg))
}
