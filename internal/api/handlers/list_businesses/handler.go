package list_businesses

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationShowcase/internal/api/handlers"
)

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

// Handle GET /api/v1/businesses
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list := h.catalog.List()

	resp := ListResponse{Businesses: make([]handlers.BusinessResponse, 0, len(list))}
	for _, cfg := range list {
		resp.Businesses = append(resp.Businesses, *handlers.FromDomainBusiness(cfg))
	}

	h.logger.Info("GET /businesses - Returned %d businesses", len(resp.Businesses))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
