package handler

import (
	"net/http"

	"meal-pickup/internal/service"

	"github.com/rs/zerolog"
)

// PublicHandler serves the customer-facing storefront data.
type PublicHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewPublicHandler creates a new public handler.
func NewPublicHandler(service service.CatalogService, logger zerolog.Logger) *PublicHandler {
	return &PublicHandler{
		service: service,
		logger:  logger.With().Str("handler", "public").Logger(),
	}
}

// Get handles GET /api/public requests.
func (h *PublicHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Public(r.Context())
	if err != nil {
		writeServiceError(w, err, "Unable to load app data", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}
