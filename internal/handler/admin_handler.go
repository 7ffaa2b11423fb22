package handler

import (
	"net/http"

	"meal-pickup/internal/model"
	"meal-pickup/internal/service"

	"github.com/rs/zerolog"
)

// LoginResponse acknowledges a valid admin PIN.
type LoginResponse struct {
	OK bool `json:"ok"`
}

// BusinessResponse is returned after the shop profile is updated.
type BusinessResponse struct {
	Message  string          `json:"message"`
	Business *model.Business `json:"business"`
}

// TodaysMealResponse is returned after today's meal is updated.
type TodaysMealResponse struct {
	Message    string            `json:"message"`
	TodaysMeal *model.TodaysMeal `json:"todaysMeal"`
}

// MenuItemResponse is returned after a menu item is created or updated.
type MenuItemResponse struct {
	Message string          `json:"message"`
	Item    *model.MenuItem `json:"item"`
}

// AdminHandler handles the PIN-gated admin panel requests.
type AdminHandler struct {
	auth    service.AuthService
	catalog service.CatalogService
	orders  service.OrderService
	logger  zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(
	auth service.AuthService,
	catalog service.CatalogService,
	orders service.OrderService,
	logger zerolog.Logger,
) *AdminHandler {
	return &AdminHandler{
		auth:    auth,
		catalog: catalog,
		orders:  orders,
		logger:  logger.With().Str("handler", "admin").Logger(),
	}
}

// Login handles POST /api/admin/login requests.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		// A malformed body carries no usable PIN.
		req = model.LoginRequest{}
	}

	if err := h.auth.Login(req.PIN); err != nil {
		writeServiceError(w, err, "Invalid admin PIN", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{OK: true})
}

// Data handles GET /api/admin/data requests.
func (h *AdminHandler) Data(w http.ResponseWriter, r *http.Request) {
	doc, err := h.catalog.Document(r.Context())
	if err != nil {
		writeServiceError(w, err, "Unable to load admin data", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// UpdateBusiness handles PUT /api/admin/business requests.
func (h *AdminHandler) UpdateBusiness(w http.ResponseWriter, r *http.Request) {
	var req model.BusinessRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	business, err := h.catalog.UpdateBusiness(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "Unable to update business info", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, BusinessResponse{Message: "Business info updated", Business: business})
}

// UpdateTodaysMeal handles PUT /api/admin/today requests.
func (h *AdminHandler) UpdateTodaysMeal(w http.ResponseWriter, r *http.Request) {
	var req model.TodaysMealRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	meal, err := h.catalog.UpdateTodaysMeal(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "Unable to update today's meal", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, TodaysMealResponse{Message: "Today's meal updated", TodaysMeal: meal})
}

// CreateMenuItem handles POST /api/admin/menu requests.
func (h *AdminHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req model.MenuItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	item, err := h.catalog.CreateMenuItem(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "Unable to add menu item", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, MenuItemResponse{Message: "Menu item added", Item: item})
}

// UpdateMenuItem handles PUT /api/admin/menu/{id} requests.
func (h *AdminHandler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req model.MenuItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	item, err := h.catalog.UpdateMenuItem(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		writeServiceError(w, err, "Unable to update menu item", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, MenuItemResponse{Message: "Menu item updated", Item: item})
}

// DeleteMenuItem handles DELETE /api/admin/menu/{id} requests.
func (h *AdminHandler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteMenuItem(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err, "Unable to delete menu item", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Menu item deleted"})
}

// UpdateOrder handles PATCH /api/admin/orders/{id} requests.
func (h *AdminHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	var req model.OrderUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	order, err := h.orders.UpdateOrder(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		writeServiceError(w, err, "Unable to update order", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, OrderResponse{Message: "Order updated", Order: order})
}
