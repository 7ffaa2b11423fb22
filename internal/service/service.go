package service

import (
	"context"

	"meal-pickup/internal/model"
)

// CatalogService manages the shop profile, today's meal, and the standing menu.
type CatalogService interface {
	// Public returns the customer-facing view: business, today's meal, and available menu items.
	Public(ctx context.Context) (*model.PublicView, error)

	// Document returns the whole shop document for the admin panel.
	Document(ctx context.Context) (*model.Document, error)

	// UpdateBusiness replaces the shop profile.
	UpdateBusiness(ctx context.Context, req *model.BusinessRequest) (*model.Business, error)

	// UpdateTodaysMeal replaces today's meal.
	UpdateTodaysMeal(ctx context.Context, req *model.TodaysMealRequest) (*model.TodaysMeal, error)

	// CreateMenuItem appends a new menu item.
	CreateMenuItem(ctx context.Context, req *model.MenuItemRequest) (*model.MenuItem, error)

	// UpdateMenuItem replaces every mutable field of an existing menu item.
	UpdateMenuItem(ctx context.Context, id string, req *model.MenuItemRequest) (*model.MenuItem, error)

	// DeleteMenuItem removes a menu item.
	DeleteMenuItem(ctx context.Context, id string) error
}

// OrderService defines operations for order management.
type OrderService interface {
	// CreateOrder places an order for today's meal.
	CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error)

	// UpdateOrder applies status and payment changes to an existing order.
	UpdateOrder(ctx context.Context, id string, req *model.OrderUpdateRequest) (*model.Order, error)
}

// AuthService checks the shared admin PIN.
type AuthService interface {
	// Login verifies a PIN submitted through the login form.
	Login(pin string) error

	// Authorize verifies the PIN carried by an admin request.
	Authorize(pin string) error
}
