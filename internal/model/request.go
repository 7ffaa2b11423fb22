package model

import "meal-pickup/internal/validate"

// OrderRequest represents the request payload for placing an order.
type OrderRequest struct {
	CustomerName string          `json:"customerName"`
	Phone        string          `json:"phone"`
	Quantity     validate.Number `json:"quantity"`
	PickupDate   string          `json:"pickupDate"`
	Note         string          `json:"note"`
}

// OrderUpdateRequest carries admin changes to an order's status and payment flag.
type OrderUpdateRequest struct {
	Status string                `json:"status"`
	Paid   validate.OptionalBool `json:"paid"`
}

// BusinessRequest replaces the shop profile.
type BusinessRequest struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	CollectionNote string `json:"collectionNote"`
}

// TodaysMealRequest replaces today's meal.
type TodaysMealRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       validate.Number `json:"price"`
	Available   validate.Flag   `json:"available"`
	Date        string          `json:"date"`
	Image       string          `json:"image"`
}

// MenuItemRequest creates or replaces a menu item.
type MenuItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       validate.Number `json:"price"`
	Image       string          `json:"image"`
	Available   validate.Flag   `json:"available"`
}

// LoginRequest carries the admin PIN.
type LoginRequest struct {
	PIN string `json:"pin"`
}
