package model

import (
	"time"
)

// Fixed order terms offered by the shop.
const (
	DefaultPickupTime = "7:00 PM"
	PaymentMode       = "Pay on collection"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusOrdered   OrderStatus = "ordered"
	StatusCollected OrderStatus = "collected"
	StatusCancelled OrderStatus = "cancelled"
)

// ParseOrderStatus reports whether s names a known status.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch status := OrderStatus(s); status {
	case StatusOrdered, StatusCollected, StatusCancelled:
		return status, true
	default:
		return "", false
	}
}

// Order represents a customer order for today's meal.
// MealName and UnitPrice are a snapshot taken when the order was placed.
type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customerName"`
	Phone        string      `json:"phone"`
	Quantity     int         `json:"quantity"`
	PickupDate   string      `json:"pickupDate"`
	PickupTime   string      `json:"pickupTime"`
	Note         string      `json:"note"`
	MealName     string      `json:"mealName"`
	UnitPrice    float64     `json:"unitPrice"`
	Total        float64     `json:"total"`
	Status       OrderStatus `json:"status"`
	Paid         bool        `json:"paid"`
	PaymentMode  string      `json:"paymentMode"`
	CreatedAt    time.Time   `json:"createdAt"`
	CollectedAt  *time.Time  `json:"collectedAt"`
	PaidAt       *time.Time  `json:"paidAt"`
}

// ApplyStatus moves the order to status. Unknown values leave the order untouched and
// return false. collectedAt is stamped only on the first move into collected.
func (o *Order) ApplyStatus(status string, now time.Time) bool {
	next, ok := ParseOrderStatus(status)
	if !ok {
		return false
	}

	o.Status = next
	if next == StatusCollected && o.CollectedAt == nil {
		stamp := now
		o.CollectedAt = &stamp
	}
	return true
}

// SetPaid records the payment flag. paidAt is stamped once and kept across later toggles.
func (o *Order) SetPaid(paid bool, now time.Time) {
	o.Paid = paid
	if paid && o.PaidAt == nil {
		stamp := now
		o.PaidAt = &stamp
	}
}
