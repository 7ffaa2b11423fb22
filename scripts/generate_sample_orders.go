//go:build ignore

// generate_sample_orders writes a copy of the seed document filled with sample orders, for trying
// the admin panel locally. Run with: go run scripts/generate_sample_orders.go
// then start the server with DATA_FILE=data/sample-db.json.
package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"meal-pickup/internal/model"
	"meal-pickup/internal/validate"

	"github.com/google/uuid"
)

func main() {
	source := filepath.Join("data", "db.json")
	target := filepath.Join("data", "sample-db.json")

	data, err := os.ReadFile(source)
	if err != nil {
		log.Fatalf("Failed to read seed document: %v", err)
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Fatalf("Failed to parse seed document: %v", err)
	}

	customers := []struct {
		name     string
		phone    string
		quantity int
		status   model.OrderStatus
		paid     bool
	}{
		{"Harpreet Kaur", "07700 900101", 2, model.StatusOrdered, false},
		{"Aman Singh", "07700 900102", 1, model.StatusOrdered, false},
		{"Priya Sharma", "07700 900103", 4, model.StatusCollected, true},
		{"Jaspreet Gill", "07700 900104", 3, model.StatusCancelled, false},
		{"Ravi Patel", "07700 900105", 1, model.StatusCollected, true},
	}

	now := time.Now().UTC()
	today := now.Format(time.DateOnly)
	unitPrice, _ := validate.PriceValue(doc.TodaysMeal.Price)

	doc.Orders = doc.Orders[:0]
	for i, c := range customers {
		created := now.Add(-time.Duration(len(customers)-i) * 15 * time.Minute)
		order := model.Order{
			ID:           uuid.NewString(),
			CustomerName: c.name,
			Phone:        c.phone,
			Quantity:     c.quantity,
			PickupDate:   today,
			PickupTime:   model.DefaultPickupTime,
			MealName:     doc.TodaysMeal.Name,
			UnitPrice:    unitPrice,
			Total:        validate.Round2(float64(c.quantity) * unitPrice),
			Status:       model.StatusOrdered,
			PaymentMode:  model.PaymentMode,
			CreatedAt:    created,
		}
		order.ApplyStatus(string(c.status), created.Add(5*time.Minute))
		order.SetPaid(c.paid, created.Add(5*time.Minute))

		// Most recent first.
		doc.Orders = append([]model.Order{order}, doc.Orders...)
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode document: %v", err)
	}

	if err := os.WriteFile(target, append(out, '\n'), 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", target, err)
	}

	log.Printf("Wrote %d sample orders to %s", len(doc.Orders), target)
}
