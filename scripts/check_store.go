//go:build ignore

// check_store connects to the PostgreSQL store configured in the environment and prints a summary
// of the shop document. Run with: go run scripts/check_store.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"meal-pickup/internal/config"
	"meal-pickup/internal/model"
	"meal-pickup/internal/repository"

	"github.com/jackc/pgx/v5"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.Database.ConnectionString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	var dbName string
	err = conn.QueryRow(ctx, "SELECT current_database()").Scan(&dbName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "QueryRow failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully connected to database: %s\n", dbName)

	var (
		body      []byte
		updatedAt time.Time
	)
	err = conn.QueryRow(ctx,
		"SELECT body, updated_at FROM documents WHERE id = $1",
		repository.DefaultDocumentKey,
	).Scan(&body, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		fmt.Println("No shop document stored yet; it is created on first server start.")
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to read shop document: %v\n", err)
		os.Exit(1)
	}

	var doc model.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "Stored document is not valid: %v\n", err)
		os.Exit(1)
	}

	open := 0
	for _, order := range doc.Orders {
		if order.Status == model.StatusOrdered {
			open++
		}
	}

	fmt.Printf("\nShop:          %s\n", doc.Business.Name)
	fmt.Printf("Today's meal:  %s (%.2f, available=%t, date=%s)\n",
		doc.TodaysMeal.Name, doc.TodaysMeal.Price, doc.TodaysMeal.Available, doc.TodaysMeal.Date)
	fmt.Printf("Menu items:    %d (%d available)\n", len(doc.Menu), len(doc.AvailableMenu()))
	fmt.Printf("Orders:        %d (%d awaiting collection)\n", len(doc.Orders), open)
	fmt.Printf("Last updated:  %s\n", updatedAt.Format(time.RFC3339))
}
