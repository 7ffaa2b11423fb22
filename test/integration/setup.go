package integration

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"meal-pickup/internal/config"
	"meal-pickup/internal/database"
	"meal-pickup/internal/handler"
	"meal-pickup/internal/middleware"
	"meal-pickup/internal/repository"
	"meal-pickup/internal/router"
	"meal-pickup/internal/service"
	"meal-pickup/web"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestAdminPIN is the admin PIN the test server is configured with.
const TestAdminPIN = "2468"

// seedPath is the document shipped with the application.
var seedPath = filepath.Join("..", "..", "data", "db.json")

// SeedDocument returns the shipped seed document.
func SeedDocument(t *testing.T) []byte {
	t.Helper()

	data, err := os.ReadFile(seedPath)
	if err != nil {
		t.Fatalf("failed to read seed document: %v", err)
	}
	return data
}

// SetupFileStore copies the seed document into a temp dir and returns a file repository over it.
func SetupFileStore(t *testing.T) repository.DocumentRepository {
	t.Helper()

	path := filepath.Join(t.TempDir(), "db.json")
	if err := os.WriteFile(path, SeedDocument(t), 0o644); err != nil {
		t.Fatalf("failed to write data file: %v", err)
	}
	return repository.NewFileRepository(path, zerolog.Nop())
}

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
}

// SetupTestDB creates a PostgreSQL test container and connection pool with the seed document loaded.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	t.Cleanup(func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := postgresContainer.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}

	dbConfig := config.DatabaseConfig{
		Host:            host,
		Port:            port.Int(),
		User:            "testuser",
		Password:        "testpass",
		Database:        "testdb",
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}

	pool, err := database.NewPool(ctx, dbConfig, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := repository.EnsureDocumentSchema(ctx, pool, SeedDocument(t)); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
	}
}

// setupTestServer wires the full application stack over repo the way cmd/api does.
func setupTestServer(t *testing.T, repo repository.DocumentRepository) http.Handler {
	t.Helper()

	logger := zerolog.Nop()

	queue := repository.NewWriteQueue(repo, logger)
	t.Cleanup(queue.Close)

	// Initialize services
	authService := service.NewAuthService(TestAdminPIN, logger)
	catalogService := service.NewCatalogService(repo, queue, logger)
	orderService := service.NewOrderService(queue, logger)

	assets, err := web.FS("")
	if err != nil {
		t.Fatalf("failed to open embedded assets: %v", err)
	}

	// Create router
	return router.New(
		handler.NewPublicHandler(catalogService, logger),
		handler.NewOrderHandler(orderService, logger),
		handler.NewAdminHandler(authService, catalogService, orderService, logger),
		router.Options{
			Auth:           authService,
			Limiter:        middleware.NewRateLimiter(1000, 1000, logger),
			Static:         web.Handler(assets),
			MetricsEnabled: true,
		},
		logger,
	)
}
