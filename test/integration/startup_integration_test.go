package integration

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"meal-pickup/internal/repository"
	"meal-pickup/internal/seed"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A read-only primary data file must not stop the shop from taking orders: the fallback copy is
// seeded from it and serves all reads and writes.
func TestStartup_ReadOnlyPrimaryUsesSeededFallback(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}

	ctx := context.Background()
	logger := zerolog.Nop()

	primaryDir := t.TempDir()
	primary := filepath.Join(primaryDir, "db.json")
	require.NoError(t, os.WriteFile(primary, SeedDocument(t), 0o444))
	require.NoError(t, os.Chmod(primaryDir, 0o555))
	t.Cleanup(func() { os.Chmod(primaryDir, 0o755) })

	fallback := filepath.Join(t.TempDir(), "nested", "db.json")

	path, err := repository.ResolveDataPath(ctx, primary, fallback, seed.NewFileLoader(logger), logger)
	require.NoError(t, err)
	assert.Equal(t, fallback, path)

	server := setupTestServer(t, repository.NewFileRepository(path, logger))
	setMealAvailable(t, server, true, 8.5)

	w := doJSON(t, server, http.MethodPost, "/api/orders", orderPayload("Harpreet"), false)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	assert.Len(t, adminDocument(t, server).Orders, 1)

	untouched, err := os.ReadFile(primary)
	require.NoError(t, err)
	assert.Equal(t, SeedDocument(t), untouched, "primary file is untouched")
}
