package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"meal-pickup/internal/model"
	"meal-pickup/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 17, 30, 0, 0, time.UTC)

// testStore is a file-backed document repository and write queue rooted in a temp dir.
type testStore struct {
	repo  repository.DocumentRepository
	queue *repository.WriteQueue
	path  string
}

func newTestStore(t *testing.T, doc *model.Document) *testStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "db.json")
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	repo := repository.NewFileRepository(path, zerolog.Nop())
	queue := repository.NewWriteQueue(repo, zerolog.Nop())
	t.Cleanup(queue.Close)

	return &testStore{repo: repo, queue: queue, path: path}
}

func (s *testStore) load(t *testing.T) *model.Document {
	t.Helper()
	doc, err := s.repo.Load(context.Background())
	require.NoError(t, err)
	return doc
}

func seedDocument() *model.Document {
	return &model.Document{
		Business: model.Business{
			Name:           "Dil Panjab",
			Address:        "1 High Street",
			Phone:          "01234 567890",
			CollectionNote: "Collect from the side door",
		},
		TodaysMeal: model.TodaysMeal{
			Name:        "Rajma Chawal",
			Description: "Kidney bean curry with rice",
			Price:       8.5,
			Available:   true,
			Date:        "2024-06-01",
			Image:       "/images/today-curry.svg",
		},
		Menu: []model.MenuItem{
			{ID: "m-samosa", Name: "Samosa", Price: 1.5, Available: true},
			{ID: "m-lassi", Name: "Mango Lassi", Price: 2.75, Available: false},
		},
		Orders: []model.Order{},
	}
}
