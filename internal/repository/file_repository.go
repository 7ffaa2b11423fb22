package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"meal-pickup/internal/model"

	"github.com/rs/zerolog"
)

// fileRepository implements DocumentRepository on a single JSON file.
type fileRepository struct {
	path   string
	logger zerolog.Logger
}

// NewFileRepository creates a JSON-file backed document repository.
func NewFileRepository(path string, logger zerolog.Logger) DocumentRepository {
	return &fileRepository{
		path:   path,
		logger: logger.With().Str("repository", "file").Str("path", path).Logger(),
	}
}

// Load reads and decodes the whole file.
func (r *fileRepository) Load(ctx context.Context) (*model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to read document")
		return nil, model.NewStorageError("Unable to load app data", err)
	}

	doc, err := decodeDocument(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to decode document")
		return nil, model.NewStorageError("Unable to load app data", err)
	}

	return doc, nil
}

// Persist writes doc to a temp file next to the target and renames it into place,
// so readers never observe a half-written document.
func (r *fileRepository) Persist(ctx context.Context, doc *model.Document) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return model.NewStorageError("Unable to save app data", err)
	}

	if err := writeFileAtomic(r.path, data); err != nil {
		r.logger.Error().Err(err).Msg("failed to write document")
		return model.NewStorageError("Unable to save app data", err)
	}

	r.logger.Debug().Int("bytes", len(data)).Msg("document persisted")

	return nil
}

func decodeDocument(data []byte) (*model.Document, error) {
	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("malformed document: %w", err)
	}
	doc.Normalize()
	return &doc, nil
}

func encodeDocument(doc *model.Document) ([]byte, error) {
	doc.Normalize()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return data, nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set file mode: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}
