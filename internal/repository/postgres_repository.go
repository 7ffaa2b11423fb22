package repository

import (
	"context"
	"errors"
	"fmt"

	"meal-pickup/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// DefaultDocumentKey is the row holding the shop document.
const DefaultDocumentKey = "default"

// postgresRepository implements DocumentRepository by keeping the whole document in one JSONB row.
type postgresRepository struct {
	pool   *pgxpool.Pool
	key    string
	logger zerolog.Logger
}

// NewPostgresRepository creates a PostgreSQL-backed document repository.
func NewPostgresRepository(pool *pgxpool.Pool, logger zerolog.Logger) DocumentRepository {
	return &postgresRepository{
		pool:   pool,
		key:    DefaultDocumentKey,
		logger: logger.With().Str("repository", "postgres").Logger(),
	}
}

// EnsureDocumentSchema creates the documents table and inserts seed as the initial document
// when no row exists yet. An existing document is never overwritten.
func EnsureDocumentSchema(ctx context.Context, pool *pgxpool.Pool, seed []byte) error {
	schema := `
		CREATE TABLE IF NOT EXISTS documents (
			id VARCHAR(50) PRIMARY KEY,
			body JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create documents table: %w", err)
	}

	doc, err := decodeDocument(seed)
	if err != nil {
		return fmt.Errorf("invalid seed document: %w", err)
	}
	body, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	insert := `
		INSERT INTO documents (id, body)
		VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING
	`
	if _, err := pool.Exec(ctx, insert, DefaultDocumentKey, body); err != nil {
		return fmt.Errorf("failed to seed document: %w", err)
	}

	return nil
}

// Load retrieves and decodes the document row.
func (r *postgresRepository) Load(ctx context.Context) (*model.Document, error) {
	query := `
		SELECT body
		FROM documents
		WHERE id = $1
	`

	var body []byte
	err := r.pool.QueryRow(ctx, query, r.key).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Error().Str("key", r.key).Msg("document row missing")
			return nil, model.NewStorageError("Unable to load app data", fmt.Errorf("document %q not initialised", r.key))
		}
		r.logger.Error().Err(err).Str("key", r.key).Msg("failed to query document")
		return nil, model.NewStorageError("Unable to load app data", err)
	}

	doc, err := decodeDocument(body)
	if err != nil {
		r.logger.Error().Err(err).Str("key", r.key).Msg("failed to decode document")
		return nil, model.NewStorageError("Unable to load app data", err)
	}

	return doc, nil
}

// Persist upserts the document row in a single statement.
func (r *postgresRepository) Persist(ctx context.Context, doc *model.Document) error {
	body, err := encodeDocument(doc)
	if err != nil {
		return model.NewStorageError("Unable to save app data", err)
	}

	query := `
		INSERT INTO documents (id, body, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE
		SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at
	`

	if _, err := r.pool.Exec(ctx, query, r.key, body); err != nil {
		r.logger.Error().Err(err).Str("key", r.key).Msg("failed to persist document")
		return model.NewStorageError("Unable to save app data", err)
	}

	r.logger.Debug().Str("key", r.key).Int("bytes", len(body)).Msg("document persisted")

	return nil
}
