package repository

import (
	"context"

	"meal-pickup/internal/model"
)

// DocumentRepository reads and writes the whole shop document. There are no partial reads or writes.
type DocumentRepository interface {
	// Load returns a fresh copy of the persisted document.
	// Fails with a storage error when the medium is unreadable or the content is malformed.
	Load(ctx context.Context) (*model.Document, error)

	// Persist replaces the persisted document with doc.
	Persist(ctx context.Context, doc *model.Document) error
}
