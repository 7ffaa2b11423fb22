// Package seed fetches the canonical shop document used to initialise a fresh store.
package seed

import (
	"context"
)

// Loader retrieves the raw canonical document.
type Loader interface {
	// Load returns the document bytes stored under key (a file path or an object key).
	Load(ctx context.Context, key string) ([]byte, error)
}
