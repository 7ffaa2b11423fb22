package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"meal-pickup/internal/seed"

	"github.com/rs/zerolog"
)

// ResolveDataPath picks the file the document lives in. The primary file is used when it can be
// rewritten in place; otherwise the fallback file is used, seeded from the canonical copy on first use.
// An error means no writable location exists and the process cannot serve writes.
func ResolveDataPath(ctx context.Context, primary, fallback string, loader seed.Loader, logger zerolog.Logger) (string, error) {
	err := checkWritable(primary)
	if err == nil {
		logger.Info().Str("path", primary).Msg("using primary data file")
		return primary, nil
	}
	logger.Warn().
		Err(err).
		Str("path", primary).
		Str("fallback", fallback).
		Msg("primary data file is not writable, using fallback location")

	if err := os.MkdirAll(filepath.Dir(fallback), 0o755); err != nil {
		return "", fmt.Errorf("failed to create fallback directory: %w", err)
	}

	if _, err := os.Stat(fallback); errors.Is(err, fs.ErrNotExist) {
		data, err := loader.Load(ctx, primary)
		if err != nil {
			return "", fmt.Errorf("failed to load seed document: %w", err)
		}
		if !json.Valid(data) {
			return "", fmt.Errorf("seed document is not valid JSON")
		}
		if err := writeFileAtomic(fallback, data); err != nil {
			return "", fmt.Errorf("failed to seed fallback data file: %w", err)
		}
		logger.Info().Str("path", fallback).Msg("fallback data file seeded")
	} else if err != nil {
		return "", fmt.Errorf("failed to stat fallback data file: %w", err)
	}

	if err := checkWritable(fallback); err != nil {
		return "", fmt.Errorf("fallback data file is not writable: %w", err)
	}

	return fallback, nil
}

// checkWritable reports whether path exists, can be opened for writing, and can be replaced
// through a temp file in its directory.
func checkWritable(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	f.Close()

	probe, err := os.CreateTemp(filepath.Dir(path), ".write-probe-*")
	if err != nil {
		return err
	}
	name := probe.Name()
	probe.Close()
	return os.Remove(name)
}
