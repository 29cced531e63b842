package seed

import (
	"context"
	"fmt"
	"os"

	"stock-ledger/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading catalogue files from disk.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalogue loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-file-loader").Logger(),
	}
}

// Load reads a JSON catalogue file from the local file system.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]model.ProductCreate, error) {
	l.logger.Info().Str("file", filePath).Msg("loading seed catalogue")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open seed catalogue")
		return nil, fmt.Errorf("failed to open seed catalogue %s: %w", filePath, err)
	}
	defer file.Close()

	entries, err := decodeCatalogue(file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to decode seed catalogue")
		return nil, fmt.Errorf("invalid seed catalogue %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("entries", len(entries)).
		Msg("seed catalogue loaded")

	return entries, nil
}
