// Package seed populates an empty product catalogue at startup from a JSON
// file, read either from the local file system or from S3.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"stock-ledger/internal/model"
	"stock-ledger/internal/service"

	"github.com/rs/zerolog"
)

// Loader reads a product catalogue from a source identified by key
// (a file path or an object key, depending on the implementation).
type Loader interface {
	Load(ctx context.Context, key string) ([]model.ProductCreate, error)
}

// Seeder inserts catalogue entries through the product service so the same
// business rules apply to seeded products as to created ones.
type Seeder struct {
	products service.ProductService
	loader   Loader
	logger   zerolog.Logger
}

// NewSeeder creates a new catalogue seeder.
func NewSeeder(products service.ProductService, loader Loader, logger zerolog.Logger) *Seeder {
	return &Seeder{
		products: products,
		loader:   loader,
		logger:   logger.With().Str("component", "seeder").Logger(),
	}
}

// Run loads the catalogue and inserts its entries. Seeding is skipped when
// the store already holds products, so restarts do not duplicate the
// catalogue. Entries that violate product invariants are skipped with a
// warning rather than aborting the whole seed.
func (s *Seeder) Run(ctx context.Context, key string) error {
	existing, err := s.products.GetAll(ctx, 0, 1)
	if err != nil {
		return fmt.Errorf("failed to check existing catalogue: %w", err)
	}

	if len(existing) > 0 {
		s.logger.Info().Msg("catalogue already populated, skipping seed")
		return nil
	}

	entries, err := s.loader.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to load seed catalogue: %w", err)
	}

	seeded := 0
	for i := range entries {
		if _, err := s.products.Create(ctx, &entries[i]); err != nil {
			s.logger.Warn().
				Err(err).
				Str("name", entries[i].Name).
				Msg("skipping invalid seed entry")
			continue
		}
		seeded++
	}

	s.logger.Info().
		Int("entries", len(entries)).
		Int("seeded", seeded).
		Msg("catalogue seeded")

	return nil
}

// decodeCatalogue parses a JSON array of catalogue entries.
func decodeCatalogue(r io.Reader) ([]model.ProductCreate, error) {
	var entries []model.ProductCreate
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode seed catalogue: %w", err)
	}
	return entries, nil
}
