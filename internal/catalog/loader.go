package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"velour/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading catalogue files from disk.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalogue loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a catalogue file and returns its products. The file is
// expected to contain a JSON array of products.
func (l *fileLoader) Load(ctx context.Context, path string) ([]model.Product, error) {
	l.logger.Info().Str("file", path).Msg("loading catalogue file")

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open catalogue file")
		return nil, fmt.Errorf("failed to open catalogue file %s: %w", path, err)
	}
	defer file.Close()

	products, err := decodeProducts(ctx, file, l.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to decode catalogue file %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("products_loaded", len(products)).
		Msg("catalogue file loaded successfully")

	return products, nil
}

// decodeProducts decodes a JSON product array, dropping entries that are
// unusable (missing ID or non-positive price) with a warning rather than
// failing the whole load.
func decodeProducts(ctx context.Context, r io.Reader, logger zerolog.Logger) ([]model.Product, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var raw []model.Product
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid catalogue JSON: %w", err)
	}

	products := make([]model.Product, 0, len(raw))
	for _, p := range raw {
		if p.ID == "" || p.Name == "" || p.Price <= 0 {
			logger.Warn().
				Str("product_id", p.ID).
				Str("name", p.Name).
				Float64("price", p.Price).
				Msg("skipping malformed catalogue entry")
			continue
		}
		if p.OriginalPrice != nil && *p.OriginalPrice <= p.Price {
			logger.Warn().
				Str("product_id", p.ID).
				Float64("price", p.Price).
				Float64("original_price", *p.OriginalPrice).
				Msg("dropping original price that does not exceed price")
			p.OriginalPrice = nil
		}
		products = append(products, p)
	}

	return products, nil
}
