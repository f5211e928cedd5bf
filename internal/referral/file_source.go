package referral

import (
	"encoding/json"
	"fmt"
	"os"

	"velour/internal/model"

	"github.com/rs/zerolog"
)

// NewFileSource loads a session-to-discounts table from a JSON file at
// startup. The file holds an object mapping session ids to discount
// arrays. The table is read-only afterwards, so lookups need no locking.
func NewFileSource(path string, logger zerolog.Logger) (Source, error) {
	logger = logger.With().Str("component", "referral-source").Logger()

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Error().Err(err).Str("file", path).Msg("failed to read referral discount file")
		return nil, fmt.Errorf("failed to read referral discount file %s: %w", path, err)
	}

	var bySession map[string][]model.ReferralDiscount
	if err := json.Unmarshal(raw, &bySession); err != nil {
		logger.Error().Err(err).Str("file", path).Msg("invalid referral discount file")
		return nil, fmt.Errorf("invalid referral discount file %s: %w", path, err)
	}

	total := 0
	for _, discounts := range bySession {
		total += len(discounts)
	}

	logger.Info().
		Str("file", path).
		Int("sessions", len(bySession)).
		Int("discounts", total).
		Msg("referral discount file loaded")

	return NewStaticSource(bySession), nil
}
