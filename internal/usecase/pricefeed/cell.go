package pricefeed

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/zakatflow-backend/internal/domain"
)

// Default per-gram reference prices used until a live quote arrives
var (
	DefaultGoldPerGram   = decimal.NewFromInt(66)
	DefaultSilverPerGram = decimal.RequireFromString("0.80")
)

// PriceCell holds the last known price hint per metal.
// Writes replace the whole hint (last write wins) and reads never wait on a fetch.
type PriceCell struct {
	mu    sync.RWMutex
	hints map[domain.Metal]domain.PriceHint
}

// NewPriceCell creates a cell seeded with the given default prices
func NewPriceCell(goldPerGram, silverPerGram decimal.Decimal) *PriceCell {
	now := time.Now().UTC()
	return &PriceCell{
		hints: map[domain.Metal]domain.PriceHint{
			domain.MetalGold: {
				Metal:        domain.MetalGold,
				PricePerGram: goldPerGram,
				Source:       domain.PriceSourceDefault,
				ObservedAt:   now,
			},
			domain.MetalSilver: {
				Metal:        domain.MetalSilver,
				PricePerGram: silverPerGram,
				Source:       domain.PriceSourceDefault,
				ObservedAt:   now,
			},
		},
	}
}

// Hint returns the current hint for a metal
func (c *PriceCell) Hint(metal domain.Metal) domain.PriceHint {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hints[metal]
}

// Hints returns gold then silver
func (c *PriceCell) Hints() []domain.PriceHint {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return []domain.PriceHint{c.hints[domain.MetalGold], c.hints[domain.MetalSilver]}
}

// Set overwrites the hint of hint.Metal
func (c *PriceCell) Set(hint domain.PriceHint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hints[hint.Metal] = hint
}
