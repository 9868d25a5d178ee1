package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceSource tells where a price hint came from
type PriceSource string

const (
	PriceSourceDefault PriceSource = "default"
	PriceSourceLive    PriceSource = "live"
)

// PriceHint is the last known full-fineness price per gram of a metal in the reference currency.
// It is a best-effort suggestion, never authoritative.
type PriceHint struct {
	Metal        Metal
	PricePerGram decimal.Decimal
	Source       PriceSource
	ObservedAt   time.Time
}
