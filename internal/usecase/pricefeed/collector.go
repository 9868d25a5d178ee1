package pricefeed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/zakatflow-backend/internal/domain"
	"github.com/simaogato/zakatflow-backend/internal/observability"
	"github.com/simaogato/zakatflow-backend/pkg/logger"
	"go.uber.org/zap"
)

// GramsPerTroyOunce converts ounce quotes to per-gram prices
var GramsPerTroyOunce = decimal.RequireFromString("31.1035")

// ErrImplausibleQuote is returned when a quote fits neither the per-gram nor the per-ounce range
var ErrImplausibleQuote = errors.New("implausible price quote")

// Quoter fetches a raw spot quote for a metal in the reference currency.
// The unit of the quote (gram or troy ounce) is not guaranteed.
type Quoter interface {
	Quote(ctx context.Context, metal domain.Metal) (decimal.Decimal, error)
}

// Range is an inclusive plausible band of per-gram prices
type Range struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// Contains reports whether v lies inside the band
func (r Range) Contains(v decimal.Decimal) bool {
	return v.GreaterThanOrEqual(r.Min) && v.LessThanOrEqual(r.Max)
}

// DefaultRanges are the plausible per-gram bands in USD
func DefaultRanges() map[domain.Metal]Range {
	return map[domain.Metal]Range{
		domain.MetalGold:   {Min: decimal.NewFromInt(20), Max: decimal.NewFromInt(300)},
		domain.MetalSilver: {Min: decimal.RequireFromString("0.1"), Max: decimal.NewFromInt(10)},
	}
}

// NormalizeQuote turns a raw quote into a per-gram price.
// A quote inside the band is taken as per-gram; otherwise it is tried as per troy ounce.
func NormalizeQuote(quote decimal.Decimal, band Range) (decimal.Decimal, error) {
	if !quote.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s is not positive", ErrImplausibleQuote, quote)
	}
	if band.Contains(quote) {
		return quote, nil
	}
	perGram := quote.Div(GramsPerTroyOunce)
	if band.Contains(perGram) {
		return perGram, nil
	}
	return decimal.Zero, fmt.Errorf("%w: %s is outside [%s, %s] per gram and per ounce", ErrImplausibleQuote, quote, band.Min, band.Max)
}

// Collector refreshes the PriceCell from a Quoter
type Collector struct {
	Quoter  Quoter
	Cell    *PriceCell
	Ranges  map[domain.Metal]Range
	Logger  *zap.Logger
	Metrics *observability.Metrics
	now     func() time.Time
}

// NewCollector creates a new Collector instance. nil ranges fall back to DefaultRanges.
func NewCollector(quoter Quoter, cell *PriceCell, ranges map[domain.Metal]Range, log *zap.Logger, metrics *observability.Metrics) *Collector {
	if ranges == nil {
		ranges = DefaultRanges()
	}
	return &Collector{
		Quoter:  quoter,
		Cell:    cell,
		Ranges:  ranges,
		Logger:  logger.OrNop(log),
		Metrics: metrics,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Refresh fetches one metal and stores it in the cell.
// On any failure the cell keeps its previous value and the error is returned.
func (c *Collector) Refresh(ctx context.Context, metal domain.Metal) (domain.PriceHint, error) {
	label := strings.ToLower(string(metal))

	quote, err := c.Quoter.Quote(ctx, metal)
	if err != nil {
		c.Metrics.IncrPriceFetch(label, observability.OutcomeError)
		c.Logger.Warn("price fetch failed", zap.String("metal", label), zap.Error(err))
		return domain.PriceHint{}, fmt.Errorf("failed to fetch %s price: %w", label, err)
	}

	band, ok := c.Ranges[metal]
	if !ok {
		return domain.PriceHint{}, fmt.Errorf("no plausible range configured for %s", label)
	}

	perGram, err := NormalizeQuote(quote, band)
	if err != nil {
		c.Metrics.IncrPriceFetch(label, observability.OutcomeRejected)
		c.Logger.Warn("price quote rejected", zap.String("metal", label), zap.String("quote", quote.String()), zap.Error(err))
		return domain.PriceHint{}, err
	}

	hint := domain.PriceHint{
		Metal:        metal,
		PricePerGram: perGram,
		Source:       domain.PriceSourceLive,
		ObservedAt:   c.now(),
	}
	c.Cell.Set(hint)
	c.Metrics.IncrPriceFetch(label, observability.OutcomeSuccess)
	c.Logger.Debug("price hint updated", zap.String("metal", label), zap.String("price_per_gram", perGram.String()))

	return hint, nil
}

// RefreshAll refreshes gold and silver. Failures are logged and swallowed.
func (c *Collector) RefreshAll(ctx context.Context) []domain.PriceHint {
	for _, metal := range []domain.Metal{domain.MetalGold, domain.MetalSilver} {
		_, _ = c.Refresh(ctx, metal)
	}
	return c.Cell.Hints()
}
