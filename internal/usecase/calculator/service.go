package calculator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/zakatflow-backend/internal/domain"
	"github.com/simaogato/zakatflow-backend/internal/observability"
	"github.com/simaogato/zakatflow-backend/internal/usecase/valuation"
	"github.com/simaogato/zakatflow-backend/pkg/logger"
	"go.uber.org/zap"
)

// PriceHints is the read side of the live price cell
type PriceHints interface {
	Hint(metal domain.Metal) domain.PriceHint
}

// NisabQuery is the input of a standalone threshold evaluation
type NisabQuery struct {
	Prices          domain.MetalPrices
	DisplayCurrency domain.CurrencyCode
	UseLivePrices   bool
}

// NisabView is a Nisab snapshot together with its display-currency amounts
type NisabView struct {
	Snapshot                domain.NisabSnapshot
	Status                  domain.ObligationStatus // Indeterminate when no threshold exists, Due otherwise
	DisplayCurrency         domain.CurrencyCode
	GoldThresholdDisplay    decimal.Decimal
	SilverThresholdDisplay  decimal.Decimal
	BindingThresholdDisplay decimal.Decimal
	PricesUsed              domain.MetalPrices
}

// CalculatorService computes Zakat obligations and owns the user's currency preferences
type CalculatorService struct {
	Currencies      *domain.CurrencyTable
	ObligationRepo  domain.ObligationRepository
	PreferencesRepo domain.PreferencesRepository
	Prices          PriceHints // optional
	Logger          *zap.Logger
	Metrics         *observability.Metrics
	now             func() time.Time
}

// NewCalculatorService creates a new CalculatorService instance
func NewCalculatorService(
	currencies *domain.CurrencyTable,
	obligationRepo domain.ObligationRepository,
	preferencesRepo domain.PreferencesRepository,
	prices PriceHints,
	log *zap.Logger,
	metrics *observability.Metrics,
) *CalculatorService {
	return &CalculatorService{
		Currencies:      currencies,
		ObligationRepo:  obligationRepo,
		PreferencesRepo: preferencesRepo,
		Prices:          prices,
		Logger:          logger.OrNop(log),
		Metrics:         metrics,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// Calculate runs one obligation calculation and stores its summary as the last obligation.
// Logic:
//  1. Validate the input; nothing is persisted on failure
//  2. Fill unset metal prices from the price hints when requested
//  3. Convert prices once, value every entry in the reference currency
//  4. Evaluate Nisab and the obligation state
//  5. Convert results to the display currency and persist the summary
func (s *CalculatorService) Calculate(ctx context.Context, input domain.CalculationInput) (*domain.ObligationResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	displayCurrency := s.displayCurrency(input.DisplayCurrency)
	prices := s.resolvePrices(input.Prices, input.UseLivePrices)

	refPrices := valuation.NormalizePrices(s.Currencies, prices)
	nisab := domain.EvaluateNisab(refPrices.GoldPerGram, refPrices.SilverPerGram)
	v := valuation.ComputeNetWealth(s.Currencies, input.Entries, refPrices)
	status, due := domain.EvaluateObligation(v.NetWealth, nisab.BindingThreshold)

	result := &domain.ObligationResult{
		Status:                    status,
		IsDue:                     status == domain.ObligationDue,
		NetWealthReference:        v.NetWealth,
		BindingThresholdReference: nisab.BindingThreshold,
		DueAmountReference:        due,

		DisplayCurrency:         displayCurrency,
		NetWealthDisplay:        s.Currencies.FromReference(v.NetWealth, displayCurrency),
		BindingThresholdDisplay: s.Currencies.FromReference(nisab.BindingThreshold, displayCurrency),
		DueAmountDisplay:        s.Currencies.FromReference(due, displayCurrency),

		BreakdownReference: v.Breakdown,
		BreakdownDisplay:   valuation.ToDisplay(s.Currencies, v.Breakdown, displayCurrency),
		GoldGrams:          v.GoldGrams,
		SilverGrams:        v.SilverGrams,

		Nisab:        nisab,
		PricesUsed:   prices,
		CalculatedAt: s.now(),
	}

	// Without a threshold there is no obligation to reconcile against; keep the previous one
	if status != domain.ObligationIndeterminate {
		last := &domain.LastObligation{
			AmountReference: result.DueAmountReference.Round(2),
			DisplayCurrency: displayCurrency,
			AmountDisplay:   result.DueAmountDisplay.Round(2),
			CalculatedAt:    result.CalculatedAt,
		}
		if err := s.ObligationRepo.SaveLast(ctx, last); err != nil {
			s.Logger.Error("failed to persist last obligation", zap.Error(err))
			return nil, fmt.Errorf("failed to save last obligation: %w", err)
		}
	}

	s.Metrics.IncrCalculation(string(status))
	s.Logger.Info("obligation calculated",
		zap.String("status", string(status)),
		zap.String("net_wealth_reference", v.NetWealth.StringFixed(2)),
		zap.String("due_reference", due.StringFixed(2)),
		zap.String("display_currency", string(displayCurrency)),
	)

	return result, nil
}

// EvaluateNisab computes the thresholds for the live Nisab display. It persists nothing.
func (s *CalculatorService) EvaluateNisab(query NisabQuery) (*NisabView, error) {
	if query.Prices.Gold.PricePerGram.IsNegative() || query.Prices.Silver.PricePerGram.IsNegative() {
		return nil, fmt.Errorf("%w: metal prices cannot be negative", domain.ErrValidation)
	}

	displayCurrency := s.displayCurrency(query.DisplayCurrency)
	prices := s.resolvePrices(query.Prices, query.UseLivePrices)
	refPrices := valuation.NormalizePrices(s.Currencies, prices)
	snapshot := domain.EvaluateNisab(refPrices.GoldPerGram, refPrices.SilverPerGram)

	status := domain.ObligationIndeterminate
	if snapshot.HasThreshold() {
		status = domain.ObligationDue
	}

	return &NisabView{
		Snapshot:                snapshot,
		Status:                  status,
		DisplayCurrency:         displayCurrency,
		GoldThresholdDisplay:    s.Currencies.FromReference(snapshot.GoldThreshold, displayCurrency),
		SilverThresholdDisplay:  s.Currencies.FromReference(snapshot.SilverThreshold, displayCurrency),
		BindingThresholdDisplay: s.Currencies.FromReference(snapshot.BindingThreshold, displayCurrency),
		PricesUsed:              prices,
	}, nil
}

// LastObligation returns the summary of the most recent calculation (domain.ErrNotFound if none)
func (s *CalculatorService) LastObligation(ctx context.Context) (*domain.LastObligation, error) {
	last, err := s.ObligationRepo.GetLast(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load last obligation: %w", err)
	}
	return last, nil
}

// GetPreferences returns the saved currency preferences, or the defaults when none were saved
func (s *CalculatorService) GetPreferences(ctx context.Context) (*domain.CurrencyPreferences, error) {
	prefs, err := s.PreferencesRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			defaults := domain.DefaultCurrencyPreferences()
			return &defaults, nil
		}
		return nil, fmt.Errorf("failed to load currency preferences: %w", err)
	}
	return prefs, nil
}

// SavePreferences overwrites the stored preferences. Every code must be in the currency table.
func (s *CalculatorService) SavePreferences(ctx context.Context, prefs domain.CurrencyPreferences) (*domain.CurrencyPreferences, error) {
	for _, code := range []domain.CurrencyCode{prefs.GoldCurrency, prefs.SilverCurrency, prefs.DisplayCurrency} {
		if !s.Currencies.Contains(code) {
			return nil, fmt.Errorf("%w: unsupported currency %q", domain.ErrValidation, code)
		}
	}

	if err := s.PreferencesRepo.Save(ctx, &prefs); err != nil {
		return nil, fmt.Errorf("failed to save currency preferences: %w", err)
	}
	return &prefs, nil
}

func (s *CalculatorService) displayCurrency(code domain.CurrencyCode) domain.CurrencyCode {
	if code == "" {
		return domain.ReferenceCurrency
	}
	return code
}

// resolvePrices fills unset prices from the hint cell. Hints are in the reference currency.
func (s *CalculatorService) resolvePrices(prices domain.MetalPrices, useLive bool) domain.MetalPrices {
	if !useLive || s.Prices == nil {
		return prices
	}
	if !prices.Gold.IsSet() {
		hint := s.Prices.Hint(domain.MetalGold)
		prices.Gold = domain.MetalPrice{PricePerGram: hint.PricePerGram, Currency: domain.ReferenceCurrency}
	}
	if !prices.Silver.IsSet() {
		hint := s.Prices.Hint(domain.MetalSilver)
		prices.Silver = domain.MetalPrice{PricePerGram: hint.PricePerGram, Currency: domain.ReferenceCurrency}
	}
	return prices
}
