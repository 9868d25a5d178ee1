package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/zakatflow-backend/internal/domain"
)

// obligationRepository implements domain.ObligationRepository
type obligationRepository struct {
	db *DB
}

// NewObligationRepository creates a new obligation repository
func NewObligationRepository(db *DB) domain.ObligationRepository {
	return &obligationRepository{db: db}
}

// GetLast retrieves the single stored obligation row
func (r *obligationRepository) GetLast(ctx context.Context) (*domain.LastObligation, error) {
	query := `
		SELECT amount_reference, display_currency, amount_display, calculated_at
		FROM last_obligation
		WHERE id = 1
	`

	var last domain.LastObligation
	var amountRefStr, amountDisplayStr string

	err := r.db.QueryRowContext(ctx, query).Scan(
		&amountRefStr,
		&last.DisplayCurrency,
		&amountDisplayStr,
		&last.CalculatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("last obligation: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get last obligation: %w", err)
	}

	if last.AmountReference, err = decimal.NewFromString(amountRefStr); err != nil {
		return nil, fmt.Errorf("failed to parse amount_reference: %w", err)
	}
	if last.AmountDisplay, err = decimal.NewFromString(amountDisplayStr); err != nil {
		return nil, fmt.Errorf("failed to parse amount_display: %w", err)
	}
	last.CalculatedAt = last.CalculatedAt.UTC()

	return &last, nil
}

// SaveLast upserts the single obligation row
func (r *obligationRepository) SaveLast(ctx context.Context, obligation *domain.LastObligation) error {
	query := `
		INSERT INTO last_obligation (id, amount_reference, display_currency, amount_display, calculated_at)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			amount_reference = EXCLUDED.amount_reference,
			display_currency = EXCLUDED.display_currency,
			amount_display   = EXCLUDED.amount_display,
			calculated_at    = EXCLUDED.calculated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		obligation.AmountReference.StringFixed(2),
		string(obligation.DisplayCurrency),
		obligation.AmountDisplay.StringFixed(2),
		obligation.CalculatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save last obligation: %w", err)
	}

	return nil
}

// preferencesRepository implements domain.PreferencesRepository
type preferencesRepository struct {
	db *DB
}

// NewPreferencesRepository creates a new preferences repository
func NewPreferencesRepository(db *DB) domain.PreferencesRepository {
	return &preferencesRepository{db: db}
}

// Get retrieves the single stored preferences row
func (r *preferencesRepository) Get(ctx context.Context) (*domain.CurrencyPreferences, error) {
	query := `
		SELECT gold_currency, silver_currency, display_currency
		FROM currency_preferences
		WHERE id = 1
	`

	var prefs domain.CurrencyPreferences
	err := r.db.QueryRowContext(ctx, query).Scan(
		&prefs.GoldCurrency,
		&prefs.SilverCurrency,
		&prefs.DisplayCurrency,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("currency preferences: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get currency preferences: %w", err)
	}

	return &prefs, nil
}

// Save upserts the single preferences row
func (r *preferencesRepository) Save(ctx context.Context, prefs *domain.CurrencyPreferences) error {
	query := `
		INSERT INTO currency_preferences (id, gold_currency, silver_currency, display_currency)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			gold_currency    = EXCLUDED.gold_currency,
			silver_currency  = EXCLUDED.silver_currency,
			display_currency = EXCLUDED.display_currency
	`

	_, err := r.db.ExecContext(ctx, query,
		string(prefs.GoldCurrency),
		string(prefs.SilverCurrency),
		string(prefs.DisplayCurrency),
	)
	if err != nil {
		return fmt.Errorf("failed to save currency preferences: %w", err)
	}

	return nil
}
