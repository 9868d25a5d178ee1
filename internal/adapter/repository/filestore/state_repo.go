package filestore

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/zakatflow-backend/internal/domain"
)

type lastObligationDTO struct {
	AmountReference string `json:"amountUSD"`
	DisplayCurrency string `json:"currency"`
	AmountDisplay   string `json:"amount"`
	CalculatedAt    string `json:"calculatedAt"`
}

type preferencesDTO struct {
	GoldCurrency    string `json:"goldCurrency"`
	SilverCurrency  string `json:"silverCurrency"`
	DisplayCurrency string `json:"preferredCurrency"`
}

// obligationRepository implements domain.ObligationRepository
type obligationRepository struct {
	db *DB
}

// NewObligationRepository creates a new obligation repository
func NewObligationRepository(db *DB) domain.ObligationRepository {
	return &obligationRepository{db: db}
}

// GetLast returns the last stored obligation or domain.ErrNotFound
func (r *obligationRepository) GetLast(ctx context.Context) (*domain.LastObligation, error) {
	var dto lastObligationDTO
	found, err := r.db.get(LastObligationKey, &dto)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("last obligation: %w", domain.ErrNotFound)
	}

	amountRef, err := decimal.NewFromString(dto.AmountReference)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored reference amount: %w", err)
	}
	amountDisplay, err := decimal.NewFromString(dto.AmountDisplay)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored display amount: %w", err)
	}
	calculatedAt, err := time.Parse(time.RFC3339Nano, dto.CalculatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored calculation time: %w", err)
	}

	return &domain.LastObligation{
		AmountReference: amountRef,
		DisplayCurrency: domain.CurrencyCode(dto.DisplayCurrency),
		AmountDisplay:   amountDisplay,
		CalculatedAt:    calculatedAt,
	}, nil
}

// SaveLast overwrites the stored obligation
func (r *obligationRepository) SaveLast(ctx context.Context, obligation *domain.LastObligation) error {
	return r.db.put(LastObligationKey, lastObligationDTO{
		AmountReference: obligation.AmountReference.StringFixed(2),
		DisplayCurrency: string(obligation.DisplayCurrency),
		AmountDisplay:   obligation.AmountDisplay.StringFixed(2),
		CalculatedAt:    obligation.CalculatedAt.UTC().Format(time.RFC3339Nano),
	})
}

// preferencesRepository implements domain.PreferencesRepository
type preferencesRepository struct {
	db *DB
}

// NewPreferencesRepository creates a new preferences repository
func NewPreferencesRepository(db *DB) domain.PreferencesRepository {
	return &preferencesRepository{db: db}
}

// Get returns the stored preferences or domain.ErrNotFound
func (r *preferencesRepository) Get(ctx context.Context) (*domain.CurrencyPreferences, error) {
	var dto preferencesDTO
	found, err := r.db.get(PreferencesKey, &dto)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("currency preferences: %w", domain.ErrNotFound)
	}
	return &domain.CurrencyPreferences{
		GoldCurrency:    domain.CurrencyCode(dto.GoldCurrency),
		SilverCurrency:  domain.CurrencyCode(dto.SilverCurrency),
		DisplayCurrency: domain.CurrencyCode(dto.DisplayCurrency),
	}, nil
}

// Save overwrites the stored preferences
func (r *preferencesRepository) Save(ctx context.Context, prefs *domain.CurrencyPreferences) error {
	return r.db.put(PreferencesKey, preferencesDTO{
		GoldCurrency:    string(prefs.GoldCurrency),
		SilverCurrency:  string(prefs.SilverCurrency),
		DisplayCurrency: string(prefs.DisplayCurrency),
	})
}
