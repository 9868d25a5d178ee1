package domain

import "context"

// LedgerMutation receives the current records of a ledger and returns the records to keep.
// Returning an error aborts the write.
type LedgerMutation func(records []DistributionRecord) ([]DistributionRecord, error)

// DistributionRepository persists whole ledgers.
// Mutations go through Update so that the read and the write happen under one lock.
type DistributionRepository interface {
	// Load returns every record of the ledger in insertion order, or an empty slice
	Load(ctx context.Context, ledger string) ([]DistributionRecord, error)

	// Store replaces the ledger with the given records
	Store(ctx context.Context, ledger string, records []DistributionRecord) error

	// Update reads the ledger, applies fn and writes the result atomically.
	// Concurrent updates of the same ledger are serialized.
	Update(ctx context.Context, ledger string, fn LedgerMutation) error
}

// ObligationRepository persists the summary of the last calculation
type ObligationRepository interface {
	// GetLast returns ErrNotFound when no calculation was ever stored
	GetLast(ctx context.Context) (*LastObligation, error)

	// SaveLast overwrites the stored summary
	SaveLast(ctx context.Context, obligation *LastObligation) error
}

// PreferencesRepository persists the user's currency selections
type PreferencesRepository interface {
	// Get returns ErrNotFound when nothing was saved yet
	Get(ctx context.Context) (*CurrencyPreferences, error)

	// Save overwrites the stored preferences
	Save(ctx context.Context, prefs *CurrencyPreferences) error
}
