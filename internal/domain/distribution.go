package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultLedger is the name of the ledger used when none is configured
const DefaultLedger = "zakatDistributions"

// RecipientCategory is one of the eight classical classes of Zakat recipients
type RecipientCategory string

const (
	RecipientFuqara       RecipientCategory = "FUQARA"        // the poor
	RecipientMasakin      RecipientCategory = "MASAKIN"       // the needy
	RecipientAmil         RecipientCategory = "AMIL"          // collectors and administrators
	RecipientMuallaf      RecipientCategory = "MUALLAF"       // those whose hearts are to be reconciled
	RecipientRiqab        RecipientCategory = "RIQAB"         // freeing captives
	RecipientGharimin     RecipientCategory = "GHARIMIN"      // debtors
	RecipientFiSabilillah RecipientCategory = "FI_SABILILLAH" // in the cause of God
	RecipientIbnAsSabil   RecipientCategory = "IBN_AS_SABIL"  // stranded travellers
)

var recipientLabels = map[RecipientCategory]string{
	RecipientFuqara:       "Fuqara (The Poor)",
	RecipientMasakin:      "Masakin (The Needy)",
	RecipientAmil:         "Amil (Zakat Administrators)",
	RecipientMuallaf:      "Muallaf (New Muslims)",
	RecipientRiqab:        "Riqab (Freeing Captives)",
	RecipientGharimin:     "Gharimin (Debtors)",
	RecipientFiSabilillah: "Fi Sabilillah (In the Cause of Allah)",
	RecipientIbnAsSabil:   "Ibn as-Sabil (Travellers)",
}

// RecipientCategories lists every category in canonical order
func RecipientCategories() []RecipientCategory {
	return []RecipientCategory{
		RecipientFuqara, RecipientMasakin, RecipientAmil, RecipientMuallaf,
		RecipientRiqab, RecipientGharimin, RecipientFiSabilillah, RecipientIbnAsSabil,
	}
}

// ParseRecipientCategory accepts the code in any case, with '-' or ' ' in place of '_'
func ParseRecipientCategory(s string) RecipientCategory {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)
	return RecipientCategory(normalized)
}

// IsKnown reports whether the category is one of the eight classes
func (c RecipientCategory) IsKnown() bool {
	_, ok := recipientLabels[c]
	return ok
}

// Label returns the human readable name of the category
func (c RecipientCategory) Label() string {
	if label, ok := recipientLabels[c]; ok {
		return label
	}
	return string(c)
}

// DistributionRecord is one disbursement of Zakat to a recipient
type DistributionRecord struct {
	ID            uuid.UUID
	RecipientName string
	Category      RecipientCategory
	Amount        decimal.Decimal
	Currency      CurrencyCode
	Date          time.Time // calendar date, time of day is ignored
	Notes         string
	CreatedAt     time.Time
}

// Validate ensures the record adheres to domain rules.
// Returns an error wrapping ErrValidation if validation fails.
func (r *DistributionRecord) Validate() error {
	if strings.TrimSpace(r.RecipientName) == "" {
		return fmt.Errorf("%w: recipient name cannot be empty", ErrValidation)
	}
	if r.Category == "" {
		return fmt.Errorf("%w: recipient category must be selected", ErrValidation)
	}
	if !r.Category.IsKnown() {
		return fmt.Errorf("%w: recipient category %q is invalid", ErrValidation, r.Category)
	}
	if !r.Amount.IsPositive() {
		return fmt.Errorf("%w: distribution amount must be positive", ErrValidation)
	}
	if r.Date.IsZero() {
		return fmt.Errorf("%w: distribution date must be provided", ErrValidation)
	}
	return nil
}

// DateOnly truncates a timestamp to its calendar date in UTC
func DateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateLayout is the wire and storage format of distribution dates
const DateLayout = "2006-01-02"
