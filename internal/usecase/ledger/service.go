package ledger

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/zakatflow-backend/internal/domain"
	"github.com/simaogato/zakatflow-backend/internal/observability"
	"github.com/simaogato/zakatflow-backend/pkg/logger"
	"go.uber.org/zap"
)

// AddDistributionInput represents the input for recording a distribution
type AddDistributionInput struct {
	RecipientName string
	Category      domain.RecipientCategory
	Amount        decimal.Decimal
	Currency      domain.CurrencyCode
	Date          time.Time
	Notes         string
}

// errUnchanged aborts an update that would rewrite the ledger as it is
var errUnchanged = errors.New("ledger unchanged")

// LedgerService keeps the record of Zakat distributions.
// Every mutation rewrites the full ledger through DistributionRepository.Update;
// mu serializes the mutations of this process on top of the repository lock.
type LedgerService struct {
	Currencies       *domain.CurrencyTable
	DistributionRepo domain.DistributionRepository
	ObligationRepo   domain.ObligationRepository
	Ledger           string
	Logger           *zap.Logger
	Metrics          *observability.Metrics
	now              func() time.Time
	newID            func() (uuid.UUID, error)

	mu sync.Mutex
}

// NewLedgerService creates a new LedgerService instance. An empty ledger name uses domain.DefaultLedger.
func NewLedgerService(
	currencies *domain.CurrencyTable,
	distributionRepo domain.DistributionRepository,
	obligationRepo domain.ObligationRepository,
	ledger string,
	log *zap.Logger,
	metrics *observability.Metrics,
) *LedgerService {
	if ledger == "" {
		ledger = domain.DefaultLedger
	}
	return &LedgerService{
		Currencies:       currencies,
		DistributionRepo: distributionRepo,
		ObligationRepo:   obligationRepo,
		Ledger:           ledger,
		Logger:           logger.OrNop(log),
		Metrics:          metrics,
		now:              func() time.Time { return time.Now().UTC() },
		newID:            uuid.NewV7,
	}
}

// Add validates and appends a new record.
// A validation failure leaves the ledger untouched.
func (s *LedgerService) Add(ctx context.Context, input AddDistributionInput) (*domain.DistributionRecord, error) {
	currency := input.Currency
	if currency == "" {
		currency = domain.ReferenceCurrency
	}

	record := domain.DistributionRecord{
		RecipientName: strings.TrimSpace(input.RecipientName),
		Category:      input.Category,
		Amount:        input.Amount,
		Currency:      currency,
		Date:          domain.DateOnly(input.Date),
		Notes:         strings.TrimSpace(input.Notes),
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate record id: %w", err)
	}
	record.ID = id
	record.CreatedAt = s.now()

	err = s.update(ctx, func(records []domain.DistributionRecord) ([]domain.DistributionRecord, error) {
		return append(records, record), nil
	})
	if err != nil {
		return nil, err
	}

	s.Metrics.IncrLedgerMutation("add")
	s.Logger.Info("distribution recorded",
		zap.String("id", record.ID.String()),
		zap.String("category", string(record.Category)),
		zap.String("amount", record.Amount.String()),
		zap.String("currency", string(record.Currency)),
	)

	return &record, nil
}

// Delete removes the record with the given id. Deleting an unknown id is a no-op.
func (s *LedgerService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.update(ctx, func(records []domain.DistributionRecord) ([]domain.DistributionRecord, error) {
		kept := make([]domain.DistributionRecord, 0, len(records))
		for _, r := range records {
			if r.ID != id {
				kept = append(kept, r)
			}
		}
		if len(kept) == len(records) {
			return nil, errUnchanged
		}
		return kept, nil
	})
	if errors.Is(err, errUnchanged) {
		s.Logger.Debug("distribution not found, nothing deleted", zap.String("id", id.String()))
		return nil
	}
	if err != nil {
		return err
	}

	s.Metrics.IncrLedgerMutation("delete")
	s.Logger.Info("distribution deleted", zap.String("id", id.String()))
	return nil
}

// Clear removes every record of the ledger
func (s *LedgerService) Clear(ctx context.Context) error {
	err := s.update(ctx, func([]domain.DistributionRecord) ([]domain.DistributionRecord, error) {
		return []domain.DistributionRecord{}, nil
	})
	if err != nil {
		return err
	}

	s.Metrics.IncrLedgerMutation("clear")
	s.Logger.Warn("distribution ledger cleared", zap.String("ledger", s.Ledger))
	return nil
}

// List returns every record, newest distribution date first
func (s *LedgerService) List(ctx context.Context) ([]domain.DistributionRecord, error) {
	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	SortNewestFirst(records)
	return records, nil
}

// Summary reconciles the ledger against the last persisted obligation.
// An empty display currency falls back to the currency of that obligation.
func (s *LedgerService) Summary(ctx context.Context, displayCurrency domain.CurrencyCode) (*Reconciliation, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	due := decimal.Zero
	last, err := s.ObligationRepo.GetLast(ctx)
	switch {
	case err == nil:
		due = last.AmountReference
		if displayCurrency == "" {
			displayCurrency = last.DisplayCurrency
		}
	case errors.Is(err, domain.ErrNotFound):
	default:
		return nil, fmt.Errorf("failed to load last obligation: %w", err)
	}

	summary := Reconcile(s.Currencies, records, due, displayCurrency)
	return &summary, nil
}

// SortNewestFirst orders records by date descending; same-day records keep newest creation first
func SortNewestFirst(records []domain.DistributionRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.After(records[j].Date)
		}
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
}

func (s *LedgerService) load(ctx context.Context) ([]domain.DistributionRecord, error) {
	records, err := s.DistributionRepo.Load(ctx, s.Ledger)
	if err != nil {
		s.Logger.Error("failed to load ledger", zap.String("ledger", s.Ledger), zap.Error(err))
		return nil, fmt.Errorf("failed to load distributions: %w", err)
	}
	return records, nil
}

func (s *LedgerService) update(ctx context.Context, fn domain.LedgerMutation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.DistributionRepo.Update(ctx, s.Ledger, fn); err != nil {
		if errors.Is(err, errUnchanged) {
			return err
		}
		s.Logger.Error("failed to update ledger", zap.String("ledger", s.Ledger), zap.Error(err))
		return fmt.Errorf("failed to update distributions: %w", err)
	}
	return nil
}
