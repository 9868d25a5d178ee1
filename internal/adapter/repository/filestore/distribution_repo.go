package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/zakatflow-backend/internal/domain"
)

// distributionRecordDTO is the on-disk shape of a record
type distributionRecordDTO struct {
	ID            string `json:"id"`
	RecipientName string `json:"recipientName"`
	Category      string `json:"category"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	Date          string `json:"date"`
	Notes         string `json:"notes"`
	DateAdded     string `json:"dateAdded"`
}

// distributionRepository implements domain.DistributionRepository
type distributionRepository struct {
	db *DB
}

// NewDistributionRepository creates a new distribution repository
func NewDistributionRepository(db *DB) domain.DistributionRepository {
	return &distributionRepository{db: db}
}

// Load returns every record of the ledger in stored order
func (r *distributionRepository) Load(ctx context.Context, ledger string) ([]domain.DistributionRecord, error) {
	if err := checkLedgerName(ledger); err != nil {
		return nil, err
	}

	var dtos []distributionRecordDTO
	if _, err := r.db.get(ledger, &dtos); err != nil {
		return nil, err
	}
	return decodeRecords(ledger, dtos)
}

// Store replaces the ledger with the given records
func (r *distributionRepository) Store(ctx context.Context, ledger string, records []domain.DistributionRecord) error {
	if err := checkLedgerName(ledger); err != nil {
		return err
	}

	return r.db.put(ledger, encodeRecords(records))
}

// Update runs fn with the store lock held from the read to the write
func (r *distributionRepository) Update(ctx context.Context, ledger string, fn domain.LedgerMutation) error {
	if err := checkLedgerName(ledger); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.db.update(ledger, func(raw json.RawMessage) (any, error) {
		var dtos []distributionRecordDTO
		if len(raw) > 0 && string(raw) != "null" {
			if err := json.Unmarshal(raw, &dtos); err != nil {
				return nil, fmt.Errorf("failed to decode %s: %w", ledger, err)
			}
		}
		current, err := decodeRecords(ledger, dtos)
		if err != nil {
			return nil, err
		}

		next, err := fn(current)
		if err != nil {
			return nil, err
		}
		return encodeRecords(next), nil
	})
}

func decodeRecords(ledger string, dtos []distributionRecordDTO) ([]domain.DistributionRecord, error) {
	records := make([]domain.DistributionRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, err := dto.toDomain()
		if err != nil {
			return nil, fmt.Errorf("failed to decode record %s of ledger %s: %w", dto.ID, ledger, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func encodeRecords(records []domain.DistributionRecord) []distributionRecordDTO {
	dtos := make([]distributionRecordDTO, 0, len(records))
	for _, record := range records {
		dtos = append(dtos, fromDomainRecord(record))
	}
	return dtos
}

func checkLedgerName(ledger string) error {
	switch ledger {
	case "":
		return fmt.Errorf("%w: ledger name cannot be empty", domain.ErrValidation)
	case LastObligationKey, PreferencesKey:
		return fmt.Errorf("%w: ledger name %q is reserved", domain.ErrValidation, ledger)
	}
	return nil
}

func fromDomainRecord(r domain.DistributionRecord) distributionRecordDTO {
	return distributionRecordDTO{
		ID:            r.ID.String(),
		RecipientName: r.RecipientName,
		Category:      string(r.Category),
		Amount:        r.Amount.String(),
		Currency:      string(r.Currency),
		Date:          r.Date.Format(domain.DateLayout),
		Notes:         r.Notes,
		DateAdded:     r.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func (dto distributionRecordDTO) toDomain() (domain.DistributionRecord, error) {
	id, err := uuid.Parse(dto.ID)
	if err != nil {
		return domain.DistributionRecord{}, fmt.Errorf("failed to parse id: %w", err)
	}
	amount, err := decimal.NewFromString(dto.Amount)
	if err != nil {
		return domain.DistributionRecord{}, fmt.Errorf("failed to parse amount: %w", err)
	}
	date, err := time.Parse(domain.DateLayout, dto.Date)
	if err != nil {
		return domain.DistributionRecord{}, fmt.Errorf("failed to parse date: %w", err)
	}

	var createdAt time.Time
	if dto.DateAdded != "" {
		createdAt, err = time.Parse(time.RFC3339Nano, dto.DateAdded)
		if err != nil {
			return domain.DistributionRecord{}, fmt.Errorf("failed to parse dateAdded: %w", err)
		}
	}

	return domain.DistributionRecord{
		ID:            id,
		RecipientName: dto.RecipientName,
		Category:      domain.RecipientCategory(dto.Category),
		Amount:        amount,
		Currency:      domain.CurrencyCode(dto.Currency),
		Date:          date,
		Notes:         dto.Notes,
		CreatedAt:     createdAt,
	}, nil
}
