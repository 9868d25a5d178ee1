package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/zakatflow-backend/internal/domain"
)

// distributionRepository implements domain.DistributionRepository
type distributionRepository struct {
	db *DB
}

// NewDistributionRepository creates a new distribution repository
func NewDistributionRepository(db *DB) domain.DistributionRepository {
	return &distributionRepository{db: db}
}

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Load returns every record of the ledger in insertion order
func (r *distributionRepository) Load(ctx context.Context, ledger string) ([]domain.DistributionRecord, error) {
	return loadRecords(ctx, r.db, ledger)
}

// Store replaces the ledger in a single transaction
func (r *distributionRepository) Store(ctx context.Context, ledger string, records []domain.DistributionRecord) error {
	return r.Update(ctx, ledger, func([]domain.DistributionRecord) ([]domain.DistributionRecord, error) {
		return records, nil
	})
}

// Update reads and rewrites the ledger in one transaction.
// The transaction-scoped advisory lock is taken before the read, so concurrent writers of the same ledger queue up.
func (r *distributionRepository) Update(ctx context.Context, ledger string, fn domain.LedgerMutation) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, ledger); err != nil {
		return fmt.Errorf("failed to lock ledger: %w", err)
	}

	current, err := loadRecords(ctx, dbTx, ledger)
	if err != nil {
		return err
	}
	records, err := fn(current)
	if err != nil {
		return err
	}

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM distribution_records WHERE ledger = $1`, ledger); err != nil {
		return fmt.Errorf("failed to clear ledger: %w", err)
	}

	insertQuery := `
		INSERT INTO distribution_records (id, ledger, position, recipient_name, category, amount, currency, date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	for i, record := range records {
		_, err := dbTx.ExecContext(ctx, insertQuery,
			record.ID,
			ledger,
			i,
			record.RecipientName,
			string(record.Category),
			record.Amount.String(),
			string(record.Currency),
			record.Date.Format(domain.DateLayout),
			record.Notes,
			record.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert distribution record %s: %w", record.ID, err)
		}
	}

	// Commit the transaction
	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func loadRecords(ctx context.Context, q querier, ledger string) ([]domain.DistributionRecord, error) {
	query := `
		SELECT id, recipient_name, category, amount, currency, date, notes, created_at
		FROM distribution_records
		WHERE ledger = $1
		ORDER BY position ASC
	`

	rows, err := q.QueryContext(ctx, query, ledger)
	if err != nil {
		return nil, fmt.Errorf("failed to query distribution records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.DistributionRecord, 0)
	for rows.Next() {
		var record domain.DistributionRecord
		var amountStr string

		err := rows.Scan(
			&record.ID,
			&record.RecipientName,
			&record.Category,
			&amountStr,
			&record.Currency,
			&record.Date,
			&record.Notes,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan distribution record: %w", err)
		}

		// Parse amount (NUMERIC)
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse distribution amount: %w", err)
		}
		record.Amount = amount
		record.Date = domain.DateOnly(record.Date)
		record.CreatedAt = record.CreatedAt.UTC()

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating distribution records: %w", err)
	}

	return records, nil
}
