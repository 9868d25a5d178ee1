package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/zakatflow-backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// maxUpdateAttempts bounds the optimistic retries of Update under contention
const maxUpdateAttempts = 16

// ledgerDocument holds a whole ledger so that a write replaces it atomically.
// Version increases on every write; a replace only succeeds against the version it read.
type ledgerDocument struct {
	Name      string           `bson:"_id"`
	Version   int64            `bson:"version"`
	Records   []recordDocument `bson:"records"`
	UpdatedAt time.Time        `bson:"updatedAt"`
}

type recordDocument struct {
	ID            string    `bson:"id"`
	RecipientName string    `bson:"recipientName"`
	Category      string    `bson:"category"`
	Amount        string    `bson:"amount"`
	Currency      string    `bson:"currency"`
	Date          string    `bson:"date"`
	Notes         string    `bson:"notes"`
	CreatedAt     time.Time `bson:"dateAdded"`
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
	doc, err := r.find(ctx, ledger)
	if err != nil {
		return nil, err
	}
	return doc.toDomain()
}

// Store replaces the ledger document
func (r *distributionRepository) Store(ctx context.Context, ledger string, records []domain.DistributionRecord) error {
	return r.Update(ctx, ledger, func([]domain.DistributionRecord) ([]domain.DistributionRecord, error) {
		return records, nil
	})
}

// Update applies fn with optimistic concurrency on the document version.
// A lost race re-reads the ledger and applies fn again.
func (r *distributionRepository) Update(ctx context.Context, ledger string, fn domain.LedgerMutation) error {
	coll := r.db.collection(LedgersCollection)

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		doc, err := r.find(ctx, ledger)
		if err != nil {
			return err
		}
		current, err := doc.toDomain()
		if err != nil {
			return err
		}
		records, err := fn(current)
		if err != nil {
			return err
		}

		next := newLedgerDocument(ledger, doc.Version+1, records)
		if doc.Version == 0 {
			// first write of this ledger; a concurrent insert fails on _id
			_, err := coll.InsertOne(ctx, next)
			if mongo.IsDuplicateKeyError(err) {
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to store ledger %s: %w", ledger, err)
			}
			return nil
		}

		res, err := coll.ReplaceOne(ctx, bson.M{"_id": ledger, "version": doc.Version}, next)
		if err != nil {
			return fmt.Errorf("failed to store ledger %s: %w", ledger, err)
		}
		if res.MatchedCount == 1 {
			return nil
		}
	}
	return fmt.Errorf("failed to store ledger %s: gave up after %d concurrent updates", ledger, maxUpdateAttempts)
}

// find returns the ledger document, or an empty version-0 document when it does not exist
func (r *distributionRepository) find(ctx context.Context, ledger string) (*ledgerDocument, error) {
	var doc ledgerDocument
	err := r.db.collection(LedgersCollection).FindOne(ctx, bson.M{"_id": ledger}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &ledgerDocument{Name: ledger}, nil
		}
		return nil, fmt.Errorf("failed to find ledger %s: %w", ledger, err)
	}
	if doc.Version == 0 {
		// written before versioning; treat as the first version
		doc.Version = 1
		if _, err := r.db.collection(LedgersCollection).UpdateOne(ctx,
			bson.M{"_id": ledger, "version": bson.M{"$exists": false}},
			bson.M{"$set": bson.M{"version": int64(1)}},
		); err != nil {
			return nil, fmt.Errorf("failed to version ledger %s: %w", ledger, err)
		}
	}
	return &doc, nil
}

func newLedgerDocument(ledger string, version int64, records []domain.DistributionRecord) ledgerDocument {
	doc := ledgerDocument{
		Name:      ledger,
		Version:   version,
		Records:   make([]recordDocument, 0, len(records)),
		UpdatedAt: time.Now().UTC(),
	}
	for _, record := range records {
		doc.Records = append(doc.Records, recordDocument{
			ID:            record.ID.String(),
			RecipientName: record.RecipientName,
			Category:      string(record.Category),
			Amount:        record.Amount.String(),
			Currency:      string(record.Currency),
			Date:          record.Date.Format(domain.DateLayout),
			Notes:         record.Notes,
			CreatedAt:     record.CreatedAt.UTC(),
		})
	}
	return doc
}

func (doc *ledgerDocument) toDomain() ([]domain.DistributionRecord, error) {
	records := make([]domain.DistributionRecord, 0, len(doc.Records))
	for _, rd := range doc.Records {
		record, err := rd.toDomain()
		if err != nil {
			return nil, fmt.Errorf("failed to decode record %s of ledger %s: %w", rd.ID, doc.Name, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func (rd recordDocument) toDomain() (domain.DistributionRecord, error) {
	id, err := uuid.Parse(rd.ID)
	if err != nil {
		return domain.DistributionRecord{}, fmt.Errorf("failed to parse id: %w", err)
	}
	amount, err := decimal.NewFromString(rd.Amount)
	if err != nil {
		return domain.DistributionRecord{}, fmt.Errorf("failed to parse amount: %w", err)
	}
	date, err := time.Parse(domain.DateLayout, rd.Date)
	if err != nil {
		return domain.DistributionRecord{}, fmt.Errorf("failed to parse date: %w", err)
	}
	return domain.DistributionRecord{
		ID:            id,
		RecipientName: rd.RecipientName,
		Category:      domain.RecipientCategory(rd.Category),
		Amount:        amount,
		Currency:      domain.CurrencyCode(rd.Currency),
		Date:          date,
		Notes:         rd.Notes,
		CreatedAt:     rd.CreatedAt.UTC(),
	}, nil
}
