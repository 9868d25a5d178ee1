package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/zakatflow-backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Document ids in the state collection
const (
	lastObligationID = "last_obligation"
	preferencesID    = "currency_preferences"
)

type lastObligationDocument struct {
	ID              string    `bson:"_id"`
	AmountReference string    `bson:"amountReference"`
	DisplayCurrency string    `bson:"displayCurrency"`
	AmountDisplay   string    `bson:"amountDisplay"`
	CalculatedAt    time.Time `bson:"calculatedAt"`
}

type preferencesDocument struct {
	ID              string `bson:"_id"`
	GoldCurrency    string `bson:"goldCurrency"`
	SilverCurrency  string `bson:"silverCurrency"`
	DisplayCurrency string `bson:"displayCurrency"`
}

// findState decodes the state document with the given id, mapping a miss to domain.ErrNotFound
func findState(ctx context.Context, db *DB, id string, v any) error {
	err := db.collection(StateCollection).FindOne(ctx, bson.M{"_id": id}).Decode(v)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("%s: %w", id, domain.ErrNotFound)
		}
		return fmt.Errorf("failed to find %s: %w", id, err)
	}
	return nil
}

func replaceState(ctx context.Context, db *DB, id string, v any) error {
	_, err := db.collection(StateCollection).ReplaceOne(ctx, bson.M{"_id": id}, v, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", id, err)
	}
	return nil
}

// obligationRepository implements domain.ObligationRepository
type obligationRepository struct {
	db *DB
}

// NewObligationRepository creates a new obligation repository
func NewObligationRepository(db *DB) domain.ObligationRepository {
	return &obligationRepository{db: db}
}

func (r *obligationRepository) GetLast(ctx context.Context) (*domain.LastObligation, error) {
	var doc lastObligationDocument
	if err := findState(ctx, r.db, lastObligationID, &doc); err != nil {
		return nil, err
	}

	amountRef, err := decimal.NewFromString(doc.AmountReference)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored reference amount: %w", err)
	}
	amountDisplay, err := decimal.NewFromString(doc.AmountDisplay)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored display amount: %w", err)
	}

	return &domain.LastObligation{
		AmountReference: amountRef,
		DisplayCurrency: domain.CurrencyCode(doc.DisplayCurrency),
		AmountDisplay:   amountDisplay,
		CalculatedAt:    doc.CalculatedAt.UTC(),
	}, nil
}

func (r *obligationRepository) SaveLast(ctx context.Context, obligation *domain.LastObligation) error {
	return replaceState(ctx, r.db, lastObligationID, lastObligationDocument{
		ID:              lastObligationID,
		AmountReference: obligation.AmountReference.StringFixed(2),
		DisplayCurrency: string(obligation.DisplayCurrency),
		AmountDisplay:   obligation.AmountDisplay.StringFixed(2),
		CalculatedAt:    obligation.CalculatedAt.UTC(),
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

func (r *preferencesRepository) Get(ctx context.Context) (*domain.CurrencyPreferences, error) {
	var doc preferencesDocument
	if err := findState(ctx, r.db, preferencesID, &doc); err != nil {
		return nil, err
	}
	return &domain.CurrencyPreferences{
		GoldCurrency:    domain.CurrencyCode(doc.GoldCurrency),
		SilverCurrency:  domain.CurrencyCode(doc.SilverCurrency),
		DisplayCurrency: domain.CurrencyCode(doc.DisplayCurrency),
	}, nil
}

func (r *preferencesRepository) Save(ctx context.Context, prefs *domain.CurrencyPreferences) error {
	return replaceState(ctx, r.db, preferencesID, preferencesDocument{
		ID:              preferencesID,
		GoldCurrency:    string(prefs.GoldCurrency),
		SilverCurrency:  string(prefs.SilverCurrency),
		DisplayCurrency: string(prefs.DisplayCurrency),
	})
}
