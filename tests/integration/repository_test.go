//go:build integration

package integration

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/simaogato/zakatflow-backend/internal/adapter/repository/mongodb"
	"github.com/simaogato/zakatflow-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/zakatflow-backend/internal/domain"
	"github.com/simaogato/zakatflow-backend/internal/usecase/ledger"
)

type repositories struct {
	records     domain.DistributionRepository
	obligations domain.ObligationRepository
	preferences domain.PreferencesRepository
}

func TestPostgresRepositories(t *testing.T) {
	db := requirePostgres(t)
	ctx := context.Background()

	// Singleton rows start empty so the not-found path is observable
	_, err := db.ExecContext(ctx, `DELETE FROM last_obligation`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM currency_preferences`)
	require.NoError(t, err)

	repos := repositories{
		records:     postgres.NewDistributionRepository(db),
		obligations: postgres.NewObligationRepository(db),
		preferences: postgres.NewPreferencesRepository(db),
	}

	_, err = repos.obligations.GetLast(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repos.preferences.Get(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	runRepositoryContract(t, repos)
}

func TestMongoRepositories(t *testing.T) {
	db := requireMongo(t)

	runRepositoryContract(t, repositories{
		records:     mongodb.NewDistributionRepository(db),
		obligations: mongodb.NewObligationRepository(db),
		preferences: mongodb.NewPreferencesRepository(db),
	})
}

func runRepositoryContract(t *testing.T, repos repositories) {
	ctx := context.Background()
	ledgerName := "it-" + uuid.NewString()

	t.Run("Unknown Ledger Loads Empty", func(t *testing.T) {
		records, err := repos.records.Load(ctx, ledgerName)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	first := newRecord(t, "Ahmad", domain.RecipientFuqara, "150.00", "2024-03-11")
	second := newRecord(t, "Fatima", domain.RecipientGharimin, "49.995", "2024-03-12")

	t.Run("Store And Load Preserve Order", func(t *testing.T) {
		require.NoError(t, repos.records.Store(ctx, ledgerName, []domain.DistributionRecord{first, second}))

		loaded, err := repos.records.Load(ctx, ledgerName)
		require.NoError(t, err)
		require.Len(t, loaded, 2)
		assertSameRecord(t, first, loaded[0])
		assertSameRecord(t, second, loaded[1])
	})

	t.Run("Store Replaces The Snapshot", func(t *testing.T) {
		require.NoError(t, repos.records.Store(ctx, ledgerName, []domain.DistributionRecord{second}))

		loaded, err := repos.records.Load(ctx, ledgerName)
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assertSameRecord(t, second, loaded[0])

		require.NoError(t, repos.records.Store(ctx, ledgerName, nil))
		loaded, err = repos.records.Load(ctx, ledgerName)
		require.NoError(t, err)
		assert.Empty(t, loaded)
	})

	t.Run("Concurrent Updates Are Serialized", func(t *testing.T) {
		name := ledgerName + "-concurrent"
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			rec := newRecord(t, "Concurrent", domain.RecipientAmil, "1", "2024-03-13")
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := repos.records.Update(ctx, name, func(records []domain.DistributionRecord) ([]domain.DistributionRecord, error) {
					return append(records, rec), nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		loaded, err := repos.records.Load(ctx, name)
		require.NoError(t, err)
		assert.Len(t, loaded, 10)
	})

	t.Run("Ledger Service Over Store", func(t *testing.T) {
		svc := ledger.NewLedgerService(
			domain.DefaultCurrencyTable(zap.NewNop()), repos.records, repos.obligations,
			ledgerName+"-svc", zap.NewNop(), nil,
		)
		record, err := svc.Add(ctx, ledger.AddDistributionInput{
			RecipientName: "Yusuf",
			Category:      domain.RecipientMasakin,
			Amount:        decimal.RequireFromString("75"),
			Currency:      domain.ReferenceCurrency,
			Date:          mustDate(t, "2024-03-20"),
		})
		require.NoError(t, err)

		records, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, record.ID, records[0].ID)

		require.NoError(t, svc.Delete(ctx, record.ID))
		records, err = svc.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("Last Obligation Round Trip", func(t *testing.T) {
		saved := &domain.LastObligation{
			AmountReference: decimal.RequireFromString("250.004"),
			DisplayCurrency: "EUR",
			AmountDisplay:   decimal.RequireFromString("230.5"),
			CalculatedAt:    time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC),
		}
		require.NoError(t, repos.obligations.SaveLast(ctx, saved))

		got, err := repos.obligations.GetLast(ctx)
		require.NoError(t, err)
		assert.Equal(t, "250.00", got.AmountReference.StringFixed(2))
		assert.Equal(t, "230.50", got.AmountDisplay.StringFixed(2))
		assert.Equal(t, domain.CurrencyCode("EUR"), got.DisplayCurrency)
		assert.True(t, saved.CalculatedAt.Equal(got.CalculatedAt))
	})

	t.Run("Preferences Round Trip", func(t *testing.T) {
		prefs := &domain.CurrencyPreferences{GoldCurrency: "GBP", SilverCurrency: "USD", DisplayCurrency: "PKR"}
		require.NoError(t, repos.preferences.Save(ctx, prefs))

		got, err := repos.preferences.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, *prefs, *got)
	})
}

func newRecord(t *testing.T, name string, category domain.RecipientCategory, amount, date string) domain.DistributionRecord {
	t.Helper()
	return domain.DistributionRecord{
		ID:            uuid.New(),
		RecipientName: name,
		Category:      category,
		Amount:        decimal.RequireFromString(amount),
		Currency:      domain.ReferenceCurrency,
		Date:          mustDate(t, date),
		CreatedAt:     time.Now().UTC().Truncate(time.Millisecond),
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, s)
	require.NoError(t, err)
	return d
}

func assertSameRecord(t *testing.T, want, got domain.DistributionRecord) {
	t.Helper()
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.RecipientName, got.RecipientName)
	assert.Equal(t, want.Category, got.Category)
	assert.True(t, want.Amount.Equal(got.Amount), "amount %s != %s", want.Amount, got.Amount)
	assert.Equal(t, want.Currency, got.Currency)
	assert.Equal(t, want.Date.Format(domain.DateLayout), got.Date.Format(domain.DateLayout))
	assert.WithinDuration(t, want.CreatedAt, got.CreatedAt, time.Millisecond)
}
