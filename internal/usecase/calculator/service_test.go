package calculator

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/simaogato/zakatflow-backend/internal/adapter/repository/filestore"
	"github.com/simaogato/zakatflow-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockObligationRepository is a mock implementation of ObligationRepository for testing
type MockObligationRepository struct {
	mock.Mock
}

func (m *MockObligationRepository) GetLast(ctx context.Context) (*domain.LastObligation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LastObligation), args.Error(1)
}

func (m *MockObligationRepository) SaveLast(ctx context.Context, obligation *domain.LastObligation) error {
	args := m.Called(ctx, obligation)
	return args.Error(0)
}

// MockPreferencesRepository is a mock implementation of PreferencesRepository for testing
type MockPreferencesRepository struct {
	mock.Mock
}

func (m *MockPreferencesRepository) Get(ctx context.Context) (*domain.CurrencyPreferences, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyPreferences), args.Error(1)
}

func (m *MockPreferencesRepository) Save(ctx context.Context, prefs *domain.CurrencyPreferences) error {
	args := m.Called(ctx, prefs)
	return args.Error(0)
}

type staticHints map[domain.Metal]decimal.Decimal

func (h staticHints) Hint(metal domain.Metal) domain.PriceHint {
	return domain.PriceHint{Metal: metal, PricePerGram: h[metal], Source: domain.PriceSourceLive}
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func usd(price string) domain.MetalPrice {
	return domain.MetalPrice{PricePerGram: d(price), Currency: "USD"}
}

func cash(amount string) domain.AssetEntry {
	return domain.AssetEntry{Category: domain.AssetCategoryCash, Amount: d(amount), Currency: "USD"}
}

func newService(obligations *MockObligationRepository, prefs *MockPreferencesRepository, hints PriceHints) *CalculatorService {
	return NewCalculatorService(domain.DefaultCurrencyTable(nil), obligations, prefs, hints, nil, nil)
}

func TestCalculate_StatusScenarios(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name            string
		entries         []domain.AssetEntry
		prices          domain.MetalPrices
		expectedStatus  domain.ObligationStatus
		expectedDue     decimal.Decimal
		expectedBinding decimal.Decimal
		persisted       bool
	}{
		{
			name:            "Due scenario",
			entries:         []domain.AssetEntry{cash("10000")},
			prices:          domain.MetalPrices{Gold: usd("70"), Silver: usd("0.9")},
			expectedStatus:  domain.ObligationDue,
			expectedDue:     d("250"),
			expectedBinding: d("551.124"),
			persisted:       true,
		},
		{
			name:            "Below threshold scenario",
			entries:         []domain.AssetEntry{cash("300")},
			prices:          domain.MetalPrices{Gold: usd("70"), Silver: usd("0.9")},
			expectedStatus:  domain.ObligationBelowNisab,
			expectedDue:     decimal.Zero,
			expectedBinding: d("551.124"),
			persisted:       true,
		},
		{
			name:            "No prices is indeterminate",
			entries:         []domain.AssetEntry{cash("10000")},
			prices:          domain.MetalPrices{},
			expectedStatus:  domain.ObligationIndeterminate,
			expectedDue:     decimal.Zero,
			expectedBinding: decimal.Zero,
		},
		{
			name:            "Only gold price uses gold threshold",
			entries:         []domain.AssetEntry{cash("5000")},
			prices:          domain.MetalPrices{Gold: usd("70")},
			expectedStatus:  domain.ObligationBelowNisab,
			expectedDue:     decimal.Zero,
			expectedBinding: d("6123.6"),
			persisted:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obligations := new(MockObligationRepository)
			service := newService(obligations, new(MockPreferencesRepository), nil)

			if tt.persisted {
				obligations.On("SaveLast", ctx, mock.MatchedBy(func(last *domain.LastObligation) bool {
					return last.AmountReference.Equal(tt.expectedDue) && last.DisplayCurrency == "USD"
				})).Return(nil)
			}

			result, err := service.Calculate(ctx, domain.CalculationInput{Entries: tt.entries, Prices: tt.prices})

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, result.Status)
			assert.Equal(t, tt.expectedStatus == domain.ObligationDue, result.IsDue)
			assert.True(t, tt.expectedDue.Equal(result.DueAmountReference), "due: %s", result.DueAmountReference)
			assert.True(t, tt.expectedBinding.Equal(result.BindingThresholdReference), "binding: %s", result.BindingThresholdReference)
			obligations.AssertExpectations(t)
			if !tt.persisted {
				obligations.AssertNotCalled(t, "SaveLast", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestCalculate_IndeterminateKeepsPreviousObligation(t *testing.T) {
	ctx := context.Background()
	db, err := filestore.NewDB(filepath.Join(t.TempDir(), "store"))
	require.NoError(t, err)
	obligations := filestore.NewObligationRepository(db)
	service := NewCalculatorService(domain.DefaultCurrencyTable(nil), obligations, filestore.NewPreferencesRepository(db), nil, nil, nil)

	due, err := service.Calculate(ctx, domain.CalculationInput{
		Entries: []domain.AssetEntry{cash("10000")},
		Prices:  domain.MetalPrices{Gold: usd("70"), Silver: usd("0.9")},
	})
	require.NoError(t, err)
	require.Equal(t, domain.ObligationDue, due.Status)

	unknown, err := service.Calculate(ctx, domain.CalculationInput{Entries: []domain.AssetEntry{cash("20000")}})
	require.NoError(t, err)
	assert.Equal(t, domain.ObligationIndeterminate, unknown.Status)
	assert.True(t, unknown.DueAmountReference.IsZero())

	last, err := service.LastObligation(ctx)
	require.NoError(t, err)
	assert.Equal(t, "250.00", last.AmountReference.StringFixed(2))
	assert.True(t, due.CalculatedAt.Equal(last.CalculatedAt))
}

func TestCalculate_DisplayCurrency(t *testing.T) {
	ctx := context.Background()
	obligations := new(MockObligationRepository)
	service := newService(obligations, new(MockPreferencesRepository), nil)
	table := domain.DefaultCurrencyTable(nil)

	obligations.On("SaveLast", ctx, mock.AnythingOfType("*domain.LastObligation")).Return(nil)

	result, err := service.Calculate(ctx, domain.CalculationInput{
		Entries: []domain.AssetEntry{
			{Category: domain.AssetCategoryCash, Amount: d("9200"), Currency: "EUR"},
		},
		Prices:          domain.MetalPrices{Silver: domain.MetalPrice{PricePerGram: d("0.828"), Currency: "EUR"}},
		DisplayCurrency: "EUR",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ObligationDue, result.Status)
	assert.True(t, d("8464").Equal(result.NetWealthReference), "net: %s", result.NetWealthReference)
	assert.True(t, d("211.6").Equal(result.DueAmountReference))
	assert.True(t, table.FromReference(d("211.6"), "EUR").Equal(result.DueAmountDisplay))
	assert.True(t, d("9200").Equal(result.BreakdownDisplay.Cash))
	assert.Equal(t, domain.CurrencyCode("EUR"), result.DisplayCurrency)
}

func TestCalculate_UsesLivePriceHints(t *testing.T) {
	ctx := context.Background()
	obligations := new(MockObligationRepository)
	hints := staticHints{domain.MetalGold: d("70"), domain.MetalSilver: d("0.9")}
	service := newService(obligations, new(MockPreferencesRepository), hints)

	obligations.On("SaveLast", ctx, mock.Anything).Return(nil)

	result, err := service.Calculate(ctx, domain.CalculationInput{
		Entries:       []domain.AssetEntry{cash("10000")},
		UseLivePrices: true,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ObligationDue, result.Status)
	assert.Equal(t, domain.MetalSilver, result.Nisab.BindingMetal)
	assert.True(t, d("70").Equal(result.PricesUsed.Gold.PricePerGram))
}

func TestCalculate_EnteredPriceWinsOverHint(t *testing.T) {
	ctx := context.Background()
	obligations := new(MockObligationRepository)
	hints := staticHints{domain.MetalGold: d("70"), domain.MetalSilver: d("0.9")}
	service := newService(obligations, new(MockPreferencesRepository), hints)

	obligations.On("SaveLast", ctx, mock.Anything).Return(nil)

	result, err := service.Calculate(ctx, domain.CalculationInput{
		Prices:        domain.MetalPrices{Silver: usd("2")},
		UseLivePrices: true,
	})

	require.NoError(t, err)
	assert.True(t, d("2").Equal(result.PricesUsed.Silver.PricePerGram))
	assert.True(t, d("70").Equal(result.PricesUsed.Gold.PricePerGram))
}

func TestCalculate_ValidationFailureHasNoSideEffects(t *testing.T) {
	ctx := context.Background()
	obligations := new(MockObligationRepository)
	service := newService(obligations, new(MockPreferencesRepository), nil)

	result, err := service.Calculate(ctx, domain.CalculationInput{
		Entries: []domain.AssetEntry{cash("-5")},
		Prices:  domain.MetalPrices{Silver: usd("0.9")},
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrValidation)
	obligations.AssertNotCalled(t, "SaveLast", mock.Anything, mock.Anything)
}

func TestCalculate_RepositoryError(t *testing.T) {
	ctx := context.Background()
	obligations := new(MockObligationRepository)
	service := newService(obligations, new(MockPreferencesRepository), nil)

	obligations.On("SaveLast", ctx, mock.Anything).Return(errors.New("disk full"))

	result, err := service.Calculate(ctx, domain.CalculationInput{Entries: []domain.AssetEntry{cash("1")}})

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save last obligation")
}

func TestEvaluateNisab(t *testing.T) {
	service := newService(new(MockObligationRepository), new(MockPreferencesRepository), nil)

	view, err := service.EvaluateNisab(NisabQuery{
		Prices:          domain.MetalPrices{Gold: usd("70"), Silver: usd("0.9")},
		DisplayCurrency: "USD",
	})

	require.NoError(t, err)
	assert.True(t, d("6123.6").Equal(view.GoldThresholdDisplay))
	assert.True(t, d("551.124").Equal(view.SilverThresholdDisplay))
	assert.True(t, d("551.124").Equal(view.BindingThresholdDisplay))
	assert.Equal(t, domain.ObligationDue, view.Status)

	empty, err := service.EvaluateNisab(NisabQuery{})
	require.NoError(t, err)
	assert.Equal(t, domain.ObligationIndeterminate, empty.Status)
	assert.Equal(t, domain.ReferenceCurrency, empty.DisplayCurrency)

	_, err = service.EvaluateNisab(NisabQuery{Prices: domain.MetalPrices{Gold: usd("-1")}})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGetPreferences(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults when nothing is saved", func(t *testing.T) {
		prefs := new(MockPreferencesRepository)
		service := newService(new(MockObligationRepository), prefs, nil)
		prefs.On("Get", ctx).Return(nil, domain.ErrNotFound)

		got, err := service.GetPreferences(ctx)

		require.NoError(t, err)
		assert.Equal(t, domain.DefaultCurrencyPreferences(), *got)
	})

	t.Run("Saved preferences are returned", func(t *testing.T) {
		prefs := new(MockPreferencesRepository)
		service := newService(new(MockObligationRepository), prefs, nil)
		saved := &domain.CurrencyPreferences{GoldCurrency: "PKR", SilverCurrency: "PKR", DisplayCurrency: "EUR"}
		prefs.On("Get", ctx).Return(saved, nil)

		got, err := service.GetPreferences(ctx)

		require.NoError(t, err)
		assert.Equal(t, saved, got)
	})

	t.Run("Storage errors are wrapped", func(t *testing.T) {
		prefs := new(MockPreferencesRepository)
		service := newService(new(MockObligationRepository), prefs, nil)
		prefs.On("Get", ctx).Return(nil, errors.New("corrupt"))

		_, err := service.GetPreferences(ctx)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestSavePreferences(t *testing.T) {
	ctx := context.Background()
	prefs := new(MockPreferencesRepository)
	service := newService(new(MockObligationRepository), prefs, nil)

	prefs.On("Save", ctx, &domain.CurrencyPreferences{GoldCurrency: "GBP", SilverCurrency: "USD", DisplayCurrency: "EUR"}).Return(nil)

	got, err := service.SavePreferences(ctx, domain.CurrencyPreferences{GoldCurrency: "GBP", SilverCurrency: "USD", DisplayCurrency: "EUR"})
	require.NoError(t, err)
	assert.Equal(t, domain.CurrencyCode("EUR"), got.DisplayCurrency)
	prefs.AssertExpectations(t)

	_, err = service.SavePreferences(ctx, domain.CurrencyPreferences{GoldCurrency: "XYZ", SilverCurrency: "USD", DisplayCurrency: "USD"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLastObligation(t *testing.T) {
	ctx := context.Background()
	obligations := new(MockObligationRepository)
	service := newService(obligations, new(MockPreferencesRepository), nil)

	obligations.On("GetLast", ctx).Return(nil, domain.ErrNotFound).Once()
	_, err := service.LastObligation(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	stored := &domain.LastObligation{AmountReference: d("250"), DisplayCurrency: "USD", AmountDisplay: d("250")}
	obligations.On("GetLast", ctx).Return(stored, nil).Once()
	got, err := service.LastObligation(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}
