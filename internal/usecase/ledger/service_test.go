package ledger

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/zakatflow-backend/internal/adapter/repository/filestore"
	"github.com/simaogato/zakatflow-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// MockDistributionRepository is a mock implementation of DistributionRepository for testing
type MockDistributionRepository struct {
	mock.Mock
}

func (m *MockDistributionRepository) Load(ctx context.Context, ledger string) ([]domain.DistributionRecord, error) {
	args := m.Called(ctx, ledger)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DistributionRecord), args.Error(1)
}

func (m *MockDistributionRepository) Store(ctx context.Context, ledger string, records []domain.DistributionRecord) error {
	args := m.Called(ctx, ledger, records)
	return args.Error(0)
}

// Update replays the mutation over the Load and Store expectations
func (m *MockDistributionRepository) Update(ctx context.Context, ledger string, fn domain.LedgerMutation) error {
	current, err := m.Load(ctx, ledger)
	if err != nil {
		return err
	}
	next, err := fn(current)
	if err != nil {
		return err
	}
	return m.Store(ctx, ledger, next)
}

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

var fixedNow = time.Date(2026, 3, 21, 9, 30, 0, 0, time.UTC)

func newService(repo *MockDistributionRepository, obligations *MockObligationRepository) *LedgerService {
	s := NewLedgerService(domain.DefaultCurrencyTable(nil), repo, obligations, "", nil, nil)
	s.now = func() time.Time { return fixedNow }
	return s
}

func validInput() AddDistributionInput {
	return AddDistributionInput{
		RecipientName: "  Local food bank ",
		Category:      domain.RecipientFuqara,
		Amount:        d("100"),
		Currency:      "USD",
		Date:          time.Date(2026, 3, 20, 15, 0, 0, 0, time.UTC),
		Notes:         "Ramadan food parcels",
	}
}

func TestAdd_AppendsAndPersists(t *testing.T) {
	ctx := context.Background()
	repo := new(MockDistributionRepository)
	service := newService(repo, new(MockObligationRepository))

	existing := []domain.DistributionRecord{{ID: uuid.New(), RecipientName: "Earlier", Category: domain.RecipientMasakin, Amount: d("50"), Currency: "USD", Date: day(2026, 3, 1)}}
	repo.On("Load", ctx, domain.DefaultLedger).Return(existing, nil)
	repo.On("Store", ctx, domain.DefaultLedger, mock.MatchedBy(func(records []domain.DistributionRecord) bool {
		return len(records) == 2 && records[0].RecipientName == "Earlier" && records[1].RecipientName == "Local food bank"
	})).Return(nil)

	got, err := service.Add(ctx, validInput())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, uuid.Version(7), got.ID.Version())
	assert.Equal(t, "Local food bank", got.RecipientName)
	assert.Equal(t, day(2026, 3, 20), got.Date)
	assert.Equal(t, fixedNow, got.CreatedAt)
	repo.AssertExpectations(t)
}

func TestAdd_DefaultsCurrency(t *testing.T) {
	ctx := context.Background()
	repo := new(MockDistributionRepository)
	service := newService(repo, new(MockObligationRepository))

	repo.On("Load", ctx, domain.DefaultLedger).Return([]domain.DistributionRecord{}, nil)
	repo.On("Store", ctx, domain.DefaultLedger, mock.Anything).Return(nil)

	input := validInput()
	input.Currency = ""
	got, err := service.Add(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, domain.ReferenceCurrency, got.Currency)
}

func TestAdd_ValidationFailureLeavesLedgerUntouched(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*AddDistributionInput)
		errMsg string
	}{
		{"Empty recipient", func(in *AddDistributionInput) { in.RecipientName = " " }, "recipient name cannot be empty"},
		{"Unselected category", func(in *AddDistributionInput) { in.Category = "" }, "recipient category must be selected"},
		{"Unknown category", func(in *AddDistributionInput) { in.Category = "FRIENDS" }, "invalid"},
		{"Zero amount", func(in *AddDistributionInput) { in.Amount = d("0") }, "distribution amount must be positive"},
		{"Missing date", func(in *AddDistributionInput) { in.Date = time.Time{} }, "distribution date must be provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockDistributionRepository)
			service := newService(repo, new(MockObligationRepository))

			input := validInput()
			tt.mutate(&input)
			got, err := service.Add(ctx, input)

			assert.Nil(t, got)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tt.errMsg)
			repo.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAdd_IDGenerationFailure(t *testing.T) {
	repo := new(MockDistributionRepository)
	service := newService(repo, new(MockObligationRepository))
	service.newID = func() (uuid.UUID, error) { return uuid.Nil, errors.New("entropy exhausted") }

	_, err := service.Add(context.Background(), validInput())

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	keepID, dropID := uuid.New(), uuid.New()
	records := []domain.DistributionRecord{
		{ID: keepID, RecipientName: "A", Category: domain.RecipientAmil, Amount: d("10"), Currency: "USD", Date: day(2026, 3, 1)},
		{ID: dropID, RecipientName: "B", Category: domain.RecipientAmil, Amount: d("20"), Currency: "USD", Date: day(2026, 3, 2)},
	}

	t.Run("Existing id is removed", func(t *testing.T) {
		repo := new(MockDistributionRepository)
		service := newService(repo, new(MockObligationRepository))
		repo.On("Load", ctx, domain.DefaultLedger).Return(append([]domain.DistributionRecord(nil), records...), nil)
		repo.On("Store", ctx, domain.DefaultLedger, mock.MatchedBy(func(rs []domain.DistributionRecord) bool {
			return len(rs) == 1 && rs[0].ID == keepID
		})).Return(nil)

		require.NoError(t, service.Delete(ctx, dropID))
		repo.AssertExpectations(t)
	})

	t.Run("Missing id is a no-op", func(t *testing.T) {
		repo := new(MockDistributionRepository)
		service := newService(repo, new(MockObligationRepository))
		repo.On("Load", ctx, domain.DefaultLedger).Return(append([]domain.DistributionRecord(nil), records...), nil)

		require.NoError(t, service.Delete(ctx, uuid.New()))
		repo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Load error is returned", func(t *testing.T) {
		repo := new(MockDistributionRepository)
		service := newService(repo, new(MockObligationRepository))
		repo.On("Load", ctx, domain.DefaultLedger).Return(nil, errors.New("unreadable"))

		err := service.Delete(ctx, dropID)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to update distributions")
	})
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	repo := new(MockDistributionRepository)
	service := NewLedgerService(domain.DefaultCurrencyTable(nil), repo, new(MockObligationRepository), "household", nil, nil)

	repo.On("Load", ctx, "household").Return([]domain.DistributionRecord{record("10", "USD", day(2026, 3, 1))}, nil)
	repo.On("Store", ctx, "household", []domain.DistributionRecord{}).Return(nil)

	require.NoError(t, service.Clear(ctx))
	repo.AssertExpectations(t)
}

func TestAdd_ConcurrentAddsAreNotLost(t *testing.T) {
	db, err := filestore.NewDB(filepath.Join(t.TempDir(), "store"))
	require.NoError(t, err)
	service := NewLedgerService(domain.DefaultCurrencyTable(nil), filestore.NewDistributionRepository(db), filestore.NewObligationRepository(db), "", nil, nil)

	const writers = 50
	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < writers; i++ {
		g.Go(func() error {
			input := validInput()
			input.RecipientName = fmt.Sprintf("recipient %d", i)
			_, err := service.Add(ctx, input)
			return err
		})
	}
	require.NoError(t, g.Wait())

	records, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, writers)

	seen := make(map[string]bool, writers)
	for _, r := range records {
		seen[r.RecipientName] = true
	}
	assert.Len(t, seen, writers)
}

func TestUpdate_SeparateServicesShareTheStoreLock(t *testing.T) {
	db, err := filestore.NewDB(filepath.Join(t.TempDir(), "store"))
	require.NoError(t, err)

	// two services over one store, as two handlers built from the same wiring would be
	a := NewLedgerService(domain.DefaultCurrencyTable(nil), filestore.NewDistributionRepository(db), filestore.NewObligationRepository(db), "", nil, nil)
	b := NewLedgerService(domain.DefaultCurrencyTable(nil), filestore.NewDistributionRepository(db), filestore.NewObligationRepository(db), "", nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		svc := a
		if i%2 == 1 {
			svc = b
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Add(context.Background(), validInput())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	records, err := a.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 20)
}

func TestList_NewestDateFirst(t *testing.T) {
	ctx := context.Background()
	repo := new(MockDistributionRepository)
	service := newService(repo, new(MockObligationRepository))

	repo.On("Load", ctx, domain.DefaultLedger).Return([]domain.DistributionRecord{
		{RecipientName: "old", Date: day(2026, 1, 10)},
		{RecipientName: "newest", Date: day(2026, 3, 10), CreatedAt: fixedNow},
		{RecipientName: "middle", Date: day(2026, 2, 10)},
		{RecipientName: "newest-earlier-entry", Date: day(2026, 3, 10), CreatedAt: fixedNow.Add(-time.Hour)},
	}, nil)

	got, err := service.List(ctx)

	require.NoError(t, err)
	names := make([]string, 0, len(got))
	for _, r := range got {
		names = append(names, r.RecipientName)
	}
	assert.Equal(t, []string{"newest", "newest-earlier-entry", "middle", "old"}, names)
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	records := []domain.DistributionRecord{
		record("100", "USD", day(2026, 3, 1)),
		record("50", "USD", day(2026, 3, 2)),
	}

	t.Run("Reconciles against the last obligation", func(t *testing.T) {
		repo := new(MockDistributionRepository)
		obligations := new(MockObligationRepository)
		service := newService(repo, obligations)
		repo.On("Load", ctx, domain.DefaultLedger).Return(records, nil)
		obligations.On("GetLast", ctx).Return(&domain.LastObligation{AmountReference: d("250"), DisplayCurrency: "USD", AmountDisplay: d("250")}, nil)

		got, err := service.Summary(ctx, "")

		require.NoError(t, err)
		assert.True(t, d("150").Equal(got.TotalDistributedDisplay))
		assert.True(t, d("100").Equal(got.RemainingDisplay))
		assert.True(t, d("60").Equal(got.ProgressPercent))
		assert.Equal(t, domain.CurrencyCode("USD"), got.DisplayCurrency)
	})

	t.Run("No calculation yet means nothing is due", func(t *testing.T) {
		repo := new(MockDistributionRepository)
		obligations := new(MockObligationRepository)
		service := newService(repo, obligations)
		repo.On("Load", ctx, domain.DefaultLedger).Return(records, nil)
		obligations.On("GetLast", ctx).Return(nil, domain.ErrNotFound)

		got, err := service.Summary(ctx, "EUR")

		require.NoError(t, err)
		assert.True(t, got.TotalDueDisplay.IsZero())
		assert.True(t, got.ProgressPercent.IsZero())
		assert.Equal(t, domain.CurrencyCode("EUR"), got.DisplayCurrency)
	})

	t.Run("Obligation storage error is returned", func(t *testing.T) {
		repo := new(MockDistributionRepository)
		obligations := new(MockObligationRepository)
		service := newService(repo, obligations)
		repo.On("Load", ctx, domain.DefaultLedger).Return(records, nil)
		obligations.On("GetLast", ctx).Return(nil, errors.New("boom"))

		_, err := service.Summary(ctx, "")
		assert.Error(t, err)
	})
}
