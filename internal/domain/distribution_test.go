package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDistributionRecord_Validate(t *testing.T) {
	date := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		record  DistributionRecord
		wantErr bool
		errMsg  string
	}{
		{
			name: "Complete record should pass",
			record: DistributionRecord{
				ID:            uuid.New(),
				RecipientName: "Local food bank",
				Category:      RecipientFuqara,
				Amount:        decimal.NewFromInt(100),
				Currency:      "USD",
				Date:          date,
			},
			wantErr: false,
		},
		{
			name: "Blank recipient should fail",
			record: DistributionRecord{
				RecipientName: "   ",
				Category:      RecipientFuqara,
				Amount:        decimal.NewFromInt(100),
				Date:          date,
			},
			wantErr: true,
			errMsg:  "recipient name cannot be empty",
		},
		{
			name: "Unselected category should fail",
			record: DistributionRecord{
				RecipientName: "Ahmad",
				Amount:        decimal.NewFromInt(100),
				Date:          date,
			},
			wantErr: true,
			errMsg:  "recipient category must be selected",
		},
		{
			name: "Unknown category should fail",
			record: DistributionRecord{
				RecipientName: "Ahmad",
				Category:      "FRIENDS",
				Amount:        decimal.NewFromInt(100),
				Date:          date,
			},
			wantErr: true,
			errMsg:  "invalid",
		},
		{
			name: "Zero amount should fail",
			record: DistributionRecord{
				RecipientName: "Ahmad",
				Category:      RecipientGharimin,
				Amount:        decimal.Zero,
				Date:          date,
			},
			wantErr: true,
			errMsg:  "distribution amount must be positive",
		},
		{
			name: "Negative amount should fail",
			record: DistributionRecord{
				RecipientName: "Ahmad",
				Category:      RecipientGharimin,
				Amount:        decimal.NewFromInt(-10),
				Date:          date,
			},
			wantErr: true,
			errMsg:  "distribution amount must be positive",
		},
		{
			name: "Missing date should fail",
			record: DistributionRecord{
				RecipientName: "Ahmad",
				Category:      RecipientGharimin,
				Amount:        decimal.NewFromInt(10),
			},
			wantErr: true,
			errMsg:  "distribution date must be provided",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseRecipientCategory(t *testing.T) {
	assert.Equal(t, RecipientIbnAsSabil, ParseRecipientCategory("ibn-as-sabil"))
	assert.Equal(t, RecipientFiSabilillah, ParseRecipientCategory(" fi sabilillah "))
	assert.Equal(t, "Masakin (The Needy)", RecipientMasakin.Label())
	assert.Len(t, RecipientCategories(), 8)
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2026, 3, 20, 17, 45, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC), DateOnly(ts))
	assert.True(t, DateOnly(time.Time{}).IsZero())
}
