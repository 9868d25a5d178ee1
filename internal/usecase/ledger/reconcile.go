package ledger

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/zakatflow-backend/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Reconciliation compares what was distributed with what the last calculation said was due
type Reconciliation struct {
	DisplayCurrency           domain.CurrencyCode
	TotalDistributedReference decimal.Decimal
	TotalDueReference         decimal.Decimal
	TotalDistributedDisplay   decimal.Decimal
	TotalDueDisplay           decimal.Decimal
	RemainingDisplay          decimal.Decimal // never negative
	ProgressPercent           decimal.Decimal // within [0, 100]
	RecordCount               int
	MostRecentDate            *time.Time
	OverDistributed           bool
}

// Reconcile sums the records in the reference currency and compares them with the due amount.
// Logic:
//  1. Every record is converted to the reference currency and summed
//  2. Progress = distributed / due x 100, capped at 100; 0 when nothing is due
//  3. Remaining = due - distributed in the display currency, floored at 0
//
// The function is pure.
func Reconcile(
	table *domain.CurrencyTable,
	records []domain.DistributionRecord,
	dueReference decimal.Decimal,
	displayCurrency domain.CurrencyCode,
) Reconciliation {
	if displayCurrency == "" {
		displayCurrency = domain.ReferenceCurrency
	}

	distributed := decimal.Zero
	var mostRecent *time.Time
	for i := range records {
		distributed = distributed.Add(table.ToReference(records[i].Amount, records[i].Currency))
		if mostRecent == nil || records[i].Date.After(*mostRecent) {
			date := records[i].Date
			mostRecent = &date
		}
	}

	progress := decimal.Zero
	if dueReference.IsPositive() {
		progress = decimal.Min(hundred, distributed.Mul(hundred).Div(dueReference))
	}

	distributedDisplay := table.FromReference(distributed, displayCurrency)
	dueDisplay := table.FromReference(dueReference, displayCurrency)
	remaining := decimal.Max(decimal.Zero, dueDisplay.Sub(distributedDisplay))

	return Reconciliation{
		DisplayCurrency:           displayCurrency,
		TotalDistributedReference: distributed,
		TotalDueReference:         dueReference,
		TotalDistributedDisplay:   distributedDisplay,
		TotalDueDisplay:           dueDisplay,
		RemainingDisplay:          remaining,
		ProgressPercent:           progress,
		RecordCount:               len(records),
		MostRecentDate:            mostRecent,
		OverDistributed:           dueReference.IsPositive() && distributed.GreaterThan(dueReference),
	}
}
