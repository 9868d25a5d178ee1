package report

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/simaogato/zakatflow-backend/internal/domain"
	"github.com/simaogato/zakatflow-backend/internal/usecase/ledger"
)

// ErrNoObligation is returned when a report is requested before any obligation was calculated
var ErrNoObligation = fmt.Errorf("%w: calculate the obligation before generating a report", domain.ErrValidation)

// Row is one numbered line of the report table
type Row struct {
	Number        int
	Date          string
	HijriDate     string
	RecipientName string
	Category      string
	Amount        string
	Notes         string
}

// FinalReport is the flattened model rendered into the printable document
type FinalReport struct {
	GeneratedAt      string
	GeneratedAtHijri string
	Currency         domain.CurrencyCode
	TotalDue         string
	TotalDistributed string
	Remaining        string
	Completed        bool
	ProgressPercent  string
	RecordCount      int
	Rows             []Row
	Reconciliation   ledger.Reconciliation
}

// Build assembles the final report for the records, newest first, in the currency of the last obligation.
// It fails with ErrNoObligation when nothing was calculated or the last calculation found nothing due.
func Build(table *domain.CurrencyTable, records []domain.DistributionRecord, last *domain.LastObligation, now time.Time) (*FinalReport, error) {
	if last == nil || !last.AmountReference.IsPositive() {
		return nil, ErrNoObligation
	}

	sorted := append([]domain.DistributionRecord(nil), records...)
	ledger.SortNewestFirst(sorted)

	currency := last.DisplayCurrency
	if currency == "" {
		currency = domain.ReferenceCurrency
	}
	symbol := table.Symbol(currency)
	rec := ledger.Reconcile(table, sorted, last.AmountReference, currency)

	report := &FinalReport{
		GeneratedAt:      now.Format(LongDateLayout),
		GeneratedAtHijri: domain.ToHijri(now).String(),
		Currency:         currency,
		TotalDue:         domain.FormatAmount(symbol, rec.TotalDueDisplay),
		TotalDistributed: domain.FormatAmount(symbol, rec.TotalDistributedDisplay),
		Remaining:        domain.FormatAmount(symbol, rec.RemainingDisplay),
		Completed:        !rec.RemainingDisplay.IsPositive(),
		ProgressPercent:  rec.ProgressPercent.StringFixed(1),
		RecordCount:      len(sorted),
		Rows:             make([]Row, 0, len(sorted)),
		Reconciliation:   rec,
	}

	for i, r := range sorted {
		notes := r.Notes
		if notes == "" {
			notes = "-"
		}
		report.Rows = append(report.Rows, Row{
			Number:        i + 1,
			Date:          r.Date.Format("Jan 2, 2006"),
			HijriDate:     domain.ToHijri(r.Date).String(),
			RecipientName: r.RecipientName,
			Category:      r.Category.Label(),
			Amount:        domain.FormatAmount(recordSymbol(table, r.Currency), r.Amount),
			Notes:         notes,
		})
	}

	return report, nil
}

// recordSymbol falls back to the code itself for currencies outside the table
func recordSymbol(table *domain.CurrencyTable, code domain.CurrencyCode) string {
	if rate, ok := table.Lookup(code); ok {
		return rate.Symbol
	}
	return string(code)
}

var finalReportTemplate = template.Must(template.New("final-report").Parse(FinalReportTemplate))

// RenderHTML writes the report as a standalone printable HTML document
func (r *FinalReport) RenderHTML(w io.Writer) error {
	if err := finalReportTemplate.Execute(w, r); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}
