package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/simaogato/zakatflow-backend/internal/domain"
)

// CSVHeader is the first row of every export
var CSVHeader = []string{"Date (Gregorian)", "Date (Hijri)", "Recipient Name", "Category", "Amount", "Currency", "Notes"}

// LongDateLayout renders dates the way the exported files show them
const LongDateLayout = "January 2, 2006"

// WriteCSV writes the records, in the order given, as a CSV document
func WriteCSV(w io.Writer, records []domain.DistributionRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Date.Format(LongDateLayout),
			domain.ToHijri(r.Date).String(),
			r.RecipientName,
			string(r.Category),
			r.Amount.String(),
			string(r.Currency),
			r.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row for %s: %w", r.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportFileName is the suggested name of an export produced on the given day
func ExportFileName(day string) string {
	return fmt.Sprintf("Zakat-Distribution-%s.csv", day)
}
