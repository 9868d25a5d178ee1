package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/simaogato/zakatflow-backend/internal/domain"
)

// RecordLister returns the ledger records (the ledger service satisfies it)
type RecordLister interface {
	List(ctx context.Context) ([]domain.DistributionRecord, error)
}

// ObligationReader returns the last persisted obligation (the calculator service satisfies it)
type ObligationReader interface {
	LastObligation(ctx context.Context) (*domain.LastObligation, error)
}

// ReportService produces the CSV export and the final report from the current state
type ReportService struct {
	Currencies  *domain.CurrencyTable
	Records     RecordLister
	Obligations ObligationReader

	now func() time.Time
}

// NewReportService creates a new ReportService
func NewReportService(currencies *domain.CurrencyTable, records RecordLister, obligations ObligationReader) *ReportService {
	return &ReportService{
		Currencies:  currencies,
		Records:     records,
		Obligations: obligations,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// FinalReport builds the report from the ledger and the last obligation.
// A missing obligation yields ErrNoObligation.
func (s *ReportService) FinalReport(ctx context.Context) (*FinalReport, error) {
	records, err := s.Records.List(ctx)
	if err != nil {
		return nil, err
	}

	last, err := s.Obligations.LastObligation(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to load last obligation: %w", err)
	}

	return Build(s.Currencies, records, last, s.now())
}

// ExportCSV writes every record as CSV to w and returns the suggested file name
func (s *ReportService) ExportCSV(ctx context.Context, w io.Writer) (string, error) {
	records, err := s.Records.List(ctx)
	if err != nil {
		return "", err
	}
	if err := WriteCSV(w, records); err != nil {
		return "", err
	}
	return ExportFileName(s.now().Format(domain.DateLayout)), nil
}
