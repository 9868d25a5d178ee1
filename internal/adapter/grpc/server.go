package grpc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	zakatv1 "github.com/simaogato/zakatflow-backend/internal/adapter/grpc/zakat/v1"
	"github.com/simaogato/zakatflow-backend/internal/domain"
	"github.com/simaogato/zakatflow-backend/internal/usecase/calculator"
	"github.com/simaogato/zakatflow-backend/internal/usecase/ledger"
	"github.com/simaogato/zakatflow-backend/internal/usecase/pricefeed"
	"github.com/simaogato/zakatflow-backend/internal/usecase/report"
)

// Server implements the ZakatService gRPC server
type Server struct {
	zakatv1.UnimplementedZakatServiceServer

	CalculatorService *calculator.CalculatorService
	LedgerService     *ledger.LedgerService
	ReportService     *report.ReportService
	Collector         *pricefeed.Collector // nil when no live feed is configured
	Prices            *pricefeed.PriceCell
	Currencies        *domain.CurrencyTable
}

// NewServer creates a new gRPC server instance
func NewServer(
	calculatorService *calculator.CalculatorService,
	ledgerService *ledger.LedgerService,
	reportService *report.ReportService,
	collector *pricefeed.Collector,
	prices *pricefeed.PriceCell,
	currencies *domain.CurrencyTable,
) *Server {
	return &Server{
		CalculatorService: calculatorService,
		LedgerService:     ledgerService,
		ReportService:     reportService,
		Collector:         collector,
		Prices:            prices,
		Currencies:        currencies,
	}
}

// ListCurrencies handles the ListCurrencies RPC
func (s *Server) ListCurrencies(ctx context.Context, req *zakatv1.ListCurrenciesRequest) (*zakatv1.ListCurrenciesResponse, error) {
	rates := s.Currencies.Rates()
	resp := &zakatv1.ListCurrenciesResponse{
		ReferenceCurrency: string(domain.ReferenceCurrency),
		Currencies:        make([]*zakatv1.Currency, 0, len(rates)),
	}
	for _, rate := range rates {
		resp.Currencies = append(resp.Currencies, &zakatv1.Currency{
			Code:            string(rate.Code),
			Name:            rate.DisplayName,
			Symbol:          rate.Symbol,
			RateToReference: rate.RateToReference.String(),
		})
	}
	return resp, nil
}

// EvaluateNisab handles the EvaluateNisab RPC
func (s *Server) EvaluateNisab(ctx context.Context, req *zakatv1.EvaluateNisabRequest) (*zakatv1.EvaluateNisabResponse, error) {
	prices, err := parseMetalPrices(req.GetGoldPrice(), req.GetSilverPrice())
	if err != nil {
		return nil, err
	}

	view, err := s.CalculatorService.EvaluateNisab(calculator.NisabQuery{
		Prices:          prices,
		DisplayCurrency: domain.CurrencyCode(strings.ToUpper(req.DisplayCurrency)),
		UseLivePrices:   req.UseLivePrices,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &zakatv1.EvaluateNisabResponse{
		DisplayCurrency:  string(view.DisplayCurrency),
		GoldThreshold:    view.GoldThresholdDisplay.StringFixed(2),
		SilverThreshold:  view.SilverThresholdDisplay.StringFixed(2),
		BindingThreshold: view.BindingThresholdDisplay.StringFixed(2),
		BindingMetal:     string(view.Snapshot.BindingMetal),
		Status:           string(view.Status),
		StatusMessage:    view.Status.Message(),
	}, nil
}

// Calculate handles the Calculate RPC
func (s *Server) Calculate(ctx context.Context, req *zakatv1.CalculateRequest) (*zakatv1.CalculateResponse, error) {
	prices, err := parseMetalPrices(req.GetGoldPrice(), req.GetSilverPrice())
	if err != nil {
		return nil, err
	}

	entries := make([]domain.AssetEntry, 0, len(req.Entries))
	for i, e := range req.Entries {
		amount, err := parseDecimal(fmt.Sprintf("entries[%d].amount", i), e.GetAmount())
		if err != nil {
			return nil, err
		}
		entries = append(entries, domain.AssetEntry{
			Category: domain.AssetCategory(strings.ToUpper(e.GetCategory())),
			Amount:   amount,
			Currency: domain.CurrencyCode(strings.ToUpper(e.GetCurrency())),
			Unit:     domain.WeightUnit(e.GetUnit()),
			Purity:   domain.Purity(e.GetPurity()),
		})
	}

	result, err := s.CalculatorService.Calculate(ctx, domain.CalculationInput{
		Entries:         entries,
		Prices:          prices,
		DisplayCurrency: domain.CurrencyCode(strings.ToUpper(req.DisplayCurrency)),
		UseLivePrices:   req.UseLivePrices,
	})
	if err != nil {
		return nil, mapError(err)
	}

	b := result.BreakdownDisplay
	return &zakatv1.CalculateResponse{
		Status:                    string(result.Status),
		StatusMessage:             result.Status.Message(),
		IsDue:                     result.IsDue,
		DisplayCurrency:           string(result.DisplayCurrency),
		NetWealth:                 result.NetWealthDisplay.StringFixed(2),
		BindingThreshold:          result.BindingThresholdDisplay.StringFixed(2),
		BindingMetal:              string(result.Nisab.BindingMetal),
		DueAmount:                 result.DueAmountDisplay.StringFixed(2),
		NetWealthReference:        result.NetWealthReference.StringFixed(2),
		BindingThresholdReference: result.BindingThresholdReference.StringFixed(2),
		DueAmountReference:        result.DueAmountReference.StringFixed(2),
		Breakdown: &zakatv1.Breakdown{
			Gold:              b.Gold.StringFixed(2),
			Silver:            b.Silver.StringFixed(2),
			Cash:              b.Cash.StringFixed(2),
			BusinessInventory: b.BusinessInventory.StringFixed(2),
			OtherAssets:       b.OtherAssets.StringFixed(2),
			Liabilities:       b.Liabilities.StringFixed(2),
		},
		GoldGrams:    result.GoldGrams.String(),
		SilverGrams:  result.SilverGrams.String(),
		CalculatedAt: timestamppb.New(result.CalculatedAt),
	}, nil
}

// GetPreferences handles the GetPreferences RPC
func (s *Server) GetPreferences(ctx context.Context, req *zakatv1.GetPreferencesRequest) (*zakatv1.PreferencesResponse, error) {
	prefs, err := s.CalculatorService.GetPreferences(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return &zakatv1.PreferencesResponse{Preferences: toPreferencesMessage(prefs)}, nil
}

// SavePreferences handles the SavePreferences RPC
func (s *Server) SavePreferences(ctx context.Context, req *zakatv1.SavePreferencesRequest) (*zakatv1.PreferencesResponse, error) {
	prefs, err := s.CalculatorService.SavePreferences(ctx, domain.CurrencyPreferences{
		GoldCurrency:    domain.CurrencyCode(strings.ToUpper(req.GetPreferences().GetGoldCurrency())),
		SilverCurrency:  domain.CurrencyCode(strings.ToUpper(req.GetPreferences().GetSilverCurrency())),
		DisplayCurrency: domain.CurrencyCode(strings.ToUpper(req.GetPreferences().GetDisplayCurrency())),
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &zakatv1.PreferencesResponse{Preferences: toPreferencesMessage(prefs)}, nil
}

// AddDistribution handles the AddDistribution RPC
func (s *Server) AddDistribution(ctx context.Context, req *zakatv1.AddDistributionRequest) (*zakatv1.AddDistributionResponse, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount format: %v", err)
	}

	if req.Date == "" {
		return nil, status.Error(codes.InvalidArgument, "date is required, expected YYYY-MM-DD")
	}
	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid date format, expected YYYY-MM-DD: %v", err)
	}

	record, err := s.LedgerService.Add(ctx, ledger.AddDistributionInput{
		RecipientName: req.RecipientName,
		Category:      domain.ParseRecipientCategory(req.Category),
		Amount:        amount,
		Currency:      domain.CurrencyCode(strings.ToUpper(req.Currency)),
		Date:          date,
		Notes:         req.Notes,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &zakatv1.AddDistributionResponse{Record: toRecordMessage(record)}, nil
}

// DeleteDistribution handles the DeleteDistribution RPC
func (s *Server) DeleteDistribution(ctx context.Context, req *zakatv1.DeleteDistributionRequest) (*zakatv1.DeleteDistributionResponse, error) {
	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid id format: %v", err)
	}
	if err := s.LedgerService.Delete(ctx, id); err != nil {
		return nil, mapError(err)
	}
	return &zakatv1.DeleteDistributionResponse{}, nil
}

// ClearDistributions handles the ClearDistributions RPC. The caller must confirm explicitly.
func (s *Server) ClearDistributions(ctx context.Context, req *zakatv1.ClearDistributionsRequest) (*zakatv1.ClearDistributionsResponse, error) {
	if !req.Confirm {
		return nil, status.Error(codes.FailedPrecondition, "clearing the ledger requires confirm=true")
	}
	if err := s.LedgerService.Clear(ctx); err != nil {
		return nil, mapError(err)
	}
	return &zakatv1.ClearDistributionsResponse{}, nil
}

// ListDistributions handles the ListDistributions RPC
func (s *Server) ListDistributions(ctx context.Context, req *zakatv1.ListDistributionsRequest) (*zakatv1.ListDistributionsResponse, error) {
	records, err := s.LedgerService.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &zakatv1.ListDistributionsResponse{Records: make([]*zakatv1.DistributionRecord, 0, len(records))}
	for i := range records {
		resp.Records = append(resp.Records, toRecordMessage(&records[i]))
	}
	return resp, nil
}

// GetDistributionSummary handles the GetDistributionSummary RPC
func (s *Server) GetDistributionSummary(ctx context.Context, req *zakatv1.GetDistributionSummaryRequest) (*zakatv1.DistributionSummary, error) {
	summary, err := s.LedgerService.Summary(ctx, domain.CurrencyCode(strings.ToUpper(req.DisplayCurrency)))
	if err != nil {
		return nil, mapError(err)
	}

	resp := &zakatv1.DistributionSummary{
		DisplayCurrency:  string(summary.DisplayCurrency),
		TotalDistributed: summary.TotalDistributedDisplay.StringFixed(2),
		TotalDue:         summary.TotalDueDisplay.StringFixed(2),
		Remaining:        summary.RemainingDisplay.StringFixed(2),
		ProgressPercent:  summary.ProgressPercent.StringFixed(1),
		RecordCount:      int32(summary.RecordCount),
		OverDistributed:  summary.OverDistributed,
	}
	if summary.MostRecentDate != nil {
		resp.MostRecentDate = summary.MostRecentDate.Format(domain.DateLayout)
	}
	return resp, nil
}

// ExportDistributions handles the ExportDistributions RPC
func (s *Server) ExportDistributions(ctx context.Context, req *zakatv1.ExportDistributionsRequest) (*zakatv1.ExportDistributionsResponse, error) {
	var buf bytes.Buffer
	name, err := s.ReportService.ExportCSV(ctx, &buf)
	if err != nil {
		return nil, mapError(err)
	}
	return &zakatv1.ExportDistributionsResponse{FileName: name, Csv: buf.Bytes()}, nil
}

// GenerateReport handles the GenerateReport RPC
func (s *Server) GenerateReport(ctx context.Context, req *zakatv1.GenerateReportRequest) (*zakatv1.GenerateReportResponse, error) {
	final, err := s.ReportService.FinalReport(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	var buf bytes.Buffer
	if err := final.RenderHTML(&buf); err != nil {
		return nil, mapError(err)
	}
	return &zakatv1.GenerateReportResponse{Html: buf.String()}, nil
}

// GetPriceHints handles the GetPriceHints RPC
func (s *Server) GetPriceHints(ctx context.Context, req *zakatv1.GetPriceHintsRequest) (*zakatv1.PriceHintsResponse, error) {
	return toHintsMessage(s.Prices.Hints()), nil
}

// RefreshPrices handles the RefreshPrices RPC. Failed metals keep their previous hint.
func (s *Server) RefreshPrices(ctx context.Context, req *zakatv1.RefreshPricesRequest) (*zakatv1.PriceHintsResponse, error) {
	if s.Collector == nil {
		return nil, status.Error(codes.Unavailable, "live price feed is disabled")
	}
	s.Collector.RefreshAll(ctx)
	return toHintsMessage(s.Prices.Hints()), nil
}

func parseDecimal(field, value string) (decimal.Decimal, error) {
	if strings.TrimSpace(value) == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return d, nil
}

func parseMetalPrices(gold, silver *zakatv1.MetalPrice) (domain.MetalPrices, error) {
	var prices domain.MetalPrices
	if gold != nil {
		p, err := parseDecimal("gold_price.price_per_gram", gold.PricePerGram)
		if err != nil {
			return prices, err
		}
		prices.Gold = domain.MetalPrice{PricePerGram: p, Currency: domain.CurrencyCode(strings.ToUpper(gold.Currency))}
	}
	if silver != nil {
		p, err := parseDecimal("silver_price.price_per_gram", silver.PricePerGram)
		if err != nil {
			return prices, err
		}
		prices.Silver = domain.MetalPrice{PricePerGram: p, Currency: domain.CurrencyCode(strings.ToUpper(silver.Currency))}
	}
	return prices, nil
}

func toPreferencesMessage(prefs *domain.CurrencyPreferences) *zakatv1.Preferences {
	return &zakatv1.Preferences{
		GoldCurrency:    string(prefs.GoldCurrency),
		SilverCurrency:  string(prefs.SilverCurrency),
		DisplayCurrency: string(prefs.DisplayCurrency),
	}
}

func toRecordMessage(r *domain.DistributionRecord) *zakatv1.DistributionRecord {
	return &zakatv1.DistributionRecord{
		Id:            r.ID.String(),
		RecipientName: r.RecipientName,
		Category:      string(r.Category),
		CategoryLabel: r.Category.Label(),
		Amount:        r.Amount.StringFixed(2),
		Currency:      string(r.Currency),
		Date:          r.Date.Format(domain.DateLayout),
		HijriDate:     domain.ToHijri(r.Date).String(),
		Notes:         r.Notes,
		CreatedAt:     timestamppb.New(r.CreatedAt),
	}
}

func toHintsMessage(hints []domain.PriceHint) *zakatv1.PriceHintsResponse {
	resp := &zakatv1.PriceHintsResponse{Hints: make([]*zakatv1.PriceHint, 0, len(hints))}
	for _, h := range hints {
		hint := &zakatv1.PriceHint{
			Metal:        string(h.Metal),
			PricePerGram: h.PricePerGram.StringFixed(4),
			Source:       string(h.Source),
		}
		if !h.ObservedAt.IsZero() {
			hint.ObservedAt = timestamppb.New(h.ObservedAt)
		}
		resp.Hints = append(resp.Hints, hint)
	}
	return resp
}

// mapError maps domain errors to gRPC status codes
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	errorMsg := err.Error()

	switch {
	case errors.Is(err, domain.ErrValidation):
		return status.Errorf(codes.InvalidArgument, "%s", errorMsg)
	case errors.Is(err, domain.ErrNotFound):
		return status.Errorf(codes.NotFound, "%s", errorMsg)
	case errors.Is(err, context.Canceled):
		return status.Errorf(codes.Canceled, "%s", errorMsg)
	case errors.Is(err, context.DeadlineExceeded):
		return status.Errorf(codes.DeadlineExceeded, "%s", errorMsg)
	}

	// Errors from outside the domain that carry no sentinel
	if strings.Contains(errorMsg, "must be positive") ||
		strings.Contains(errorMsg, "invalid") ||
		strings.Contains(errorMsg, "cannot be") {
		return status.Errorf(codes.InvalidArgument, "%s", errorMsg)
	}
	if strings.Contains(errorMsg, "not found") {
		return status.Errorf(codes.NotFound, "%s", errorMsg)
	}

	return status.Errorf(codes.Internal, "%s", errorMsg)
}
