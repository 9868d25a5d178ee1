//go:build integration

package integration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	zakatv1 "github.com/simaogato/zakatflow-backend/internal/adapter/grpc/zakat/v1"
)

// TestEndToEndFlow runs calculation, distribution and reporting against a live server.
// Manual prices keep the figures independent of the live feed.
func TestEndToEndFlow(t *testing.T) {
	client := requireServer(t)
	ctx := getAuthContext()

	gold := &zakatv1.MetalPrice{PricePerGram: "70", Currency: "USD"}
	silver := &zakatv1.MetalPrice{PricePerGram: "0.9", Currency: "USD"}

	// Step A: the silver Nisab binds
	nisab, err := client.EvaluateNisab(ctx, &zakatv1.EvaluateNisabRequest{
		GoldPrice: gold, SilverPrice: silver, DisplayCurrency: "USD",
	})
	require.NoError(t, err)
	assert.Equal(t, "SILVER", nisab.BindingMetal)
	assert.Equal(t, "551.12", nisab.BindingThreshold)

	// Step B: 10,000 in cash is due 250
	calc, err := client.Calculate(ctx, &zakatv1.CalculateRequest{
		Entries: []*zakatv1.AssetEntry{
			{Category: "CASH", Amount: "10000", Currency: "USD"},
		},
		GoldPrice: gold, SilverPrice: silver, DisplayCurrency: "USD",
	})
	require.NoError(t, err)
	assert.True(t, calc.IsDue)
	assert.Equal(t, "250.00", calc.DueAmount)

	// Step C: start from an empty ledger
	_, err = client.ClearDistributions(ctx, &zakatv1.ClearDistributionsRequest{Confirm: true})
	require.NoError(t, err)

	added, err := client.AddDistribution(ctx, &zakatv1.AddDistributionRequest{
		RecipientName: "Integration Recipient",
		Category:      "fuqara",
		Amount:        "100",
		Currency:      "USD",
		Date:          "2024-03-11",
	})
	require.NoError(t, err)
	assert.Equal(t, "1 Ramadan 1445", added.Record.HijriDate)

	summary, err := client.GetDistributionSummary(ctx, &zakatv1.GetDistributionSummaryRequest{DisplayCurrency: "USD"})
	require.NoError(t, err)
	assert.Equal(t, "100.00", summary.TotalDistributed)
	assert.Equal(t, "150.00", summary.Remaining)
	assert.Equal(t, "40.0", summary.ProgressPercent)
	assert.EqualValues(t, 1, summary.RecordCount)

	// Step D: the outputs mention the recipient
	export, err := client.ExportDistributions(ctx, &zakatv1.ExportDistributionsRequest{})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(export.FileName, ".csv"))
	assert.Contains(t, string(export.Csv), "Integration Recipient")

	report, err := client.GenerateReport(ctx, &zakatv1.GenerateReportRequest{})
	require.NoError(t, err)
	assert.Contains(t, report.Html, "Integration Recipient")

	// Step E: cleanup
	_, err = client.DeleteDistribution(ctx, &zakatv1.DeleteDistributionRequest{Id: added.Record.Id})
	require.NoError(t, err)

	// deleting again is a no-op
	_, err = client.DeleteDistribution(ctx, &zakatv1.DeleteDistributionRequest{Id: added.Record.Id})
	require.NoError(t, err)

	listed, err := client.ListDistributions(ctx, &zakatv1.ListDistributionsRequest{})
	require.NoError(t, err)
	assert.Empty(t, listed.Records)
}

func TestRejectsInvalidDistribution(t *testing.T) {
	client := requireServer(t)
	ctx := getAuthContext()

	_, err := client.AddDistribution(ctx, &zakatv1.AddDistributionRequest{
		RecipientName: "Nobody",
		Category:      "FUQARA",
		Amount:        "-5",
		Date:          "2024-03-11",
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.ClearDistributions(ctx, &zakatv1.ClearDistributionsRequest{})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}
