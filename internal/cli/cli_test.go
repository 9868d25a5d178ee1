package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/zakatflow-backend/internal/domain"
)

// useTempStore points the file backend at a fresh directory and disables the live feed
func useTempStore(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ZAKAT_STORE_BACKEND", "file")
	t.Setenv("ZAKAT_STORE_FILE_PATH", filepath.Join(dir, "zakat.json"))
	t.Setenv("ZAKAT_PRICEFEED_ENABLED", "false")
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "zakatctl dev")
}

func TestCurrencies(t *testing.T) {
	useTempStore(t)

	out, err := run(t, "currencies")
	require.NoError(t, err)
	assert.Contains(t, out, "PKR")
	assert.Contains(t, out, "Pakistani Rupee")
}

func TestNisab(t *testing.T) {
	useTempStore(t)

	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "Both Prices",
			args:     []string{"nisab", "--gold-price", "70", "--silver-price", "0.9"},
			expected: []string{"$ 6,123.60", "$ 551.12", "(silver)"},
		},
		{
			name:     "No Prices",
			args:     []string{"nisab"},
			expected: []string{"Enter valid gold or silver prices"},
		},
		{
			name:     "Default Prices From Hints",
			args:     []string{"nisab", "--live"},
			expected: []string{"(silver)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			for _, want := range tt.expected {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestCalcLedgerAndReport(t *testing.T) {
	dir := useTempStore(t)

	out, err := run(t, "calc", "--gold-price", "70", "--silver-price", "0.9", "--cash", "10000:USD")
	require.NoError(t, err)
	assert.Contains(t, out, "$ 10,000.00")
	assert.Contains(t, out, "$ 250.00")
	assert.Contains(t, out, domain.ObligationDue.Message())

	out, err = run(t, "ledger", "add", "--name", "Local food bank", "--category", "fuqara", "--amount", "100", "--date", "2024-03-11")
	require.NoError(t, err)
	assert.Contains(t, out, "Fuqara (The Poor)")

	_, err = run(t, "ledger", "add", "--name", "Debt relief", "--category", "gharimin", "--amount", "50", "--date", "2024-03-20")
	require.NoError(t, err)

	out, err = run(t, "ledger", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "$ 150.00")
	assert.Contains(t, out, "$ 100.00")
	assert.Contains(t, out, "60.0%")
	assert.Contains(t, out, "2024-03-20")

	out, err = run(t, "ledger", "list")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "Debt relief"), strings.Index(out, "Local food bank"), "newest first")
	assert.Contains(t, out, "1 Ramadan 1445")

	csvPath := filepath.Join(dir, "export.csv")
	_, err = run(t, "ledger", "export", "--out", csvPath)
	require.NoError(t, err)
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Local food bank")

	out, err = run(t, "report", "--out", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "Debt relief")
}

func TestLedgerAdd_Rejected(t *testing.T) {
	useTempStore(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "Missing Name", args: []string{"ledger", "add", "--category", "fuqara", "--amount", "10"}},
		{name: "Unknown Category", args: []string{"ledger", "add", "--name", "A", "--category", "friends", "--amount", "10"}},
		{name: "Zero Amount", args: []string{"ledger", "add", "--name", "A", "--category", "amil", "--amount", "abc"}},
		{name: "Bad Date", args: []string{"ledger", "add", "--name", "A", "--category", "amil", "--amount", "10", "--date", "11/03/2024"}},
		{name: "Empty Date", args: []string{"ledger", "add", "--name", "A", "--category", "amil", "--amount", "10", "--date", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	out, err := run(t, "ledger", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No distributions recorded.")
}

func TestLedgerAdd_DatePrefilledWithToday(t *testing.T) {
	useTempStore(t)

	before := time.Now().Format(domain.DateLayout)
	out, err := run(t, "ledger", "add", "--name", "Neighbour", "--category", "masakin", "--amount", "15")
	require.NoError(t, err)
	after := time.Now().Format(domain.DateLayout)

	assert.True(t, strings.Contains(out, "on "+before) || strings.Contains(out, "on "+after), out)
}

func TestLedgerDeleteAndClear(t *testing.T) {
	useTempStore(t)

	out, err := run(t, "ledger", "add", "--name", "Traveller", "--category", "ibn-as-sabil", "--amount", "20")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	id := lines[len(lines)-1]

	_, err = run(t, "ledger", "delete", id)
	require.NoError(t, err)

	_, err = run(t, "ledger", "delete", id)
	assert.NoError(t, err, "deleting twice is a no-op")

	_, err = run(t, "ledger", "add", "--name", "Collector", "--category", "amil", "--amount", "5")
	require.NoError(t, err)

	_, err = run(t, "ledger", "clear")
	assert.EqualError(t, err, "refusing to clear the ledger without --yes")

	_, err = run(t, "ledger", "clear", "--yes")
	require.NoError(t, err)

	out, err = run(t, "ledger", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No distributions recorded.")
}

func TestPrefs(t *testing.T) {
	useTempStore(t)

	out, err := run(t, "prefs", "get")
	require.NoError(t, err)
	assert.Contains(t, out, "display: USD")

	out, err = run(t, "prefs", "set", "--display", "eur")
	require.NoError(t, err)
	assert.Contains(t, out, "display: EUR")
	assert.Contains(t, out, "gold:    USD")

	_, err = run(t, "prefs", "set", "--gold", "XYZ")
	assert.ErrorIs(t, err, domain.ErrValidation)

	out, err = run(t, "nisab", "--gold-price", "100", "--gold-currency", "USD")
	require.NoError(t, err)
	assert.Contains(t, out, "€", "display preference applies when --display is omitted")
}

func TestReport_WithoutObligation(t *testing.T) {
	useTempStore(t)

	_, err := run(t, "report", "--out", "-")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPrices(t *testing.T) {
	useTempStore(t)

	out, err := run(t, "prices", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "66.0000")
	assert.Contains(t, out, "0.8000")

	_, err = run(t, "prices", "refresh")
	assert.EqualError(t, err, "the live price feed is disabled (ZAKAT_PRICEFEED_ENABLED=false)")
}
