package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/simaogato/zakatflow-backend/internal/domain"
	"github.com/simaogato/zakatflow-backend/internal/usecase/calculator"
)

func newCurrenciesCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "List the supported currencies and their rates to USD",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tNAME\tSYMBOL\tRATE TO USD")
			for _, rate := range s.app.Currencies.Rates() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rate.Code, rate.DisplayName, rate.Symbol, rate.RateToReference)
			}
			return w.Flush()
		},
	}
}

// priceFlags are the metal price inputs shared by nisab and calc
type priceFlags struct {
	gold, silver                 string
	goldCurrency, silverCurrency string
	display                      string
	live                         bool
}

func (p *priceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.gold, "gold-price", "", "gold price per gram (24K)")
	cmd.Flags().StringVar(&p.silver, "silver-price", "", "silver price per gram")
	cmd.Flags().StringVar(&p.goldCurrency, "gold-currency", "", "currency of the gold price (default: saved preference)")
	cmd.Flags().StringVar(&p.silverCurrency, "silver-currency", "", "currency of the silver price (default: saved preference)")
	cmd.Flags().StringVar(&p.display, "display", "", "display currency (default: saved preference)")
	cmd.Flags().BoolVar(&p.live, "live", false, "fill missing prices from the last known live price")
}

// resolve fills unset currencies from the saved preferences
func (p *priceFlags) resolve(cmd *cobra.Command, s *session) (domain.MetalPrices, domain.CurrencyCode, error) {
	prefs, err := s.app.Calculator.GetPreferences(commandContext(cmd))
	if err != nil {
		return domain.MetalPrices{}, "", err
	}

	prices := domain.MetalPrices{
		Gold:   domain.MetalPrice{PricePerGram: domain.ParseAmount(p.gold), Currency: orDefault(p.goldCurrency, prefs.GoldCurrency)},
		Silver: domain.MetalPrice{PricePerGram: domain.ParseAmount(p.silver), Currency: orDefault(p.silverCurrency, prefs.SilverCurrency)},
	}
	return prices, orDefault(p.display, prefs.DisplayCurrency), nil
}

func newNisabCmd(s *session) *cobra.Command {
	var prices priceFlags

	cmd := &cobra.Command{
		Use:   "nisab",
		Short: "Show the gold and silver Nisab thresholds",
		RunE: func(cmd *cobra.Command, args []string) error {
			metalPrices, display, err := prices.resolve(cmd, s)
			if err != nil {
				return err
			}

			view, err := s.app.Calculator.EvaluateNisab(calculator.NisabQuery{
				Prices:          metalPrices,
				DisplayCurrency: display,
				UseLivePrices:   prices.live,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			symbol := s.app.Currencies.Symbol(view.DisplayCurrency)
			if !view.Snapshot.HasThreshold() {
				fmt.Fprintln(out, view.Status.Message())
				return nil
			}
			fmt.Fprintf(out, "Gold Nisab:    %s\n", domain.FormatAmount(symbol, view.GoldThresholdDisplay))
			fmt.Fprintf(out, "Silver Nisab:  %s\n", domain.FormatAmount(symbol, view.SilverThresholdDisplay))
			fmt.Fprintf(out, "Binding:       %s (%s)\n", domain.FormatAmount(symbol, view.BindingThresholdDisplay), strings.ToLower(string(view.Snapshot.BindingMetal)))
			return nil
		},
	}
	prices.register(cmd)
	return cmd
}

func newCalcCmd(s *session) *cobra.Command {
	var (
		prices                        priceFlags
		goldWeight, goldUnit, purity  string
		silverWeight, silverUnit      string
		cash, inventory, other, debts []string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate the Zakat obligation and store it as the last obligation",
		Example: `  zakatctl calc --gold-price 70 --silver-price 0.9 --cash 10000:USD
  zakatctl calc --live --gold-weight 10 --gold-unit vori --gold-purity 22 --liability 500:EUR`,
		RunE: func(cmd *cobra.Command, args []string) error {
			metalPrices, display, err := prices.resolve(cmd, s)
			if err != nil {
				return err
			}

			var entries []domain.AssetEntry
			if w := domain.ParseAmount(goldWeight); w.IsPositive() {
				entries = append(entries, domain.AssetEntry{
					Category: domain.AssetCategoryGold, Amount: w,
					Unit: domain.WeightUnit(goldUnit), Purity: domain.Purity(purity),
				})
			}
			if w := domain.ParseAmount(silverWeight); w.IsPositive() {
				entries = append(entries, domain.AssetEntry{
					Category: domain.AssetCategorySilver, Amount: w,
					Unit: domain.WeightUnit(silverUnit),
				})
			}
			for _, group := range []struct {
				category domain.AssetCategory
				values   []string
			}{
				{domain.AssetCategoryCash, cash},
				{domain.AssetCategoryBusinessInventory, inventory},
				{domain.AssetCategoryOtherAsset, other},
				{domain.AssetCategoryLiability, debts},
			} {
				for _, v := range group.values {
					amount, currency := parseMoney(v)
					entries = append(entries, domain.AssetEntry{Category: group.category, Amount: amount, Currency: currency})
				}
			}

			result, err := s.app.Calculator.Calculate(commandContext(cmd), domain.CalculationInput{
				Entries:         entries,
				Prices:          metalPrices,
				DisplayCurrency: display,
				UseLivePrices:   prices.live,
			})
			if err != nil {
				return err
			}

			printResult(cmd.OutOrStdout(), s.app.Currencies.Symbol(result.DisplayCurrency), result)
			return nil
		},
	}

	prices.register(cmd)
	cmd.Flags().StringVar(&goldWeight, "gold-weight", "", "weight of gold held")
	cmd.Flags().StringVar(&goldUnit, "gold-unit", string(domain.WeightUnitGrams), "unit of the gold weight (grams, vori)")
	cmd.Flags().StringVar(&purity, "gold-purity", string(domain.Purity24K), "gold karat (24, 22, 21, 19, 18, 14)")
	cmd.Flags().StringVar(&silverWeight, "silver-weight", "", "weight of silver held")
	cmd.Flags().StringVar(&silverUnit, "silver-unit", string(domain.WeightUnitGrams), "unit of the silver weight (grams, vori)")
	cmd.Flags().StringArrayVar(&cash, "cash", nil, "cash or bank balance as AMOUNT[:CURRENCY], repeatable")
	cmd.Flags().StringArrayVar(&inventory, "inventory", nil, "business inventory as AMOUNT[:CURRENCY], repeatable")
	cmd.Flags().StringArrayVar(&other, "other", nil, "other zakatable asset as AMOUNT[:CURRENCY], repeatable")
	cmd.Flags().StringArrayVar(&debts, "liability", nil, "short-term debt as AMOUNT[:CURRENCY], repeatable")
	return cmd
}

func printResult(out io.Writer, symbol string, r *domain.ObligationResult) {
	b := r.BreakdownDisplay
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, line := range []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Gold", b.Gold},
		{"Silver", b.Silver},
		{"Cash", b.Cash},
		{"Business inventory", b.BusinessInventory},
		{"Other assets", b.OtherAssets},
		{"Liabilities", b.Liabilities.Neg()},
		{"Net wealth", r.NetWealthDisplay},
		{"Nisab", r.BindingThresholdDisplay},
		{"Zakat due", r.DueAmountDisplay},
	} {
		fmt.Fprintf(w, "%s\t%s\n", line.label, domain.FormatAmount(symbol, line.amount))
	}
	_ = w.Flush()
	fmt.Fprintln(out, r.Status.Message())
}

// parseMoney reads AMOUNT[:CURRENCY]; the currency defaults to the reference currency
func parseMoney(v string) (decimal.Decimal, domain.CurrencyCode) {
	amount, currency, found := strings.Cut(v, ":")
	code := domain.ReferenceCurrency
	if found && strings.TrimSpace(currency) != "" {
		code = domain.CurrencyCode(strings.ToUpper(strings.TrimSpace(currency)))
	}
	return domain.ParseAmount(amount), code
}

func orDefault(flag string, fallback domain.CurrencyCode) domain.CurrencyCode {
	if flag == "" {
		return fallback
	}
	return domain.CurrencyCode(strings.ToUpper(flag))
}
