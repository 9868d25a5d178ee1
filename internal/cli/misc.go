package cli

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/simaogato/zakatflow-backend/internal/domain"
)

func newPrefsCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change the saved currency preferences",
	}

	get := &cobra.Command{
		Use:   "get",
		Short: "Show the saved currency preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := s.app.Calculator.GetPreferences(commandContext(cmd))
			if err != nil {
				return err
			}
			printPrefs(cmd, prefs)
			return nil
		},
	}

	var gold, silver, display string
	set := &cobra.Command{
		Use:   "set",
		Short: "Change the saved currency preferences (omitted flags keep their value)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			prefs, err := s.app.Calculator.GetPreferences(ctx)
			if err != nil {
				return err
			}

			updated, err := s.app.Calculator.SavePreferences(ctx, domain.CurrencyPreferences{
				GoldCurrency:    orDefault(gold, prefs.GoldCurrency),
				SilverCurrency:  orDefault(silver, prefs.SilverCurrency),
				DisplayCurrency: orDefault(display, prefs.DisplayCurrency),
			})
			if err != nil {
				return err
			}
			printPrefs(cmd, updated)
			return nil
		},
	}
	set.Flags().StringVar(&gold, "gold", "", "currency of gold prices")
	set.Flags().StringVar(&silver, "silver", "", "currency of silver prices")
	set.Flags().StringVar(&display, "display", "", "display currency")

	cmd.AddCommand(get, set)
	return cmd
}

func printPrefs(cmd *cobra.Command, prefs *domain.CurrencyPreferences) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "gold:    %s\n", prefs.GoldCurrency)
	fmt.Fprintf(out, "silver:  %s\n", prefs.SilverCurrency)
	fmt.Fprintf(out, "display: %s\n", prefs.DisplayCurrency)
}

func newReportCmd(s *session) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the printable final distribution report as HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			final, err := s.app.Reports.FinalReport(commandContext(cmd))
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := final.RenderHTML(&buf); err != nil {
				return err
			}
			name := fmt.Sprintf("Zakat-Final-Report-%s.html", time.Now().UTC().Format(domain.DateLayout))
			return writeOutput(cmd, out, name, buf.Bytes())
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, - for stdout")
	return cmd
}

func newPricesCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prices",
		Short: "Show or refresh the live metal price hints",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the last known price per gram of each metal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printHints(cmd, s.app.Prices.Hints())
		},
	}

	refresh := &cobra.Command{
		Use:   "refresh",
		Short: "Fetch spot prices now",
		RunE: func(cmd *cobra.Command, args []string) error {
			if s.app.Collector == nil {
				return errors.New("the live price feed is disabled (ZAKAT_PRICEFEED_ENABLED=false)")
			}

			ctx := commandContext(cmd)
			var failed []string
			for _, metal := range []domain.Metal{domain.MetalGold, domain.MetalSilver} {
				if _, err := s.app.Collector.Refresh(ctx, metal); err != nil {
					failed = append(failed, fmt.Sprintf("%s: %v", strings.ToLower(string(metal)), err))
				}
			}
			if err := printHints(cmd, s.app.Prices.Hints()); err != nil {
				return err
			}
			if len(failed) > 0 {
				return fmt.Errorf("refresh failed, previous prices kept (%s)", strings.Join(failed, "; "))
			}
			return nil
		},
	}

	cmd.AddCommand(show, refresh)
	return cmd
}

func printHints(cmd *cobra.Command, hints []domain.PriceHint) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "METAL\tUSD/GRAM\tSOURCE\tOBSERVED")
	for _, h := range hints {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", strings.ToLower(string(h.Metal)), h.PricePerGram.StringFixed(4), h.Source, h.ObservedAt.Format(time.RFC3339))
	}
	return w.Flush()
}
