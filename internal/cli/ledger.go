package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/simaogato/zakatflow-backend/internal/domain"
	"github.com/simaogato/zakatflow-backend/internal/usecase/ledger"
)

func newLedgerCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Record and review Zakat distributions",
	}
	cmd.AddCommand(
		newLedgerAddCmd(s),
		newLedgerListCmd(s),
		newLedgerDeleteCmd(s),
		newLedgerClearCmd(s),
		newLedgerSummaryCmd(s),
		newLedgerExportCmd(s),
	)
	return cmd
}

func newLedgerAddCmd(s *session) *cobra.Command {
	var name, category, amount, currency, date, notes string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a distribution",
		Example: `  zakatctl ledger add --name "Local food bank" --category fuqara --amount 100 --date 2024-03-11`,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := time.Parse(domain.DateLayout, date)
			if err != nil {
				return fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
			}

			record, err := s.app.Ledger.Add(commandContext(cmd), ledger.AddDistributionInput{
				RecipientName: name,
				Category:      domain.ParseRecipientCategory(category),
				Amount:        domain.ParseAmount(amount),
				Currency:      domain.CurrencyCode(strings.ToUpper(currency)),
				Date:          day,
				Notes:         notes,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s to %s (%s) on %s\n",
				domain.FormatAmount(s.app.Currencies.Symbol(record.Currency), record.Amount),
				record.RecipientName, record.Category.Label(), record.Date.Format(domain.DateLayout))
			fmt.Fprintln(cmd.OutOrStdout(), record.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "recipient name")
	cmd.Flags().StringVar(&category, "category", "", "recipient category ("+categoryList()+")")
	cmd.Flags().StringVar(&amount, "amount", "", "amount distributed")
	cmd.Flags().StringVar(&currency, "currency", string(domain.ReferenceCurrency), "currency of the amount")
	cmd.Flags().StringVar(&date, "date", time.Now().Format(domain.DateLayout), "distribution date YYYY-MM-DD")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	return cmd
}

func newLedgerListCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List distributions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := s.app.Ledger.List(commandContext(cmd))
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No distributions recorded.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tHIJRI\tRECIPIENT\tCATEGORY\tAMOUNT")
			for _, r := range records {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					r.ID, r.Date.Format(domain.DateLayout), domain.ToHijri(r.Date), r.RecipientName,
					r.Category.Label(), domain.FormatAmount(s.app.Currencies.Symbol(r.Currency), r.Amount))
			}
			return w.Flush()
		},
	}
}

func newLedgerDeleteCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a distribution (deleting an unknown id does nothing)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("%w: invalid id %q", domain.ErrValidation, args[0])
			}
			if err := s.app.Ledger.Delete(commandContext(cmd), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
			return nil
		},
	}
}

func newLedgerClearCmd(s *session) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every distribution in the ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to clear the ledger without --yes")
			}
			if err := s.app.Ledger.Clear(commandContext(cmd)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Ledger cleared.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the deletion of all records")
	return cmd
}

func newLedgerSummaryCmd(s *session) *cobra.Command {
	var display string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Compare distributions against the last obligation",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := s.app.Ledger.Summary(commandContext(cmd), domain.CurrencyCode(strings.ToUpper(display)))
			if err != nil {
				return err
			}

			symbol := s.app.Currencies.Symbol(summary.DisplayCurrency)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total due:          %s\n", domain.FormatAmount(symbol, summary.TotalDueDisplay))
			fmt.Fprintf(out, "Total distributed:  %s\n", domain.FormatAmount(symbol, summary.TotalDistributedDisplay))
			fmt.Fprintf(out, "Remaining:          %s\n", domain.FormatAmount(symbol, summary.RemainingDisplay))
			fmt.Fprintf(out, "Progress:           %s%%\n", summary.ProgressPercent.StringFixed(1))
			fmt.Fprintf(out, "Records:            %d\n", summary.RecordCount)
			if summary.MostRecentDate != nil {
				fmt.Fprintf(out, "Most recent:        %s\n", summary.MostRecentDate.Format(domain.DateLayout))
			}
			if summary.OverDistributed {
				fmt.Fprintln(out, "More than the obligation has been distributed.")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&display, "display", "", "display currency (default: currency of the last obligation)")
	return cmd
}

func newLedgerExportCmd(s *session) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			var buf bytes.Buffer
			name, err := s.app.Reports.ExportCSV(commandContext(cmd), &buf)
			if err != nil {
				return err
			}
			return writeOutput(cmd, out, name, buf.Bytes())
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, - for stdout (default: Zakat-Distribution-<date>.csv)")
	return cmd
}

// writeOutput writes data to path, to stdout for "-", or to defaultName when path is empty
func writeOutput(cmd *cobra.Command, path, defaultName string, data []byte) error {
	if path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if path == "" {
		path = defaultName
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func categoryList() string {
	categories := domain.RecipientCategories()
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, strings.ToLower(string(c)))
	}
	return strings.Join(names, ", ")
}
