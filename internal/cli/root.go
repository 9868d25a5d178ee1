// Package cli implements zakatctl, a command line front end that works directly against the configured store.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/simaogato/zakatflow-backend/internal/app"
	"github.com/simaogato/zakatflow-backend/internal/config"
	"github.com/simaogato/zakatflow-backend/pkg/logger"
)

// Build-time variables (set via -ldflags).
var (
	Version = "dev"
	Commit  = "unknown"
)

// session is the state shared by the commands of one invocation
type session struct {
	envFile    string
	configFile string
	logLevel   string

	app *app.App
	log *zap.Logger
}

// NewRootCmd builds the zakatctl command tree
func NewRootCmd() *cobra.Command {
	s := &session{}

	root := &cobra.Command{
		Use:   "zakatctl",
		Short: "Zakat calculator and distribution ledger",
		Long: `zakatctl values zakatable assets against the Nisab, records the
resulting obligation and keeps a ledger of distributions to the eight
recipient categories.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  s.open,
		PersistentPostRunE: s.close,
	}

	root.PersistentFlags().StringVar(&s.envFile, "env-file", "", "env file to load (default: ./.env when present)")
	root.PersistentFlags().StringVar(&s.configFile, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&s.logLevel, "log-level", "error", "log level (debug, info, warn, error)")

	root.AddCommand(
		newVersionCmd(),
		newCurrenciesCmd(s),
		newNisabCmd(s),
		newCalcCmd(s),
		newPrefsCmd(s),
		newLedgerCmd(s),
		newReportCmd(s),
		newPricesCmd(s),
	)
	return root
}

func (s *session) open(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := config.Load(s.envFile, s.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	s.log, err = logger.New(s.logLevel)
	if err != nil {
		return err
	}

	s.app, err = app.New(commandContext(cmd), cfg, s.log)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	return nil
}

func (s *session) close(cmd *cobra.Command, args []string) error {
	if s.app == nil {
		return nil
	}
	defer func() { _ = s.log.Sync() }()
	return s.app.Close(commandContext(cmd))
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "zakatctl %s (%s)\n", Version, Commit)
		},
	}
}
