package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/example/transaction-analyzer/internal/config"
	"github.com/example/transaction-analyzer/internal/ledger"
	"github.com/example/transaction-analyzer/internal/logger"
	"github.com/example/transaction-analyzer/pkg/transaction"
)

var (
	flagConfig   string
	flagLedger   string
	flagStrict   bool
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "transaction-analyzer",
	Short: "Query and aggregate financial transactions from a JSON ledger",
	Long: `Transaction Analyzer loads a ledger of financial transactions from a JSON
file and answers filtering, grouping, and summary queries over it. The
ledger file is read whole and never written.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Transaction Analyzer v1.0.0")
		fmt.Println("Use --help for available commands")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagLedger, "ledger", "", "path to the JSON ledger (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "fail the load on malformed amounts or dates")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "minimum log level (overrides config)")

	rootCmd.AddCommand(reportCmd, listCmd, totalCmd, showCmd, typesCmd, addCmd)
}

// runSetup resolves the configuration and builds the logger shared by every
// subcommand. Flags win over environment variables and the config file.
func runSetup() (*config.Config, zerolog.Logger) {
	// A .env file is optional; missing is fine.
	_ = godotenv.Load()

	// Failures before the configured level is known report through a
	// default logger.
	boot := logger.New(zerolog.InfoLevel)

	cfg, err := config.LoadConfig(flagConfig)
	if err != nil {
		boot.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if rootCmd.PersistentFlags().Changed("ledger") {
		cfg.LedgerPath = flagLedger
	}
	if rootCmd.PersistentFlags().Changed("strict") {
		cfg.StrictParsing = flagStrict
	}
	if rootCmd.PersistentFlags().Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		boot.Fatal().Err(err).Msg("Invalid log level")
	}

	return cfg, logger.New(level)
}

// loadAnalyzer reads the configured ledger and wraps its records in an
// analyzer.
func loadAnalyzer(cfg *config.Config, log zerolog.Logger) *transaction.Analyzer {
	ctx := logger.WithContext(context.Background(), log)

	records, err := ledger.Load(ctx, cfg.LedgerPath, ledger.Options{Strict: cfg.StrictParsing})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load ledger")
	}

	log.Debug().Str("ledger", cfg.LedgerPath).Int("records", len(records)).Msg("Ledger loaded")

	return transaction.NewAnalyzer(records)
}
