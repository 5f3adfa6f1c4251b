package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/example/transaction-analyzer/pkg/transaction"
)

var (
	listType     string
	listMerchant string
	listFrom     string
	listTo       string
	listBefore   string
	listMin      float64
	listMax      float64
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions, optionally filtered",
	Long: `List prints the ledger's transactions in insertion order. Filters combine:
--type, --merchant, --from/--to, --before, and --min/--max each narrow the
previous result.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, log := runSetup()
		a := loadAnalyzer(cfg, log)

		if listType != "" {
			a = transaction.NewAnalyzer(a.ByType(listType))
		}
		if listMerchant != "" {
			a = transaction.NewAnalyzer(a.ByMerchant(listMerchant))
		}
		if listFrom != "" || listTo != "" {
			if listFrom == "" || listTo == "" {
				log.Fatal().Msg("--from and --to must be supplied together")
			}
			start, err := transaction.ParseDate(listFrom)
			if err != nil {
				log.Fatal().Err(err).Msg("Invalid --from date")
			}
			end, err := transaction.ParseDate(listTo)
			if err != nil {
				log.Fatal().Err(err).Msg("Invalid --to date")
			}
			a = transaction.NewAnalyzer(a.InDateRange(start, end))
		}
		if listBefore != "" {
			cutoff, err := transaction.ParseDate(listBefore)
			if err != nil {
				log.Fatal().Err(err).Msg("Invalid --before date")
			}
			a = transaction.NewAnalyzer(a.BeforeDate(cutoff))
		}
		if cmd.Flags().Changed("min") || cmd.Flags().Changed("max") {
			lo, hi := math.Inf(-1), math.Inf(1)
			if cmd.Flags().Changed("min") {
				lo = listMin
			}
			if cmd.Flags().Changed("max") {
				hi = listMax
			}
			a = transaction.NewAnalyzer(a.ByAmountRange(lo, hi))
		}

		fmt.Printf("=== Transactions (%d) ===\n", a.Len())
		for _, t := range a.All() {
			fmt.Println(t)
		}
	},
}

func init() {
	listCmd.Flags().StringVar(&listType, "type", "", "exact transaction type")
	listCmd.Flags().StringVar(&listMerchant, "merchant", "", "exact merchant name")
	listCmd.Flags().StringVar(&listFrom, "from", "", "range start date (YYYY-MM-DD, inclusive)")
	listCmd.Flags().StringVar(&listTo, "to", "", "range end date (YYYY-MM-DD, inclusive)")
	listCmd.Flags().StringVar(&listBefore, "before", "", "strict cutoff date (YYYY-MM-DD)")
	listCmd.Flags().Float64Var(&listMin, "min", 0, "minimum amount (inclusive)")
	listCmd.Flags().Float64Var(&listMax, "max", 0, "maximum amount (inclusive)")
}
