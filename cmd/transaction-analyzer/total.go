package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/transaction-analyzer/pkg/transaction"
)

var (
	totalYear  int
	totalMonth int
	totalDay   int
	totalDebit bool
)

var totalCmd = &cobra.Command{
	Use:   "total",
	Short: "Sum transaction amounts",
	Long: `Total sums every transaction amount. --year, --month, and --day restrict
the sum to records matching the supplied date components; --debit sums
exact "debit" records instead and cannot be combined with them.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, log := runSetup()
		a := loadAnalyzer(cfg, log)

		hasDateParts := totalYear != 0 || totalMonth != 0 || totalDay != 0
		if totalDebit && hasDateParts {
			log.Fatal().Msg("--debit cannot be combined with --year, --month, or --day")
		}

		if totalDebit {
			fmt.Printf("Debit total: %.2f\n", a.TotalDebitAmount())
			return
		}

		filter := transaction.DateFilter{Year: totalYear, Month: totalMonth, Day: totalDay}
		fmt.Printf("Total: %.2f\n", a.TotalAmountByDate(filter))
	},
}

func init() {
	totalCmd.Flags().IntVar(&totalYear, "year", 0, "restrict to a calendar year")
	totalCmd.Flags().IntVar(&totalMonth, "month", 0, "restrict to a month (1-12)")
	totalCmd.Flags().IntVar(&totalDay, "day", 0, "restrict to a day of month (1-31)")
	totalCmd.Flags().BoolVar(&totalDebit, "debit", false, "sum debit transactions only")
}
