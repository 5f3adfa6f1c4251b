package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the full summary report for the ledger",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, log := runSetup()
		a := loadAnalyzer(cfg, log)

		fmt.Printf("=== Transactions (%d) ===\n", a.Len())
		for _, t := range a.All() {
			fmt.Println(t)
		}

		types := a.UniqueTypes()
		fmt.Printf("\n=== Types (%d) ===\n", len(types))
		for _, typ := range types {
			fmt.Println(typ)
		}

		fmt.Println("\n=== Summary ===")
		fmt.Printf("Total amount:            %.2f\n", a.TotalAmount())
		fmt.Printf("Average amount:          %.2f\n", a.AverageAmount())
		fmt.Printf("Debit total:             %.2f\n", a.TotalDebitAmount())
		fmt.Printf("Dominant type:           %s\n", a.DominantType())
		if month, ok := a.MostActiveMonth(); ok {
			fmt.Printf("Most active month:       %s\n", month)
		}
		if month, ok := a.MostActiveDebitMonth(); ok {
			fmt.Printf("Most active debit month: %s\n", month)
		}

		fmt.Println("\n=== Descriptions ===")
		for _, d := range a.Descriptions() {
			fmt.Println(d)
		}
	},
}
