package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/transaction-analyzer/pkg/transaction"
)

var showCmd = &cobra.Command{
	Use:   "show <transaction-id>",
	Short: "Show a single transaction by its id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, log := runSetup()
		a := loadAnalyzer(cfg, log)

		t, ok := a.FindByID(args[0])
		if !ok {
			log.Fatal().Str("transaction_id", args[0]).Msg("Transaction not found")
		}

		date := "invalid-date"
		if t.HasValidDate() {
			date = t.Date.Format(transaction.DateLayout)
		}

		fmt.Println("=== Transaction ===")
		fmt.Printf("ID:          %s\n", t.ID)
		fmt.Printf("Date:        %s\n", date)
		fmt.Printf("Amount:      %.2f\n", t.Amount)
		fmt.Printf("Type:        %s\n", t.Type)
		fmt.Printf("Merchant:    %s\n", t.Merchant)
		fmt.Printf("Description: %s\n", t.Description)
	},
}
