package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/example/transaction-analyzer/pkg/transaction"
)

var (
	addID          string
	addDate        string
	addAmount      string
	addType        string
	addMerchant    string
	addDescription string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Append a transaction and show the refreshed totals",
	Long: `Add appends one transaction to the in-memory collection and prints the
count and total that now include it. The ledger file itself is never
written.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, log := runSetup()
		a := loadAnalyzer(cfg, log)

		date, err := transaction.ParseDate(addDate)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid --date")
		}
		amount, err := transaction.ParseAmount(addAmount)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid --amount")
		}

		id := addID
		if id == "" {
			id = uuid.NewString()
		}
		typ := addType
		if typ == "" {
			typ = cfg.DefaultType
		}

		a.Add(transaction.Transaction{
			ID:          id,
			Date:        date,
			Amount:      amount,
			Type:        typ,
			Merchant:    addMerchant,
			Description: addDescription,
		})

		fmt.Printf("Added %s\n", id)
		fmt.Printf("Transactions: %d\n", a.Len())
		fmt.Printf("Total:        %.2f\n", a.TotalAmount())
	},
}

func init() {
	addCmd.Flags().StringVar(&addID, "id", "", "transaction id (generated when omitted)")
	addCmd.Flags().StringVar(&addDate, "date", "", "transaction date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addAmount, "amount", "", "transaction amount")
	addCmd.Flags().StringVar(&addType, "type", "", "transaction type (config default when omitted)")
	addCmd.Flags().StringVar(&addMerchant, "merchant", "", "merchant name")
	addCmd.Flags().StringVar(&addDescription, "description", "", "free-text description")

	_ = addCmd.MarkFlagRequired("date")
	_ = addCmd.MarkFlagRequired("amount")
}
