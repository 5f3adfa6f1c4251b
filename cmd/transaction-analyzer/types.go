package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List distinct transaction types in first-seen order",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, log := runSetup()
		a := loadAnalyzer(cfg, log)

		types := a.UniqueTypes()
		fmt.Printf("=== Types (%d) ===\n", len(types))
		for _, typ := range types {
			fmt.Println(typ)
		}
	},
}
