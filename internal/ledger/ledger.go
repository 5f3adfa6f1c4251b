// Package ledger loads transaction records from a JSON ledger file.
//
// A ledger is a single JSON array of transaction objects. The whole file is
// read in one pass; there is no streaming and the file is never written.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/example/transaction-analyzer/internal/logger"
	"github.com/example/transaction-analyzer/pkg/transaction"
)

// Options control how malformed record fields are handled during a load.
type Options struct {
	// Strict fails the load on the first unparsable amount or date. The
	// default is lenient: bad amounts are stored as NaN, bad dates as the
	// zero time, and each one is logged as a warning.
	Strict bool
}

// rawTransaction mirrors one ledger object before field parsing. The amount
// is decoded as `any` because ledger files carry it either as a JSON string
// or as a JSON number.
type rawTransaction struct {
	ID          string `json:"transaction_id"`
	Date        string `json:"transaction_date"`
	Amount      any    `json:"transaction_amount"`
	Type        string `json:"transaction_type"`
	Merchant    string `json:"merchant_name"`
	Description string `json:"transaction_description"`
}

// Load reads the JSON ledger at path and returns its records in file order,
// ready for an analyzer. The context supplies the logger used for lenient
// parse warnings.
func Load(ctx context.Context, path string, opts Options) ([]transaction.Transaction, error) {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}

	var raw []rawTransaction
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode ledger %s: %w", path, err)
	}

	records := make([]transaction.Transaction, 0, len(raw))
	for i, r := range raw {
		t := transaction.Transaction{
			ID:          r.ID,
			Type:        r.Type,
			Merchant:    r.Merchant,
			Description: r.Description,
		}

		amount, err := transaction.ParseAmount(r.Amount)
		switch {
		case err == nil:
			t.Amount = amount
		case opts.Strict:
			return nil, fmt.Errorf("record %d: transaction_amount: %w", i, err)
		default:
			t.Amount = math.NaN()
			log.Warn().
				Int("record", i).
				Str("transaction_id", r.ID).
				Err(err).
				Msg("Malformed amount, keeping NaN")
		}

		date, err := transaction.ParseDate(r.Date)
		switch {
		case err == nil:
			t.Date = date
		case opts.Strict:
			return nil, fmt.Errorf("record %d: transaction_date: %w", i, err)
		default:
			t.Date = time.Time{}
			log.Warn().
				Int("record", i).
				Str("transaction_id", r.ID).
				Err(err).
				Msg("Malformed date, keeping zero date")
		}

		records = append(records, t)
	}

	return records, nil
}
