package transaction

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format used throughout the ledger.
const DateLayout = "2006-01-02"

// Well-known transaction types. The type set is open; these are the two
// values the aggregate queries care about.
const (
	TypeDebit  = "debit"
	TypeCredit = "credit"
)

// Transaction represents a single financial transaction.
//
// Malformed source fields are resolved when the record is built, not at
// query time: an unparsable amount is stored as NaN and an unparsable date
// as the zero time. HasValidAmount and HasValidDate report that state.
type Transaction struct {
	ID          string    `json:"transaction_id"`
	Date        time.Time `json:"transaction_date"`
	Amount      float64   `json:"transaction_amount"`
	Type        string    `json:"transaction_type"` // e.g. "debit", "credit"
	Merchant    string    `json:"merchant_name"`
	Description string    `json:"transaction_description"`
}

// ParseAmount coerces a raw ledger amount into a float64. Ledger files
// encode amounts either as JSON strings or as JSON numbers, so both are
// accepted. Anything else, or a string that is not a number, is an error.
func ParseAmount(v any) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case int:
		return float64(val), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, fmt.Errorf("parse amount %q: %w", val, err)
		}
		return f, nil
	case nil:
		return 0, fmt.Errorf("amount is missing")
	default:
		return 0, fmt.Errorf("amount has type %T, want string or number", v)
	}
}

// ParseDate parses a YYYY-MM-DD calendar date string.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return d, nil
}

// HasValidDate reports whether the record carries a parsed calendar date.
// Records without one never match any date predicate.
func (t Transaction) HasValidDate() bool {
	return !t.Date.IsZero()
}

// HasValidAmount reports whether the amount parsed to a real number.
func (t Transaction) HasValidAmount() bool {
	return !math.IsNaN(t.Amount)
}

// String renders the canonical text form of the record with a stable field
// order. Sentinel values stay visible: an invalid date prints as
// "invalid-date" and an invalid amount as "NaN".
func (t Transaction) String() string {
	date := "invalid-date"
	if t.HasValidDate() {
		date = t.Date.Format(DateLayout)
	}
	return fmt.Sprintf("Transaction{ID: %s, Date: %s, Amount: %.2f, Type: %s, Merchant: %s, Description: %s}",
		t.ID, date, t.Amount, t.Type, t.Merchant, t.Description)
}
