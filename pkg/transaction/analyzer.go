package transaction

import (
	"time"
)

// monthKeyLayout buckets records by calendar year and month.
const monthKeyLayout = "2006-01"

// Analyzer holds an ordered collection of transactions and answers queries
// over it. Records keep their insertion order; nothing is ever removed or
// reordered, and every query is recomputed from the current records on each
// call. The zero value is an empty, usable analyzer.
//
// An Analyzer is not safe for concurrent use; callers that share one across
// goroutines must provide their own synchronization.
type Analyzer struct {
	records []Transaction
}

// NewAnalyzer creates an analyzer over the given records. The analyzer takes
// ownership of the slice; the caller must not keep using it.
func NewAnalyzer(records []Transaction) *Analyzer {
	return &Analyzer{records: records}
}

// Add appends a transaction to the end of the collection. It is visible to
// every subsequent query.
func (a *Analyzer) Add(t Transaction) {
	a.records = append(a.records, t)
}

// Len returns the number of transactions held.
func (a *Analyzer) Len() int {
	return len(a.records)
}

// All returns the transactions in insertion order. The returned slice is a
// copy: later calls to Add never mutate a previously returned snapshot.
func (a *Analyzer) All() []Transaction {
	return append([]Transaction(nil), a.records...)
}

// UniqueTypes returns the distinct transaction types in first-seen order.
func (a *Analyzer) UniqueTypes() []string {
	seen := map[string]struct{}{}
	var types []string
	for _, t := range a.records {
		if _, ok := seen[t.Type]; ok {
			continue
		}
		seen[t.Type] = struct{}{}
		types = append(types, t.Type)
	}
	return types
}

// TotalAmount returns the sum of all transaction amounts. An empty
// collection sums to 0; a record with an invalid amount poisons the sum to
// NaN, as floating-point addition dictates.
func (a *Analyzer) TotalAmount() float64 {
	return sumAmounts(a.records)
}

// DateFilter selects records by calendar date components. A zero component
// matches unconditionally, so the zero DateFilter matches every record.
type DateFilter struct {
	Year  int // full year, e.g. 2019
	Month int // 1-12
	Day   int // 1-31
}

func (f DateFilter) isZero() bool {
	return f.Year == 0 && f.Month == 0 && f.Day == 0
}

func (f DateFilter) matches(d time.Time) bool {
	if f.Year != 0 && d.Year() != f.Year {
		return false
	}
	if f.Month != 0 && int(d.Month()) != f.Month {
		return false
	}
	if f.Day != 0 && d.Day() != f.Day {
		return false
	}
	return true
}

// TotalAmountByDate sums the amounts of records whose date matches every
// supplied filter component. With no components supplied it is equivalent to
// TotalAmount. Records without a valid date are skipped whenever at least
// one component is supplied.
func (a *Analyzer) TotalAmountByDate(f DateFilter) float64 {
	if f.isZero() {
		return a.TotalAmount()
	}
	var sum float64
	for _, t := range a.records {
		if !t.HasValidDate() {
			continue
		}
		if f.matches(t.Date) {
			sum += t.Amount
		}
	}
	return sum
}

// ByType returns the records whose type matches exactly, in order.
func (a *Analyzer) ByType(typ string) []Transaction {
	var filtered []Transaction
	for _, t := range a.records {
		if t.Type == typ {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// ByMerchant returns the records whose merchant matches exactly, in order.
func (a *Analyzer) ByMerchant(name string) []Transaction {
	var filtered []Transaction
	for _, t := range a.records {
		if t.Merchant == name {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// InDateRange returns the records dated between start and end, bounds
// inclusive. A start after end matches nothing. Records without a valid
// date never match.
func (a *Analyzer) InDateRange(start, end time.Time) []Transaction {
	var filtered []Transaction
	for _, t := range a.records {
		if !t.HasValidDate() {
			continue
		}
		if !t.Date.Before(start) && !t.Date.After(end) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// BeforeDate returns the records dated strictly before the cutoff. Records
// without a valid date never match.
func (a *Analyzer) BeforeDate(cutoff time.Time) []Transaction {
	var filtered []Transaction
	for _, t := range a.records {
		if !t.HasValidDate() {
			continue
		}
		if t.Date.Before(cutoff) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// ByAmountRange returns the records whose amount lies between min and max,
// bounds inclusive. Records with an invalid (NaN) amount never match.
func (a *Analyzer) ByAmountRange(min, max float64) []Transaction {
	var filtered []Transaction
	for _, t := range a.records {
		if t.Amount >= min && t.Amount <= max {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// AverageAmount returns the mean transaction amount, or 0 for an empty
// collection.
func (a *Analyzer) AverageAmount() float64 {
	if len(a.records) == 0 {
		return 0
	}
	return a.TotalAmount() / float64(len(a.records))
}

// TotalDebitAmount returns the sum of amounts across records whose type is
// exactly "debit".
func (a *Analyzer) TotalDebitAmount() float64 {
	return sumAmounts(a.ByType(TypeDebit))
}

// MostActiveMonth returns the YYYY-MM month with the most transactions.
// When several months tie for the maximum, the month seen first in record
// order wins. The second result is false when no record carries a valid
// date.
func (a *Analyzer) MostActiveMonth() (string, bool) {
	return mostActiveMonth(a.records)
}

// MostActiveDebitMonth is MostActiveMonth restricted to records whose type
// is exactly "debit".
func (a *Analyzer) MostActiveDebitMonth() (string, bool) {
	return mostActiveMonth(a.ByType(TypeDebit))
}

// DominantType compares the number of exact "debit" records against exact
// "credit" records and returns "debit", "credit", or "equal". Every other
// type is ignored, and two zero counts compare equal.
func (a *Analyzer) DominantType() string {
	var debits, credits int
	for _, t := range a.records {
		switch t.Type {
		case TypeDebit:
			debits++
		case TypeCredit:
			credits++
		}
	}
	switch {
	case debits > credits:
		return TypeDebit
	case credits > debits:
		return TypeCredit
	default:
		return "equal"
	}
}

// FindByID returns the first record with the given id in insertion order.
// The second result is false when no record matches; a miss is a normal
// outcome, not an error.
func (a *Analyzer) FindByID(id string) (Transaction, bool) {
	for _, t := range a.records {
		if t.ID == id {
			return t, true
		}
	}
	return Transaction{}, false
}

// Descriptions returns the description of every record, in order.
func (a *Analyzer) Descriptions() []string {
	descriptions := make([]string, 0, len(a.records))
	for _, t := range a.records {
		descriptions = append(descriptions, t.Description)
	}
	return descriptions
}

func sumAmounts(records []Transaction) float64 {
	var sum float64
	for _, t := range records {
		sum += t.Amount
	}
	return sum
}

// mostActiveMonth counts records per YYYY-MM bucket in one pass, remembering
// each bucket key the first time it appears, then picks the first bucket
// holding the maximum count. Records without a valid date contribute no
// bucket.
func mostActiveMonth(records []Transaction) (string, bool) {
	counts := map[string]int{}
	var order []string
	for _, t := range records {
		if !t.HasValidDate() {
			continue
		}
		key := t.Date.Format(monthKeyLayout)
		if _, ok := counts[key]; !ok {
			order = append(order, key)
		}
		counts[key]++
	}
	if len(order) == 0 {
		return "", false
	}
	best := order[0]
	for _, key := range order[1:] {
		if counts[key] > counts[best] {
			best = key
		}
	}
	return best, true
}
