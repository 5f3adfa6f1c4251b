package ledger

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/transaction-analyzer/internal/logger"
)

// writeLedger drops a ledger fixture into a temp dir and returns its path.
func writeLedger(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "transactions.json")
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
	return path
}

func TestLoad(t *testing.T) {
	// Amounts arrive both as strings and as numbers.
	path := writeLedger(t, `[
  {
    "transaction_id": "TXN-0001",
    "transaction_date": "2019-01-05",
    "transaction_amount": "100.00",
    "transaction_type": "debit",
    "merchant_name": "Amazon",
    "transaction_description": "Books"
  },
  {
    "transaction_id": "TXN-0002",
    "transaction_date": "2019-02-10",
    "transaction_amount": 49.95,
    "transaction_type": "credit",
    "merchant_name": "Employer Pty Ltd",
    "transaction_description": "Expense refund"
  }
]`)

	records, err := Load(context.Background(), path, Options{})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "TXN-0001", records[0].ID)
	assert.Equal(t, time.Date(2019, time.January, 5, 0, 0, 0, 0, time.UTC), records[0].Date)
	assert.Equal(t, 100.0, records[0].Amount)
	assert.Equal(t, "debit", records[0].Type)
	assert.Equal(t, "Amazon", records[0].Merchant)
	assert.Equal(t, "Books", records[0].Description)

	assert.Equal(t, 49.95, records[1].Amount)
	assert.Equal(t, "credit", records[1].Type)
}

func TestLoad_PreservesFileOrder(t *testing.T) {
	path := writeLedger(t, `[
  {"transaction_id": "c", "transaction_date": "2019-03-01", "transaction_amount": 3},
  {"transaction_id": "a", "transaction_date": "2019-01-01", "transaction_amount": 1},
  {"transaction_id": "b", "transaction_date": "2019-02-01", "transaction_amount": 2}
]`)

	records, err := Load(context.Background(), path, Options{})
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "c", records[0].ID)
	assert.Equal(t, "a", records[1].ID)
	assert.Equal(t, "b", records[2].ID)
}

func TestLoad_LenientKeepsSentinels(t *testing.T) {
	path := writeLedger(t, `[
  {"transaction_id": "good", "transaction_date": "2019-01-05", "transaction_amount": "10"},
  {"transaction_id": "bad-amount", "transaction_date": "2019-01-06", "transaction_amount": "ten"},
  {"transaction_id": "bad-date", "transaction_date": "06/01/2019", "transaction_amount": "20"}
]`)

	buf := &bytes.Buffer{}
	ctx := logger.WithContext(context.Background(), logger.NewWithWriter(buf, zerolog.WarnLevel))

	records, err := Load(ctx, path, Options{})
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Malformed fields become sentinels; the record itself survives.
	assert.True(t, records[0].HasValidAmount())
	assert.False(t, records[1].HasValidAmount())
	assert.True(t, math.IsNaN(records[1].Amount))
	assert.True(t, records[1].HasValidDate())
	assert.False(t, records[2].HasValidDate())
	assert.Equal(t, 20.0, records[2].Amount)

	// One warning per bad field, naming the record.
	warnings := buf.String()
	assert.Contains(t, warnings, "bad-amount")
	assert.Contains(t, warnings, "Malformed amount")
	assert.Contains(t, warnings, "bad-date")
	assert.Contains(t, warnings, "Malformed date")
}

func TestLoad_StrictFailsOnBadAmount(t *testing.T) {
	path := writeLedger(t, `[
  {"transaction_id": "ok", "transaction_date": "2019-01-05", "transaction_amount": "10"},
  {"transaction_id": "broken", "transaction_date": "2019-01-06", "transaction_amount": "ten"}
]`)

	records, err := Load(context.Background(), path, Options{Strict: true})
	assert.Nil(t, records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1")
	assert.Contains(t, err.Error(), "transaction_amount")
}

func TestLoad_StrictFailsOnBadDate(t *testing.T) {
	path := writeLedger(t, `[
  {"transaction_id": "broken", "transaction_date": "not-a-date", "transaction_amount": "10"}
]`)

	records, err := Load(context.Background(), path, Options{Strict: true})
	assert.Nil(t, records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 0")
	assert.Contains(t, err.Error(), "transaction_date")
}

func TestLoad_MissingAmountField(t *testing.T) {
	path := writeLedger(t, `[
  {"transaction_id": "no-amount", "transaction_date": "2019-01-05"}
]`)

	_, err := Load(context.Background(), path, Options{Strict: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transaction_amount")

	records, err := Load(context.Background(), path, Options{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.False(t, records[0].HasValidAmount())
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.json"), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read ledger")
}

func TestLoad_TopLevelNotAnArray(t *testing.T) {
	path := writeLedger(t, `{"transactions": []}`)

	_, err := Load(context.Background(), path, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode ledger")
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeLedger(t, `[{"transaction_id": "x",`)

	_, err := Load(context.Background(), path, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode ledger")
}

func TestLoad_EmptyArray(t *testing.T) {
	path := writeLedger(t, `[]`)

	records, err := Load(context.Background(), path, Options{})
	require.NoError(t, err)
	assert.Empty(t, records)
}
