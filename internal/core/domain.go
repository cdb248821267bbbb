package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"

	StatusSuccessful TransactionStatus = "successful"
	StatusPending    TransactionStatus = "pending"
	StatusFailed     TransactionStatus = "failed"
)

type (
	TransactionType   string
	TransactionStatus string

	// Metadata is the optional descriptive payload attached to a
	// transaction. Display-only: it never participates in filtering or
	// aggregation.
	Metadata struct {
		Name        string `json:"name"`
		Type        string `json:"type,omitempty"`
		Email       string `json:"email,omitempty"`
		Quantity    int    `json:"quantity,omitempty"`
		Country     string `json:"country,omitempty"`
		ProductName string `json:"product_name,omitempty"`
	}

	// Transaction is one financial event. Date is an ISO-8601 timestamp
	// string; only its YYYY-MM-DD prefix is significant downstream.
	Transaction struct {
		Amount           float64           `json:"amount"`
		Metadata         *Metadata         `json:"metadata,omitempty"`
		PaymentReference string            `json:"payment_reference,omitempty"`
		Status           TransactionStatus `json:"status"`
		Type             TransactionType   `json:"type"`
		Date             string            `json:"date"`
	}

	// Wallet is the upstream balance snapshot.
	Wallet struct {
		Balance       float64 `json:"balance"`
		TotalPayout   float64 `json:"total_payout"`
		TotalRevenue  float64 `json:"total_revenue"`
		PendingPayout float64 `json:"pending_payout"`
		LedgerBalance float64 `json:"ledger_balance"`
	}

	// User is the upstream account owner snapshot.
	User struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
	}
)

var (
	ErrInvalidType    = errors.New("invalid transaction type")
	ErrInvalidStatus  = errors.New("invalid transaction status")
	ErrNegativeAmount = errors.New("negative amount")
)

func (t TransactionType) Valid() bool {
	switch t {
	case TypeDeposit, TypeWithdrawal:
		return true
	}
	return false
}

func (s TransactionStatus) Valid() bool {
	switch s {
	case StatusSuccessful, StatusPending, StatusFailed:
		return true
	}
	return false
}

// Validate checks the fields that ingestion must reject outright. The date
// is deliberately not validated here: records with a missing or malformed
// date are legal snapshot data and get their defined treatment in the
// filter and chart pipelines.
func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, t.Type)
	}
	if !t.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if t.Amount < 0 {
		return ErrNegativeAmount
	}
	return nil
}

// DateOnly extracts the YYYY-MM-DD prefix of the transaction date. The
// second return is false when the prefix is absent or not a real calendar
// date; such records are excluded from any active date-range filter but
// still counted in totals.
func (t Transaction) DateOnly() (string, bool) {
	if len(t.Date) < 10 {
		return "", false
	}
	day := t.Date[:10]
	if _, err := time.Parse("2006-01-02", day); err != nil {
		return "", false
	}
	return day, true
}

// RowKey returns the stable display key for a transaction at position i:
// the payment reference when present, otherwise a positional fallback for
// synthetic or legacy records.
func (t Transaction) RowKey(i int) string {
	if ref := strings.TrimSpace(t.PaymentReference); ref != "" {
		return ref
	}
	return fmt.Sprintf("txn-%d", i)
}

// Title returns the display title: the product name when metadata carries
// one, otherwise the capitalized transaction type.
func (t Transaction) Title() string {
	if t.Metadata != nil && t.Metadata.ProductName != "" {
		return t.Metadata.ProductName
	}
	s := string(t.Type)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
