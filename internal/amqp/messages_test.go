package amqp

import (
	"testing"
	"time"

	"revboard/internal/core"
)

func TestNewTransactionEventMessage(t *testing.T) {
	tr := core.Transaction{
		Amount:           500,
		Type:             core.TypeDeposit,
		Status:           core.StatusSuccessful,
		PaymentReference: "ref-1",
		Date:             "2022-03-03T10:00:00Z",
	}

	msg := NewTransactionEventMessage(tr)

	if msg.Transaction.PaymentReference != "ref-1" {
		t.Errorf("Transaction not carried: %+v", msg.Transaction)
	}
	if msg.Version != 1 {
		t.Errorf("Version = %v, want 1", msg.Version)
	}
	if msg.Timestamp.IsZero() {
		t.Error("Timestamp should not be zero")
	}
	if time.Since(msg.Timestamp) > time.Second {
		t.Error("Timestamp should be recent")
	}
}

func TestTransactionEventMessage_JSON(t *testing.T) {
	msg := &TransactionEventMessage{
		Transaction: core.Transaction{
			Amount:           300,
			Type:             core.TypeWithdrawal,
			Status:           core.StatusPending,
			PaymentReference: "ref-2",
			Date:             "2022-03-01T10:00:00Z",
			Metadata:         &core.Metadata{Name: "John Doe", Country: "NG"},
		},
		Version:   1,
		Timestamp: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	jsonBytes, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	parsed, err := TransactionEventMessageFromJSON(jsonBytes)
	if err != nil {
		t.Fatalf("TransactionEventMessageFromJSON() error = %v", err)
	}

	if parsed.Transaction.PaymentReference != msg.Transaction.PaymentReference ||
		parsed.Transaction.Amount != msg.Transaction.Amount ||
		parsed.Transaction.Type != msg.Transaction.Type {
		t.Errorf("Parsed transaction = %+v, want %+v", parsed.Transaction, msg.Transaction)
	}
	if parsed.Transaction.Metadata == nil || parsed.Transaction.Metadata.Name != "John Doe" {
		t.Errorf("Metadata lost in round trip: %+v", parsed.Transaction.Metadata)
	}
	if !parsed.Timestamp.Equal(msg.Timestamp) {
		t.Errorf("Parsed Timestamp = %v, want %v", parsed.Timestamp, msg.Timestamp)
	}
}

func TestTransactionEventMessage_InvalidJSON(t *testing.T) {
	invalidJSON := []byte(`{"transaction": "not_an_object", "version": 1}`)

	if _, err := TransactionEventMessageFromJSON(invalidJSON); err == nil {
		t.Error("TransactionEventMessageFromJSON() should fail with invalid JSON")
	}
}
