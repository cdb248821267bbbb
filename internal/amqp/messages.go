package amqp

import (
	"encoding/json"
	"time"

	"revboard/internal/core"
)

// TransactionEventMessage carries a full transaction from an upstream
// producer into the ingest pipeline.
type TransactionEventMessage struct {
	Transaction core.Transaction `json:"transaction"`
	Version     int64            `json:"version"`
	Timestamp   time.Time        `json:"timestamp"`
}

// NewTransactionEventMessage wraps a transaction for publishing
func NewTransactionEventMessage(t core.Transaction) *TransactionEventMessage {
	return &TransactionEventMessage{
		Transaction: t,
		Version:     1,
		Timestamp:   time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *TransactionEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// TransactionEventMessageFromJSON creates a message from JSON bytes
func TransactionEventMessageFromJSON(data []byte) (*TransactionEventMessage, error) {
	var msg TransactionEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
