// Package services holds the orchestration layer between transport and
// storage.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"revboard/internal/core"
	"revboard/internal/log"
	"revboard/internal/store"
)

// IngestService validates and stores transactions arriving from the
// event queue. OnIngest runs after every accepted write; the server
// hangs cache invalidation on it.
type IngestService struct {
	writer   store.TransactionWriter
	slogger  *log.StructuredLogger
	OnIngest func()
}

func NewIngestService(writer store.TransactionWriter) *IngestService {
	return &IngestService{
		writer:  writer,
		slogger: log.NewStructuredLogger(log.New(log.Config{Component: log.ComponentIngest})),
	}
}

// Ingest validates and persists one transaction. Duplicate payment
// references are absorbed silently so redelivered messages stay
// idempotent.
func (s *IngestService) Ingest(ctx context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("validate transaction: %w", err)
	}

	inserted, err := s.writer.InsertTransaction(ctx, t)
	if err != nil {
		return fmt.Errorf("store transaction: %w", err)
	}
	if !inserted {
		slog.InfoContext(ctx, "Duplicate transaction skipped",
			log.FieldPaymentRef, t.PaymentReference,
			log.FieldComponent, log.ComponentIngest)
		return nil
	}

	s.slogger.LogTransactionIngested(ctx, t.PaymentReference, string(t.Type), string(t.Status), t.Amount)

	if s.OnIngest != nil {
		s.OnIngest()
	}
	return nil
}
