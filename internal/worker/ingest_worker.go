// Package worker bridges queue consumption and the ingest service.
package worker

import (
	"context"
	"errors"
	"log/slog"

	"revboard/internal/amqp"
	"revboard/internal/core"
	"revboard/internal/log"
	"revboard/internal/services"
)

// IngestWorker consumes transaction events off the queue and hands
// them to the ingest service.
type IngestWorker struct {
	service *services.IngestService
}

func NewIngestWorker(service *services.IngestService) *IngestWorker {
	return &IngestWorker{service: service}
}

// HandleTransactionEvent processes a single transaction event message.
// A returned error requeues the delivery, so messages that can never
// succeed are logged and dropped instead.
func (w *IngestWorker) HandleTransactionEvent(ctx context.Context, msg *amqp.TransactionEventMessage) error {
	slog.InfoContext(ctx, "Processing transaction event",
		log.FieldPaymentRef, msg.Transaction.PaymentReference,
		log.FieldComponent, log.ComponentWorker,
		"version", msg.Version)

	err := w.service.Ingest(ctx, msg.Transaction)
	if isPermanent(err) {
		slog.WarnContext(ctx, "Dropping unprocessable transaction event",
			log.FieldPaymentRef, msg.Transaction.PaymentReference,
			log.FieldComponent, log.ComponentWorker,
			log.FieldError, err)
		return nil
	}
	return err
}

func isPermanent(err error) bool {
	return errors.Is(err, core.ErrInvalidType) ||
		errors.Is(err, core.ErrInvalidStatus) ||
		errors.Is(err, core.ErrNegativeAmount)
}

// Run consumes the queue until the context is cancelled.
func (w *IngestWorker) Run(ctx context.Context, client *amqp.Client) error {
	return client.ConsumeTransactions(ctx, func(msg *amqp.TransactionEventMessage) error {
		return w.HandleTransactionEvent(ctx, msg)
	})
}
