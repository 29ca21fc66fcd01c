package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/sschier-sketch/folio-api/internal/constants"
	"github.com/sschier-sketch/folio-api/internal/db"
	"github.com/sschier-sketch/folio-api/internal/metrics"
	"github.com/sschier-sketch/folio-api/internal/types/params"
	"github.com/sschier-sketch/folio-api/internal/types/responses"
)

const (
	defaultStalledAfterMinutes = 30
	defaultRecoveryBatchSize   = 100
	recoveryMaxRetries         = 3
)

// OutboxService sweeps dispatch outbox entries that a crashed or interrupted
// send left in a non-terminal state and drives them to a terminal one.
//
// Recovery rules by state:
//   - sent: the provider accepted the email but no audit record exists.
//     Insert the record, mark the payment, finalize. This is where recording
//     becomes at-least-once: if the original request wrote the record but
//     died before advancing the outbox, the sweep writes a second one.
//   - recorded: the record exists; re-apply the payment update and finalize.
//   - pending: the send outcome is unknowable (the crash happened around the
//     provider call), so the entry is abandoned for manual reconciliation
//     rather than risking a duplicate email.
type OutboxService struct {
	queries db.Querier
	logger  *zap.Logger
}

func NewOutboxService(queries db.Querier, logger *zap.Logger) *OutboxService {
	return &OutboxService{
		queries: queries,
		logger:  logger,
	}
}

// RecoverStalled processes up to Limit entries untouched for longer than
// OlderThanMinutes. A failing entry is left in place for the next sweep.
func (s *OutboxService) RecoverStalled(ctx context.Context, p params.RecoverOutboxParams) (*responses.OutboxRecoveryResult, error) {
	olderThan := p.OlderThanMinutes
	if olderThan <= 0 {
		olderThan = defaultStalledAfterMinutes
	}
	limit := p.Limit
	if limit <= 0 {
		limit = defaultRecoveryBatchSize
	}

	cutoff := time.Now().Add(-time.Duration(olderThan) * time.Minute)
	entries, err := s.queries.ListStalledOutboxEntries(ctx, db.ListStalledOutboxEntriesParams{
		UpdatedBefore: pgtype.Timestamptz{Time: cutoff, Valid: true},
		Limit:         limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list stalled outbox entries: %w", err)
	}

	result := &responses.OutboxRecoveryResult{Scanned: len(entries)}
	for _, entry := range entries {
		if err := s.recoverEntry(ctx, entry, result); err != nil {
			result.Failed++
			metrics.RecordOutboxRecovery(entry.State, "failed")
			s.logger.Error("failed to recover outbox entry",
				zap.String("outbox_id", entry.ID.String()),
				zap.String("state", entry.State),
				zap.Error(err))
		}
	}

	s.logger.Info("outbox recovery sweep finished",
		zap.Int("scanned", result.Scanned),
		zap.Int("finalized", result.Finalized),
		zap.Int("abandoned", result.Abandoned),
		zap.Int("failed", result.Failed))
	return result, nil
}

func (s *OutboxService) recoverEntry(ctx context.Context, entry db.DunningOutboxEntry, result *responses.OutboxRecoveryResult) error {
	fromState := entry.State
	switch entry.State {
	case constants.OutboxStatePending:
		if err := s.abandon(ctx, entry); err != nil {
			return err
		}
		result.Abandoned++
		metrics.RecordOutboxRecovery(constants.OutboxStatePending, "abandoned")
		return nil

	case constants.OutboxStateSent:
		if err := s.writeRecord(ctx, &entry); err != nil {
			return err
		}
		fallthrough

	case constants.OutboxStateRecorded:
		if err := s.finalize(ctx, entry); err != nil {
			return err
		}
		result.Finalized++
		metrics.RecordOutboxRecovery(fromState, "finalized")
		return nil

	default:
		return fmt.Errorf("unexpected outbox state %q", entry.State)
	}
}

func (s *OutboxService) abandon(ctx context.Context, entry db.DunningOutboxEntry) error {
	return s.retry(ctx, func() error {
		_, err := s.queries.UpdateOutboxEntryState(ctx, db.UpdateOutboxEntryStateParams{
			ID:           entry.ID,
			State:        constants.OutboxStateAbandoned,
			ErrorMessage: pgtype.Text{String: "send outcome unknown, needs manual reconciliation", Valid: true},
		})
		return err
	})
}

// writeRecord backfills the audit record for an entry whose email went out.
// The recorded timestamp is the entry's last update, the closest available
// approximation of when the provider accepted the send.
func (s *OutboxService) writeRecord(ctx context.Context, entry *db.DunningOutboxEntry) error {
	var record db.ReminderRecord
	err := s.retry(ctx, func() error {
		var err error
		record, err = s.queries.InsertReminderRecord(ctx, db.InsertReminderRecordParams{
			OwnerID:        entry.OwnerID,
			PaymentID:      entry.PaymentID,
			DunningLevel:   entry.DunningLevel,
			RecipientEmail: entry.RecipientEmail,
			Subject:        entry.Subject,
			Message:        entry.Message,
			DeliveryStatus: constants.DeliveryStatusSent,
			SentAt:         entry.UpdatedAt,
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to backfill reminder record: %w", err)
	}

	return s.retry(ctx, func() error {
		updated, err := s.queries.UpdateOutboxEntryState(ctx, db.UpdateOutboxEntryStateParams{
			ID:         entry.ID,
			State:      constants.OutboxStateRecorded,
			ReminderID: pgtype.UUID{Bytes: record.ID, Valid: true},
		})
		if err != nil {
			return err
		}
		*entry = updated
		return nil
	})
}

func (s *OutboxService) finalize(ctx context.Context, entry db.DunningOutboxEntry) error {
	err := s.retry(ctx, func() error {
		_, err := s.queries.UpdateRentPaymentDunningState(ctx, db.UpdateRentPaymentDunningStateParams{
			ID:               entry.PaymentID,
			OwnerID:          entry.OwnerID,
			DunningLevel:     entry.DunningLevel,
			LastReminderSent: entry.UpdatedAt,
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to update payment dunning state: %w", err)
	}

	return s.retry(ctx, func() error {
		_, err := s.queries.UpdateOutboxEntryState(ctx, db.UpdateOutboxEntryStateParams{
			ID:    entry.ID,
			State: constants.OutboxStateFinalized,
		})
		return err
	})
}

func (s *OutboxService) retry(ctx context.Context, op func() error) error {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), recoveryMaxRetries), ctx)
	return backoff.Retry(op, policy)
}
