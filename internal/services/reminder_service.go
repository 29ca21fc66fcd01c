package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/sschier-sketch/folio-api/internal/constants"
	"github.com/sschier-sketch/folio-api/internal/db"
	"github.com/sschier-sketch/folio-api/internal/metrics"
	"github.com/sschier-sketch/folio-api/internal/types/business"
	"github.com/sschier-sketch/folio-api/internal/types/params"
	"github.com/sschier-sketch/folio-api/internal/types/responses"
)

// EmailSender is the delivery collaborator. Kept local so the dispatcher can
// be tested against a mock without pulling in the Resend client.
type EmailSender interface {
	SendReminderEmail(ctx context.Context, p params.ReminderEmailParams) (string, error)
}

// ReminderService orchestrates one "send reminder" action: template lookup,
// rendering, durable outbox entry, provider call, audit record and the
// payment's denormalized dunning state.
type ReminderService struct {
	queries    db.Querier
	logger     *zap.Logger
	escalation *EscalationService
	templates  *TemplateService
	settings   *SettingsService
	sender     EmailSender
}

func NewReminderService(
	queries db.Querier,
	logger *zap.Logger,
	escalation *EscalationService,
	templates *TemplateService,
	settings *SettingsService,
	sender EmailSender,
) *ReminderService {
	return &ReminderService{
		queries:    queries,
		logger:     logger,
		escalation: escalation,
		templates:  templates,
		settings:   settings,
		sender:     sender,
	}
}

// SendReminder dispatches one reminder. A zero DunningLevel means "use the
// classifier's suggestion under the owner's policy"; an explicit level 1-3
// overrides it.
//
// Ordering guarantee: the audit record is written only after the provider
// reports success, and the payment update happens only after the record
// write. Not idempotent: two calls for the same payment/level send two emails
// and write two records.
func (s *ReminderService) SendReminder(ctx context.Context, p params.SendReminderParams) (*responses.SendReminderResponse, error) {
	if p.DunningLevel != 0 &&
		(p.DunningLevel < constants.MinDunningLevel || p.DunningLevel > constants.MaxDunningLevel) {
		return nil, ErrInvalidDunningLevel
	}

	payment, err := s.queries.GetRentPaymentForDunning(ctx, db.GetRentPaymentForDunningParams{
		ID:      p.PaymentID,
		OwnerID: p.OwnerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	if p.DunningLevel == 0 {
		policy, err := s.settings.GetPolicy(ctx, p.OwnerID)
		if err != nil {
			return nil, err
		}
		paid := payment.IsPaid.Valid && payment.IsPaid.Bool
		suggested := s.escalation.Classify(s.escalation.DaysOverdue(payment.DueDate.Time, time.Now()), paid, policy)
		if suggested < constants.MinDunningLevel {
			return nil, fmt.Errorf("%w: payment is not yet eligible for a reminder", ErrInvalidDunningLevel)
		}
		p.DunningLevel = suggested
	}

	recipient := strings.TrimSpace(payment.TenantEmail.String)
	if !payment.TenantEmail.Valid || recipient == "" {
		metrics.RecordReminderDispatch(levelLabel(p.DunningLevel), "recipient_missing")
		return nil, ErrRecipientMissing
	}

	template, err := s.templates.GetActiveTemplate(ctx, p.OwnerID, p.DunningLevel)
	if err != nil {
		if errors.Is(err, ErrTemplateMissing) {
			metrics.RecordReminderDispatch(levelLabel(p.DunningLevel), "config_missing")
		}
		return nil, err
	}

	rendered := s.templates.Render(template, business.ReminderContext{
		TenantName:       payment.TenantName,
		PropertyName:     payment.PropertyName,
		UnitLabel:        payment.UnitLabel.String,
		OutstandingCents: payment.AmountCents - payment.PaidAmountCents,
		DueDate:          payment.DueDate.Time,
	})

	// The outbox entry goes in before the provider call so a crash between
	// the steps below is recoverable from its state.
	entry, err := s.queries.CreateOutboxEntry(ctx, db.CreateOutboxEntryParams{
		OwnerID:        p.OwnerID,
		PaymentID:      p.PaymentID,
		DunningLevel:   p.DunningLevel,
		RecipientEmail: recipient,
		Subject:        rendered.Subject,
		Message:        rendered.Message,
		HtmlBody:       rendered.HTMLBody,
		State:          constants.OutboxStatePending,
	})
	if err != nil {
		return nil, &PersistenceError{Stage: "outbox", Err: err}
	}

	_, err = s.sender.SendReminderEmail(ctx, params.ReminderEmailParams{
		To:           recipient,
		Subject:      rendered.Subject,
		HTMLBody:     rendered.HTMLBody,
		TextBody:     rendered.Message,
		DunningLevel: p.DunningLevel,
	})
	if err != nil {
		if _, stateErr := s.queries.UpdateOutboxEntryState(ctx, db.UpdateOutboxEntryStateParams{
			ID:           entry.ID,
			State:        constants.OutboxStateFailed,
			ErrorMessage: pgtype.Text{String: err.Error(), Valid: true},
		}); stateErr != nil {
			s.logger.Error("failed to mark outbox entry failed",
				zap.String("outbox_id", entry.ID.String()),
				zap.Error(stateErr))
		}
		metrics.RecordReminderDispatch(levelLabel(p.DunningLevel), "delivery_failed")
		return nil, err
	}

	if _, err := s.queries.UpdateOutboxEntryState(ctx, db.UpdateOutboxEntryStateParams{
		ID:    entry.ID,
		State: constants.OutboxStateSent,
	}); err != nil {
		s.logger.Error("reminder sent but not recorded",
			zap.String("outbox_id", entry.ID.String()),
			zap.String("payment_id", p.PaymentID.String()),
			zap.String("stage", "outbox"),
			zap.Error(err))
		metrics.RecordReminderDispatch(levelLabel(p.DunningLevel), "persistence_failed")
		return nil, &PersistenceError{Stage: "outbox", EmailSent: true, Err: err}
	}

	sentAt := time.Now()
	record, err := s.queries.InsertReminderRecord(ctx, db.InsertReminderRecordParams{
		OwnerID:        p.OwnerID,
		PaymentID:      p.PaymentID,
		DunningLevel:   p.DunningLevel,
		RecipientEmail: recipient,
		Subject:        rendered.Subject,
		Message:        rendered.Message,
		DeliveryStatus: constants.DeliveryStatusSent,
		SentAt:         pgtype.Timestamptz{Time: sentAt, Valid: true},
	})
	if err != nil {
		s.logger.Error("reminder sent but not recorded",
			zap.String("outbox_id", entry.ID.String()),
			zap.String("payment_id", p.PaymentID.String()),
			zap.String("stage", "record"),
			zap.Error(err))
		metrics.RecordReminderDispatch(levelLabel(p.DunningLevel), "persistence_failed")
		return nil, &PersistenceError{Stage: "record", EmailSent: true, Err: err}
	}

	if _, err := s.queries.UpdateOutboxEntryState(ctx, db.UpdateOutboxEntryStateParams{
		ID:         entry.ID,
		State:      constants.OutboxStateRecorded,
		ReminderID: pgtype.UUID{Bytes: record.ID, Valid: true},
	}); err != nil {
		// The audit record exists; a lagging outbox entry at worst causes the
		// recovery sweep to insert a duplicate record (at-least-once recording).
		s.logger.Warn("outbox state lagging behind reminder record",
			zap.String("outbox_id", entry.ID.String()),
			zap.Error(err))
	}

	if _, err := s.queries.UpdateRentPaymentDunningState(ctx, db.UpdateRentPaymentDunningStateParams{
		ID:               p.PaymentID,
		OwnerID:          p.OwnerID,
		DunningLevel:     p.DunningLevel,
		LastReminderSent: pgtype.Timestamptz{Time: sentAt, Valid: true},
	}); err != nil {
		s.logger.Error("reminder sent but not recorded",
			zap.String("outbox_id", entry.ID.String()),
			zap.String("payment_id", p.PaymentID.String()),
			zap.String("stage", "payment_update"),
			zap.Error(err))
		metrics.RecordReminderDispatch(levelLabel(p.DunningLevel), "persistence_failed")
		return nil, &PersistenceError{Stage: "payment_update", EmailSent: true, Err: err}
	}

	if _, err := s.queries.UpdateOutboxEntryState(ctx, db.UpdateOutboxEntryStateParams{
		ID:    entry.ID,
		State: constants.OutboxStateFinalized,
	}); err != nil {
		s.logger.Warn("failed to finalize outbox entry",
			zap.String("outbox_id", entry.ID.String()),
			zap.Error(err))
	}

	metrics.RecordReminderDispatch(levelLabel(p.DunningLevel), "sent")
	s.logger.Info("reminder dispatched",
		zap.String("payment_id", p.PaymentID.String()),
		zap.Int32("dunning_level", p.DunningLevel),
		zap.String("recipient", recipient))

	return &responses.SendReminderResponse{
		ReminderID:     record.ID,
		PaymentID:      p.PaymentID,
		DunningLevel:   p.DunningLevel,
		RecipientEmail: recipient,
		Subject:        rendered.Subject,
		SentAt:         sentAt,
	}, nil
}

// ListOverduePayments returns the owner's overdue payments with the suggested
// escalation level derived under the owner's policy at the current time.
func (s *ReminderService) ListOverduePayments(ctx context.Context, ownerID uuid.UUID) ([]responses.OverduePaymentResponse, error) {
	policy, err := s.settings.GetPolicy(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	rows, err := s.queries.ListOverdueRentPayments(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue payments: %w", err)
	}

	now := time.Now()
	result := make([]responses.OverduePaymentResponse, len(rows))
	for i, row := range rows {
		daysOverdue := s.escalation.DaysOverdue(row.DueDate.Time, now)
		item := responses.OverduePaymentResponse{
			ID:               row.ID,
			LeaseID:          row.LeaseID,
			TenantName:       row.TenantName,
			TenantEmail:      row.TenantEmail.String,
			PropertyName:     row.PropertyName,
			UnitLabel:        row.UnitLabel.String,
			DueDate:          row.DueDate.Time,
			AmountCents:      row.AmountCents,
			PaidAmountCents:  row.PaidAmountCents,
			OutstandingCents: row.AmountCents - row.PaidAmountCents,
			PaymentStatus:    row.PaymentStatus,
			DaysOverdue:      daysOverdue,
			DunningLevel:     row.DunningLevel,
			SuggestedLevel:   s.escalation.SuggestLevel(row, policy, now),
		}
		if row.LastReminderSent.Valid {
			t := row.LastReminderSent.Time
			item.LastReminderSent = &t
		}
		result[i] = item
	}
	return result, nil
}

// ListReminderHistory returns the audit records for the given payments.
func (s *ReminderService) ListReminderHistory(ctx context.Context, ownerID uuid.UUID, paymentIDs []uuid.UUID) ([]db.ReminderRecord, error) {
	records, err := s.queries.ListReminderRecordsByPaymentIDs(ctx, db.ListReminderRecordsByPaymentIDsParams{
		OwnerID:    ownerID,
		PaymentIds: paymentIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list reminder records: %w", err)
	}
	return records, nil
}

func levelLabel(level int32) string {
	return fmt.Sprintf("%d", level)
}
