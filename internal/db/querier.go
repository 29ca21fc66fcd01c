package db

import (
	"context"

	"github.com/google/uuid"
)

// Querier is the store interface the services depend on. The concrete
// implementation is *Queries over pgx; tests use the generated MockQuerier.
type Querier interface {
	// Payment store
	GetRentPaymentForDunning(ctx context.Context, arg GetRentPaymentForDunningParams) (GetRentPaymentForDunningRow, error)
	ListOverdueRentPayments(ctx context.Context, ownerID uuid.UUID) ([]ListOverdueRentPaymentsRow, error)
	UpdateRentPaymentDunningState(ctx context.Context, arg UpdateRentPaymentDunningStateParams) (RentPayment, error)

	// Template store
	GetActiveEmailTemplate(ctx context.Context, arg GetActiveEmailTemplateParams) (DunningEmailTemplate, error)
	ListEmailTemplates(ctx context.Context, ownerID uuid.UUID) ([]DunningEmailTemplate, error)
	CountEmailTemplates(ctx context.Context, ownerID uuid.UUID) (int64, error)
	CreateEmailTemplate(ctx context.Context, arg CreateEmailTemplateParams) (DunningEmailTemplate, error)
	UpdateEmailTemplate(ctx context.Context, arg UpdateEmailTemplateParams) (DunningEmailTemplate, error)
	DeactivateEmailTemplates(ctx context.Context, ownerID uuid.UUID) error

	// Reminder history store
	InsertReminderRecord(ctx context.Context, arg InsertReminderRecordParams) (ReminderRecord, error)
	ListReminderRecordsByPaymentIDs(ctx context.Context, arg ListReminderRecordsByPaymentIDsParams) ([]ReminderRecord, error)

	// Per-owner escalation policy
	GetDunningSettings(ctx context.Context, ownerID uuid.UUID) (DunningSetting, error)
	UpsertDunningSettings(ctx context.Context, arg UpsertDunningSettingsParams) (DunningSetting, error)

	// Dispatch outbox
	CreateOutboxEntry(ctx context.Context, arg CreateOutboxEntryParams) (DunningOutboxEntry, error)
	UpdateOutboxEntryState(ctx context.Context, arg UpdateOutboxEntryStateParams) (DunningOutboxEntry, error)
	ListStalledOutboxEntries(ctx context.Context, arg ListStalledOutboxEntriesParams) ([]DunningOutboxEntry, error)
}

var _ Querier = (*Queries)(nil)
