package interfaces

import (
	"context"

	"github.com/google/uuid"

	"github.com/sschier-sketch/folio-api/internal/db"
	"github.com/sschier-sketch/folio-api/internal/types/business"
	"github.com/sschier-sketch/folio-api/internal/types/params"
	"github.com/sschier-sketch/folio-api/internal/types/responses"
)

// ReminderService handles reminder dispatch and overdue listing operations
type ReminderService interface {
	SendReminder(ctx context.Context, p params.SendReminderParams) (*responses.SendReminderResponse, error)
	ListOverduePayments(ctx context.Context, ownerID uuid.UUID) ([]responses.OverduePaymentResponse, error)
	ListReminderHistory(ctx context.Context, ownerID uuid.UUID, paymentIDs []uuid.UUID) ([]db.ReminderRecord, error)
}

// TemplateService handles dunning email template operations
type TemplateService interface {
	GetActiveTemplate(ctx context.Context, ownerID uuid.UUID, level int32) (*db.DunningEmailTemplate, error)
	ListTemplates(ctx context.Context, ownerID uuid.UUID) ([]db.DunningEmailTemplate, error)
	UpdateTemplate(ctx context.Context, arg db.UpdateEmailTemplateParams) (*db.DunningEmailTemplate, error)
	ResetDefaults(ctx context.Context, ownerID uuid.UUID) ([]db.DunningEmailTemplate, error)
	Render(template *db.DunningEmailTemplate, rc business.ReminderContext) *business.RenderedReminder
}

// SettingsService handles per-owner escalation policy operations
type SettingsService interface {
	GetPolicy(ctx context.Context, ownerID uuid.UUID) (business.DunningPolicy, error)
	UpdatePolicy(ctx context.Context, ownerID uuid.UUID, policy business.DunningPolicy) (business.DunningPolicy, error)
}

// OutboxService handles recovery of interrupted reminder dispatches
type OutboxService interface {
	RecoverStalled(ctx context.Context, p params.RecoverOutboxParams) (*responses.OutboxRecoveryResult, error)
}

// EmailSender sends rendered reminder emails through the delivery provider
type EmailSender interface {
	SendReminderEmail(ctx context.Context, p params.ReminderEmailParams) (string, error)
}
