package db

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// RentPayment is one billing-period obligation for a lease. The dunning fields
// (DunningLevel, LastReminderSent) are denormalized state owned by the
// reminder dispatcher; DaysOverdue is always derived from DueDate, never read
// back from storage authoritatively.
type RentPayment struct {
	ID               uuid.UUID          `json:"id"`
	OwnerID          uuid.UUID          `json:"owner_id"`
	LeaseID          uuid.UUID          `json:"lease_id"`
	DueDate          pgtype.Date        `json:"due_date"`
	AmountCents      int64              `json:"amount_cents"`
	PaidAmountCents  int64              `json:"paid_amount_cents"`
	IsPaid           pgtype.Bool        `json:"is_paid"`
	PaymentStatus    string             `json:"payment_status"`
	DunningLevel     int32              `json:"dunning_level"`
	LastReminderSent pgtype.Timestamptz `json:"last_reminder_sent"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
}

// DunningEmailTemplate is one reminder template per escalation level per owner.
type DunningEmailTemplate struct {
	ID           uuid.UUID          `json:"id"`
	OwnerID      uuid.UUID          `json:"owner_id"`
	DunningLevel int32              `json:"dunning_level"`
	Subject      string             `json:"subject"`
	Message      string             `json:"message"`
	IsActive     pgtype.Bool        `json:"is_active"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

// ReminderRecord is an append-only audit entry for one sent reminder.
type ReminderRecord struct {
	ID             uuid.UUID          `json:"id"`
	OwnerID        uuid.UUID          `json:"owner_id"`
	PaymentID      uuid.UUID          `json:"payment_id"`
	DunningLevel   int32              `json:"dunning_level"`
	RecipientEmail string             `json:"recipient_email"`
	Subject        string             `json:"subject"`
	Message        string             `json:"message"`
	DeliveryStatus string             `json:"delivery_status"`
	ErrorMessage   pgtype.Text        `json:"error_message"`
	SentAt         pgtype.Timestamptz `json:"sent_at"`
}

// DunningSetting holds the per-owner escalation day thresholds.
type DunningSetting struct {
	OwnerID    uuid.UUID          `json:"owner_id"`
	Level1Days int32              `json:"level1_days"`
	Level2Days int32              `json:"level2_days"`
	Level3Days int32              `json:"level3_days"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
}

// DunningOutboxEntry is the durable record of one dispatch action, written
// before the email provider is called so a crash mid-dispatch is recoverable.
type DunningOutboxEntry struct {
	ID             uuid.UUID          `json:"id"`
	OwnerID        uuid.UUID          `json:"owner_id"`
	PaymentID      uuid.UUID          `json:"payment_id"`
	DunningLevel   int32              `json:"dunning_level"`
	RecipientEmail string             `json:"recipient_email"`
	Subject        string             `json:"subject"`
	Message        string             `json:"message"`
	HtmlBody       string             `json:"html_body"`
	State          string             `json:"state"`
	ReminderID     pgtype.UUID        `json:"reminder_id"`
	ErrorMessage   pgtype.Text        `json:"error_message"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}
