package responses

import (
	"time"

	"github.com/google/uuid"
)

// OverduePaymentResponse is one overdue payment with its derived dunning view.
type OverduePaymentResponse struct {
	ID               uuid.UUID  `json:"id"`
	LeaseID          uuid.UUID  `json:"lease_id"`
	TenantName       string     `json:"tenant_name"`
	TenantEmail      string     `json:"tenant_email,omitempty"`
	PropertyName     string     `json:"property_name"`
	UnitLabel        string     `json:"unit_label,omitempty"`
	DueDate          time.Time  `json:"due_date"`
	AmountCents      int64      `json:"amount_cents"`
	PaidAmountCents  int64      `json:"paid_amount_cents"`
	OutstandingCents int64      `json:"outstanding_cents"`
	PaymentStatus    string     `json:"payment_status"`
	DaysOverdue      int32      `json:"days_overdue"`
	DunningLevel     int32      `json:"dunning_level"`
	SuggestedLevel   int32      `json:"suggested_level"`
	LastReminderSent *time.Time `json:"last_reminder_sent,omitempty"`
}

// SendReminderResponse reports one successful dispatch.
type SendReminderResponse struct {
	ReminderID     uuid.UUID `json:"reminder_id"`
	PaymentID      uuid.UUID `json:"payment_id"`
	DunningLevel   int32     `json:"dunning_level"`
	RecipientEmail string    `json:"recipient_email"`
	Subject        string    `json:"subject"`
	SentAt         time.Time `json:"sent_at"`
}

// OutboxRecoveryResult summarizes one recovery sweep.
type OutboxRecoveryResult struct {
	Scanned   int `json:"scanned"`
	Finalized int `json:"finalized"`
	Abandoned int `json:"abandoned"`
	Failed    int `json:"failed"`
}
