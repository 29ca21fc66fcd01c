package params

import "github.com/google/uuid"

// SendReminderParams identifies one dispatch action.
type SendReminderParams struct {
	OwnerID      uuid.UUID
	PaymentID    uuid.UUID
	DunningLevel int32
}

// ReminderEmailParams is what the email sender needs for one reminder.
type ReminderEmailParams struct {
	To           string
	Subject      string
	HTMLBody     string
	TextBody     string
	DunningLevel int32
}

// RecoverOutboxParams bounds one recovery sweep.
type RecoverOutboxParams struct {
	OlderThanMinutes int32
	Limit            int32
}
