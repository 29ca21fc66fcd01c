package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Payment status values
	PaymentStatusPaid    = "paid"
	PaymentStatusPartial = "partial"
	PaymentStatusUnpaid  = "unpaid"

	// Reminder delivery status values
	DeliveryStatusSent      = "sent"
	DeliveryStatusDelivered = "delivered"
	DeliveryStatusFailed    = "failed"
	DeliveryStatusBounced   = "bounced"

	// Outbox states
	OutboxStatePending   = "pending"
	OutboxStateSent      = "sent"
	OutboxStateRecorded  = "recorded"
	OutboxStateFinalized = "finalized"
	OutboxStateFailed    = "failed"
	OutboxStateAbandoned = "abandoned"

	// Currencies
	EURCurrency = "EUR"
)

// Dunning level bounds. Level 0 means no reminder is due.
const (
	MinDunningLevel = int32(1)
	MaxDunningLevel = int32(3)
)

// LateFeeCents is the fixed surcharge added to the outstanding amount for the
// [TOTAL_AMOUNT] placeholder. Applied semantically at level 3 but computed
// unconditionally.
const LateFeeCents = int64(500)
