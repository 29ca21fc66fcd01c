package services

import (
	"errors"
	"fmt"
)

// Sentinel errors for the non-retryable precondition failures. Handlers map
// these to actionable HTTP responses.
var (
	// ErrTemplateMissing means no active email template exists for the
	// requested owner/level. The owner has to configure templates first.
	ErrTemplateMissing = errors.New("no active email template for this dunning level")

	// ErrRecipientMissing means the payment's tenant has no email on file.
	// No send is attempted.
	ErrRecipientMissing = errors.New("tenant has no email address on file")

	// ErrInvalidDunningLevel means the requested level is outside 1-3.
	ErrInvalidDunningLevel = errors.New("dunning level must be between 1 and 3")
)

// DeliveryError wraps a failure reported by the email provider or a timeout on
// the provider call. The reminder was not recorded; manual retry is safe.
type DeliveryError struct {
	Timeout bool
	Err     error
}

func (e *DeliveryError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("email delivery timed out: %v", e.Err)
	}
	return fmt.Sprintf("email delivery failed: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// PersistenceError wraps a store failure during dispatch. When EmailSent is
// true the email already went out but the bookkeeping is incomplete; operators
// reconcile via the outbox entry named by OutboxID.
type PersistenceError struct {
	Stage     string // "outbox", "record" or "payment_update"
	EmailSent bool
	Err       error
}

func (e *PersistenceError) Error() string {
	if e.EmailSent {
		return fmt.Sprintf("reminder sent but not recorded (stage %s): %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("reminder persistence failed (stage %s): %v", e.Stage, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
