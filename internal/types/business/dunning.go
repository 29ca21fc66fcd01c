package business

import (
	"fmt"
	"time"
)

// DunningPolicy holds the escalation day thresholds for one owner. Thresholds
// must be strictly increasing and positive; a payment fewer than Level1Days
// overdue gets no reminder suggestion.
type DunningPolicy struct {
	Level1Days int32 `json:"level1_days"`
	Level2Days int32 `json:"level2_days"`
	Level3Days int32 `json:"level3_days"`
}

// DefaultDunningPolicy returns the stock 7/14/28 day thresholds.
func DefaultDunningPolicy() DunningPolicy {
	return DunningPolicy{
		Level1Days: 7,
		Level2Days: 14,
		Level3Days: 28,
	}
}

// Validate rejects non-monotonic or non-positive threshold configuration.
func (p DunningPolicy) Validate() error {
	if p.Level1Days <= 0 {
		return fmt.Errorf("level1_days must be positive, got %d", p.Level1Days)
	}
	if p.Level1Days >= p.Level2Days || p.Level2Days >= p.Level3Days {
		return fmt.Errorf("thresholds must be strictly increasing, got %d/%d/%d",
			p.Level1Days, p.Level2Days, p.Level3Days)
	}
	return nil
}

// ReminderContext carries the substitution values for one rendered reminder.
type ReminderContext struct {
	TenantName       string
	PropertyName     string
	UnitLabel        string
	OutstandingCents int64
	DueDate          time.Time
}

// RenderedReminder is the renderer output: subject and plain-text body with
// all placeholders substituted, plus the derived branded HTML document.
type RenderedReminder struct {
	Subject  string
	Message  string
	HTMLBody string
}
