package services

import (
	"time"

	"github.com/sschier-sketch/folio-api/internal/db"
	"github.com/sschier-sketch/folio-api/internal/types/business"
)

// EscalationService classifies overdue payments into dunning levels. It is
// pure: no store access, no clock of its own.
type EscalationService struct{}

func NewEscalationService() *EscalationService {
	return &EscalationService{}
}

// Classify maps an overdue state to a suggested dunning level under the given
// policy. A paid payment is always level 0, as is anything overdue for fewer
// than Level1Days (technically overdue but no reminder suggested yet).
// The caller is responsible for validating the policy; see DunningPolicy.Validate.
func (s *EscalationService) Classify(daysOverdue int32, paid bool, policy business.DunningPolicy) int32 {
	if paid || daysOverdue <= 0 {
		return 0
	}
	switch {
	case daysOverdue >= policy.Level3Days:
		return 3
	case daysOverdue >= policy.Level2Days:
		return 2
	case daysOverdue >= policy.Level1Days:
		return 1
	default:
		return 0
	}
}

// DaysOverdue derives how many whole days a payment is past due at the given
// moment. The stored payment field may lag; this value is authoritative.
func (s *EscalationService) DaysOverdue(dueDate time.Time, now time.Time) int32 {
	due := time.Date(dueDate.Year(), dueDate.Month(), dueDate.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int32(today.Sub(due).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// SuggestLevel classifies one overdue-listing row at the given moment.
func (s *EscalationService) SuggestLevel(row db.ListOverdueRentPaymentsRow, policy business.DunningPolicy, now time.Time) int32 {
	paid := row.IsPaid.Valid && row.IsPaid.Bool
	return s.Classify(s.DaysOverdue(row.DueDate.Time, now), paid, policy)
}
