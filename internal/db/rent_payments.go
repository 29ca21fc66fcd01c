package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getRentPaymentForDunning = `
SELECT rp.id, rp.owner_id, rp.lease_id, rp.due_date, rp.amount_cents, rp.paid_amount_cents,
       rp.is_paid, rp.payment_status, rp.dunning_level, rp.last_reminder_sent,
       t.full_name AS tenant_name, t.email AS tenant_email,
       p.name AS property_name, u.label AS unit_label
FROM rent_payments rp
JOIN leases l ON l.id = rp.lease_id
JOIN tenants t ON t.id = l.tenant_id
JOIN units u ON u.id = l.unit_id
JOIN properties p ON p.id = u.property_id
WHERE rp.id = $1 AND rp.owner_id = $2
`

type GetRentPaymentForDunningParams struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"owner_id"`
}

type GetRentPaymentForDunningRow struct {
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
	TenantName       string             `json:"tenant_name"`
	TenantEmail      pgtype.Text        `json:"tenant_email"`
	PropertyName     string             `json:"property_name"`
	UnitLabel        pgtype.Text        `json:"unit_label"`
}

func (q *Queries) GetRentPaymentForDunning(ctx context.Context, arg GetRentPaymentForDunningParams) (GetRentPaymentForDunningRow, error) {
	row := q.db.QueryRow(ctx, getRentPaymentForDunning, arg.ID, arg.OwnerID)
	var i GetRentPaymentForDunningRow
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.LeaseID,
		&i.DueDate,
		&i.AmountCents,
		&i.PaidAmountCents,
		&i.IsPaid,
		&i.PaymentStatus,
		&i.DunningLevel,
		&i.LastReminderSent,
		&i.TenantName,
		&i.TenantEmail,
		&i.PropertyName,
		&i.UnitLabel,
	)
	return i, err
}

const listOverdueRentPayments = `
SELECT rp.id, rp.owner_id, rp.lease_id, rp.due_date, rp.amount_cents, rp.paid_amount_cents,
       rp.is_paid, rp.payment_status, rp.dunning_level, rp.last_reminder_sent,
       t.full_name AS tenant_name, t.email AS tenant_email,
       p.name AS property_name, u.label AS unit_label
FROM rent_payments rp
JOIN leases l ON l.id = rp.lease_id
JOIN tenants t ON t.id = l.tenant_id
JOIN units u ON u.id = l.unit_id
JOIN properties p ON p.id = u.property_id
WHERE rp.owner_id = $1
  AND rp.is_paid = false
  AND rp.due_date < CURRENT_DATE
ORDER BY rp.due_date ASC
`

type ListOverdueRentPaymentsRow = GetRentPaymentForDunningRow

func (q *Queries) ListOverdueRentPayments(ctx context.Context, ownerID uuid.UUID) ([]ListOverdueRentPaymentsRow, error) {
	rows, err := q.db.Query(ctx, listOverdueRentPayments, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListOverdueRentPaymentsRow
	for rows.Next() {
		var i ListOverdueRentPaymentsRow
		if err := rows.Scan(
			&i.ID,
			&i.OwnerID,
			&i.LeaseID,
			&i.DueDate,
			&i.AmountCents,
			&i.PaidAmountCents,
			&i.IsPaid,
			&i.PaymentStatus,
			&i.DunningLevel,
			&i.LastReminderSent,
			&i.TenantName,
			&i.TenantEmail,
			&i.PropertyName,
			&i.UnitLabel,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateRentPaymentDunningState = `
UPDATE rent_payments
SET dunning_level = $3,
    last_reminder_sent = $4,
    updated_at = now()
WHERE id = $1 AND owner_id = $2
RETURNING id, owner_id, lease_id, due_date, amount_cents, paid_amount_cents,
          is_paid, payment_status, dunning_level, last_reminder_sent, created_at, updated_at
`

type UpdateRentPaymentDunningStateParams struct {
	ID               uuid.UUID          `json:"id"`
	OwnerID          uuid.UUID          `json:"owner_id"`
	DunningLevel     int32              `json:"dunning_level"`
	LastReminderSent pgtype.Timestamptz `json:"last_reminder_sent"`
}

func (q *Queries) UpdateRentPaymentDunningState(ctx context.Context, arg UpdateRentPaymentDunningStateParams) (RentPayment, error) {
	row := q.db.QueryRow(ctx, updateRentPaymentDunningState,
		arg.ID,
		arg.OwnerID,
		arg.DunningLevel,
		arg.LastReminderSent,
	)
	var i RentPayment
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.LeaseID,
		&i.DueDate,
		&i.AmountCents,
		&i.PaidAmountCents,
		&i.IsPaid,
		&i.PaymentStatus,
		&i.DunningLevel,
		&i.LastReminderSent,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
