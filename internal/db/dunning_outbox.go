package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createOutboxEntry = `
INSERT INTO dunning_outbox (owner_id, payment_id, dunning_level, recipient_email,
                            subject, message, html_body, state)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, owner_id, payment_id, dunning_level, recipient_email,
          subject, message, html_body, state, reminder_id, error_message, created_at, updated_at
`

type CreateOutboxEntryParams struct {
	OwnerID        uuid.UUID `json:"owner_id"`
	PaymentID      uuid.UUID `json:"payment_id"`
	DunningLevel   int32     `json:"dunning_level"`
	RecipientEmail string    `json:"recipient_email"`
	Subject        string    `json:"subject"`
	Message        string    `json:"message"`
	HtmlBody       string    `json:"html_body"`
	State          string    `json:"state"`
}

func (q *Queries) CreateOutboxEntry(ctx context.Context, arg CreateOutboxEntryParams) (DunningOutboxEntry, error) {
	row := q.db.QueryRow(ctx, createOutboxEntry,
		arg.OwnerID,
		arg.PaymentID,
		arg.DunningLevel,
		arg.RecipientEmail,
		arg.Subject,
		arg.Message,
		arg.HtmlBody,
		arg.State,
	)
	return scanOutboxEntry(row)
}

const updateOutboxEntryState = `
UPDATE dunning_outbox
SET state = $2,
    reminder_id = COALESCE($3, reminder_id),
    error_message = COALESCE($4, error_message),
    updated_at = now()
WHERE id = $1
RETURNING id, owner_id, payment_id, dunning_level, recipient_email,
          subject, message, html_body, state, reminder_id, error_message, created_at, updated_at
`

type UpdateOutboxEntryStateParams struct {
	ID           uuid.UUID   `json:"id"`
	State        string      `json:"state"`
	ReminderID   pgtype.UUID `json:"reminder_id"`
	ErrorMessage pgtype.Text `json:"error_message"`
}

func (q *Queries) UpdateOutboxEntryState(ctx context.Context, arg UpdateOutboxEntryStateParams) (DunningOutboxEntry, error) {
	row := q.db.QueryRow(ctx, updateOutboxEntryState,
		arg.ID,
		arg.State,
		arg.ReminderID,
		arg.ErrorMessage,
	)
	return scanOutboxEntry(row)
}

const listStalledOutboxEntries = `
SELECT id, owner_id, payment_id, dunning_level, recipient_email,
       subject, message, html_body, state, reminder_id, error_message, created_at, updated_at
FROM dunning_outbox
WHERE state IN ('pending', 'sent', 'recorded')
  AND updated_at < $1
ORDER BY updated_at ASC
LIMIT $2
`

type ListStalledOutboxEntriesParams struct {
	UpdatedBefore pgtype.Timestamptz `json:"updated_before"`
	Limit         int32              `json:"limit"`
}

func (q *Queries) ListStalledOutboxEntries(ctx context.Context, arg ListStalledOutboxEntriesParams) ([]DunningOutboxEntry, error) {
	rows, err := q.db.Query(ctx, listStalledOutboxEntries, arg.UpdatedBefore, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []DunningOutboxEntry
	for rows.Next() {
		var i DunningOutboxEntry
		if err := rows.Scan(
			&i.ID,
			&i.OwnerID,
			&i.PaymentID,
			&i.DunningLevel,
			&i.RecipientEmail,
			&i.Subject,
			&i.Message,
			&i.HtmlBody,
			&i.State,
			&i.ReminderID,
			&i.ErrorMessage,
			&i.CreatedAt,
			&i.UpdatedAt,
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

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOutboxEntry(row rowScanner) (DunningOutboxEntry, error) {
	var i DunningOutboxEntry
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.PaymentID,
		&i.DunningLevel,
		&i.RecipientEmail,
		&i.Subject,
		&i.Message,
		&i.HtmlBody,
		&i.State,
		&i.ReminderID,
		&i.ErrorMessage,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
