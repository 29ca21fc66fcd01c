package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertReminderRecord = `
INSERT INTO reminder_records (owner_id, payment_id, dunning_level, recipient_email,
                              subject, message, delivery_status, error_message, sent_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, owner_id, payment_id, dunning_level, recipient_email,
          subject, message, delivery_status, error_message, sent_at
`

type InsertReminderRecordParams struct {
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

func (q *Queries) InsertReminderRecord(ctx context.Context, arg InsertReminderRecordParams) (ReminderRecord, error) {
	row := q.db.QueryRow(ctx, insertReminderRecord,
		arg.OwnerID,
		arg.PaymentID,
		arg.DunningLevel,
		arg.RecipientEmail,
		arg.Subject,
		arg.Message,
		arg.DeliveryStatus,
		arg.ErrorMessage,
		arg.SentAt,
	)
	var i ReminderRecord
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.PaymentID,
		&i.DunningLevel,
		&i.RecipientEmail,
		&i.Subject,
		&i.Message,
		&i.DeliveryStatus,
		&i.ErrorMessage,
		&i.SentAt,
	)
	return i, err
}

const listReminderRecordsByPaymentIDs = `
SELECT id, owner_id, payment_id, dunning_level, recipient_email,
       subject, message, delivery_status, error_message, sent_at
FROM reminder_records
WHERE owner_id = $1 AND payment_id = ANY($2::uuid[])
ORDER BY sent_at DESC
`

type ListReminderRecordsByPaymentIDsParams struct {
	OwnerID    uuid.UUID   `json:"owner_id"`
	PaymentIds []uuid.UUID `json:"payment_ids"`
}

func (q *Queries) ListReminderRecordsByPaymentIDs(ctx context.Context, arg ListReminderRecordsByPaymentIDsParams) ([]ReminderRecord, error) {
	rows, err := q.db.Query(ctx, listReminderRecordsByPaymentIDs, arg.OwnerID, arg.PaymentIds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ReminderRecord
	for rows.Next() {
		var i ReminderRecord
		if err := rows.Scan(
			&i.ID,
			&i.OwnerID,
			&i.PaymentID,
			&i.DunningLevel,
			&i.RecipientEmail,
			&i.Subject,
			&i.Message,
			&i.DeliveryStatus,
			&i.ErrorMessage,
			&i.SentAt,
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
