package db

import (
	"context"

	"github.com/google/uuid"
)

const getActiveEmailTemplate = `
SELECT id, owner_id, dunning_level, subject, message, is_active, created_at, updated_at
FROM dunning_email_templates
WHERE owner_id = $1 AND dunning_level = $2 AND is_active = true
ORDER BY updated_at DESC
LIMIT 1
`

type GetActiveEmailTemplateParams struct {
	OwnerID      uuid.UUID `json:"owner_id"`
	DunningLevel int32     `json:"dunning_level"`
}

func (q *Queries) GetActiveEmailTemplate(ctx context.Context, arg GetActiveEmailTemplateParams) (DunningEmailTemplate, error) {
	row := q.db.QueryRow(ctx, getActiveEmailTemplate, arg.OwnerID, arg.DunningLevel)
	var i DunningEmailTemplate
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.DunningLevel,
		&i.Subject,
		&i.Message,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listEmailTemplates = `
SELECT id, owner_id, dunning_level, subject, message, is_active, created_at, updated_at
FROM dunning_email_templates
WHERE owner_id = $1
ORDER BY dunning_level ASC, updated_at DESC
`

func (q *Queries) ListEmailTemplates(ctx context.Context, ownerID uuid.UUID) ([]DunningEmailTemplate, error) {
	rows, err := q.db.Query(ctx, listEmailTemplates, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []DunningEmailTemplate
	for rows.Next() {
		var i DunningEmailTemplate
		if err := rows.Scan(
			&i.ID,
			&i.OwnerID,
			&i.DunningLevel,
			&i.Subject,
			&i.Message,
			&i.IsActive,
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

const countEmailTemplates = `
SELECT count(*) FROM dunning_email_templates WHERE owner_id = $1
`

func (q *Queries) CountEmailTemplates(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	row := q.db.QueryRow(ctx, countEmailTemplates, ownerID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createEmailTemplate = `
INSERT INTO dunning_email_templates (owner_id, dunning_level, subject, message, is_active)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, owner_id, dunning_level, subject, message, is_active, created_at, updated_at
`

type CreateEmailTemplateParams struct {
	OwnerID      uuid.UUID `json:"owner_id"`
	DunningLevel int32     `json:"dunning_level"`
	Subject      string    `json:"subject"`
	Message      string    `json:"message"`
	IsActive     bool      `json:"is_active"`
}

func (q *Queries) CreateEmailTemplate(ctx context.Context, arg CreateEmailTemplateParams) (DunningEmailTemplate, error) {
	row := q.db.QueryRow(ctx, createEmailTemplate,
		arg.OwnerID,
		arg.DunningLevel,
		arg.Subject,
		arg.Message,
		arg.IsActive,
	)
	var i DunningEmailTemplate
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.DunningLevel,
		&i.Subject,
		&i.Message,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateEmailTemplate = `
UPDATE dunning_email_templates
SET subject = $3,
    message = $4,
    is_active = $5,
    updated_at = now()
WHERE id = $1 AND owner_id = $2
RETURNING id, owner_id, dunning_level, subject, message, is_active, created_at, updated_at
`

type UpdateEmailTemplateParams struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"owner_id"`
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	IsActive bool     `json:"is_active"`
}

func (q *Queries) UpdateEmailTemplate(ctx context.Context, arg UpdateEmailTemplateParams) (DunningEmailTemplate, error) {
	row := q.db.QueryRow(ctx, updateEmailTemplate,
		arg.ID,
		arg.OwnerID,
		arg.Subject,
		arg.Message,
		arg.IsActive,
	)
	var i DunningEmailTemplate
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.DunningLevel,
		&i.Subject,
		&i.Message,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deactivateEmailTemplates = `
UPDATE dunning_email_templates
SET is_active = false,
    updated_at = now()
WHERE owner_id = $1 AND is_active = true
`

func (q *Queries) DeactivateEmailTemplates(ctx context.Context, ownerID uuid.UUID) error {
	_, err := q.db.Exec(ctx, deactivateEmailTemplates, ownerID)
	return err
}
