package db

import (
	"context"

	"github.com/google/uuid"
)

const getDunningSettings = `
SELECT owner_id, level1_days, level2_days, level3_days, updated_at
FROM dunning_settings
WHERE owner_id = $1
`

func (q *Queries) GetDunningSettings(ctx context.Context, ownerID uuid.UUID) (DunningSetting, error) {
	row := q.db.QueryRow(ctx, getDunningSettings, ownerID)
	var i DunningSetting
	err := row.Scan(
		&i.OwnerID,
		&i.Level1Days,
		&i.Level2Days,
		&i.Level3Days,
		&i.UpdatedAt,
	)
	return i, err
}

const upsertDunningSettings = `
INSERT INTO dunning_settings (owner_id, level1_days, level2_days, level3_days)
VALUES ($1, $2, $3, $4)
ON CONFLICT (owner_id) DO UPDATE
SET level1_days = EXCLUDED.level1_days,
    level2_days = EXCLUDED.level2_days,
    level3_days = EXCLUDED.level3_days,
    updated_at = now()
RETURNING owner_id, level1_days, level2_days, level3_days, updated_at
`

type UpsertDunningSettingsParams struct {
	OwnerID    uuid.UUID `json:"owner_id"`
	Level1Days int32     `json:"level1_days"`
	Level2Days int32     `json:"level2_days"`
	Level3Days int32     `json:"level3_days"`
}

func (q *Queries) UpsertDunningSettings(ctx context.Context, arg UpsertDunningSettingsParams) (DunningSetting, error) {
	row := q.db.QueryRow(ctx, upsertDunningSettings,
		arg.OwnerID,
		arg.Level1Days,
		arg.Level2Days,
		arg.Level3Days,
	)
	var i DunningSetting
	err := row.Scan(
		&i.OwnerID,
		&i.Level1Days,
		&i.Level2Days,
		&i.Level3Days,
		&i.UpdatedAt,
	)
	return i, err
}
