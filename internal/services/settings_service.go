package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/sschier-sketch/folio-api/internal/db"
	"github.com/sschier-sketch/folio-api/internal/types/business"
)

// SettingsService resolves the per-owner escalation policy. Owners without a
// stored row get the stock 7/14/28 thresholds.
type SettingsService struct {
	queries db.Querier
	logger  *zap.Logger
}

func NewSettingsService(queries db.Querier, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		queries: queries,
		logger:  logger,
	}
}

// GetPolicy returns the owner's stored policy or the defaults when none exists.
func (s *SettingsService) GetPolicy(ctx context.Context, ownerID uuid.UUID) (business.DunningPolicy, error) {
	setting, err := s.queries.GetDunningSettings(ctx, ownerID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return business.DefaultDunningPolicy(), nil
		}
		return business.DunningPolicy{}, fmt.Errorf("failed to get dunning settings: %w", err)
	}
	return business.DunningPolicy{
		Level1Days: setting.Level1Days,
		Level2Days: setting.Level2Days,
		Level3Days: setting.Level3Days,
	}, nil
}

// UpdatePolicy validates and persists new thresholds for the owner.
func (s *SettingsService) UpdatePolicy(ctx context.Context, ownerID uuid.UUID, policy business.DunningPolicy) (business.DunningPolicy, error) {
	if err := policy.Validate(); err != nil {
		return business.DunningPolicy{}, err
	}

	setting, err := s.queries.UpsertDunningSettings(ctx, db.UpsertDunningSettingsParams{
		OwnerID:    ownerID,
		Level1Days: policy.Level1Days,
		Level2Days: policy.Level2Days,
		Level3Days: policy.Level3Days,
	})
	if err != nil {
		return business.DunningPolicy{}, fmt.Errorf("failed to update dunning settings: %w", err)
	}

	s.logger.Info("dunning thresholds updated",
		zap.String("owner_id", ownerID.String()),
		zap.Int32("level1_days", setting.Level1Days),
		zap.Int32("level2_days", setting.Level2Days),
		zap.Int32("level3_days", setting.Level3Days))

	return business.DunningPolicy{
		Level1Days: setting.Level1Days,
		Level2Days: setting.Level2Days,
		Level3Days: setting.Level3Days,
	}, nil
}
