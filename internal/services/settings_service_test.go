package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/sschier-sketch/folio-api/internal/db"
	"github.com/sschier-sketch/folio-api/internal/mocks"
	"github.com/sschier-sketch/folio-api/internal/services"
	"github.com/sschier-sketch/folio-api/internal/types/business"
)

func TestSettingsService_GetPolicy_DefaultsWhenUnset(t *testing.T) {
	querier := mocks.NewMockQuerierForTest(t)
	service := services.NewSettingsService(querier, zap.NewNop())
	ownerID := uuid.New()

	querier.EXPECT().
		GetDunningSettings(gomock.Any(), ownerID).
		Return(db.DunningSetting{}, pgx.ErrNoRows)

	policy, err := service.GetPolicy(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, business.DefaultDunningPolicy(), policy)
}

func TestSettingsService_GetPolicy_ReturnsStored(t *testing.T) {
	querier := mocks.NewMockQuerierForTest(t)
	service := services.NewSettingsService(querier, zap.NewNop())
	ownerID := uuid.New()

	querier.EXPECT().
		GetDunningSettings(gomock.Any(), ownerID).
		Return(db.DunningSetting{
			OwnerID:    ownerID,
			Level1Days: 5,
			Level2Days: 10,
			Level3Days: 20,
		}, nil)

	policy, err := service.GetPolicy(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, business.DunningPolicy{Level1Days: 5, Level2Days: 10, Level3Days: 20}, policy)
}

func TestSettingsService_UpdatePolicy(t *testing.T) {
	querier := mocks.NewMockQuerierForTest(t)
	service := services.NewSettingsService(querier, zap.NewNop())
	ownerID := uuid.New()

	querier.EXPECT().
		UpsertDunningSettings(gomock.Any(), db.UpsertDunningSettingsParams{
			OwnerID:    ownerID,
			Level1Days: 3,
			Level2Days: 10,
			Level3Days: 21,
		}).
		Return(db.DunningSetting{
			OwnerID:    ownerID,
			Level1Days: 3,
			Level2Days: 10,
			Level3Days: 21,
		}, nil)

	policy, err := service.UpdatePolicy(context.Background(), ownerID, business.DunningPolicy{
		Level1Days: 3, Level2Days: 10, Level3Days: 21,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(21), policy.Level3Days)
}

func TestSettingsService_UpdatePolicy_RejectsInvalid(t *testing.T) {
	querier := mocks.NewMockQuerierForTest(t)
	service := services.NewSettingsService(querier, zap.NewNop())
	ownerID := uuid.New()

	tests := []struct {
		name   string
		policy business.DunningPolicy
	}{
		{name: "non-positive level 1", policy: business.DunningPolicy{Level1Days: 0, Level2Days: 14, Level3Days: 28}},
		{name: "level 2 not above level 1", policy: business.DunningPolicy{Level1Days: 14, Level2Days: 14, Level3Days: 28}},
		{name: "level 3 below level 2", policy: business.DunningPolicy{Level1Days: 7, Level2Days: 20, Level3Days: 14}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No store call happens for invalid input
			_, err := service.UpdatePolicy(context.Background(), ownerID, tt.policy)
			assert.Error(t, err)
		})
	}
}
