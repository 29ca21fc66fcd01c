package processor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sschier-sketch/folio-api/internal/interfaces"
	"github.com/sschier-sketch/folio-api/internal/types/params"
	"github.com/sschier-sketch/folio-api/internal/types/responses"
)

// OutboxProcessor runs the periodic outbox recovery sweep.
type OutboxProcessor struct {
	outboxService interfaces.OutboxService
	logger        *zap.Logger

	olderThanMinutes int32
	batchSize        int32
}

// NewOutboxProcessor creates a processor sweeping entries untouched for
// longer than olderThanMinutes, at most batchSize per run. Zero values fall
// back to the service defaults.
func NewOutboxProcessor(outboxService interfaces.OutboxService, logger *zap.Logger, olderThanMinutes, batchSize int32) *OutboxProcessor {
	return &OutboxProcessor{
		outboxService:    outboxService,
		logger:           logger,
		olderThanMinutes: olderThanMinutes,
		batchSize:        batchSize,
	}
}

// RunSweep performs one recovery pass over stalled reminder dispatches.
func (p *OutboxProcessor) RunSweep(ctx context.Context) (*responses.OutboxRecoveryResult, error) {
	p.logger.Info("Starting outbox recovery sweep")

	result, err := p.outboxService.RecoverStalled(ctx, params.RecoverOutboxParams{
		OlderThanMinutes: p.olderThanMinutes,
		Limit:            p.batchSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to recover stalled outbox entries: %w", err)
	}

	p.logger.Info("Outbox recovery sweep completed",
		zap.Int("scanned", result.Scanned),
		zap.Int("finalized", result.Finalized),
		zap.Int("abandoned", result.Abandoned),
		zap.Int("failed", result.Failed))
	return result, nil
}
