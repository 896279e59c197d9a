package usecases

import (
	"context"

	"sitelog/internal/domain/intervention"
	"sitelog/internal/shared/logger"
)

type GetInterventionStatsUseCase struct {
	interventionRepo intervention.Repository
	logger           logger.Interface
}

func NewGetInterventionStatsUseCase(
	interventionRepo intervention.Repository,
	logger logger.Interface,
) *GetInterventionStatsUseCase {
	return &GetInterventionStatsUseCase{
		interventionRepo: interventionRepo,
		logger:           logger,
	}
}

func (uc *GetInterventionStatsUseCase) Execute(ctx context.Context) (*intervention.Stats, error) {
	stats, err := uc.interventionRepo.GetStats(ctx)
	if err != nil {
		uc.logger.Errorw("failed to get intervention stats", "error", err)
		return nil, err
	}
	return stats, nil
}
