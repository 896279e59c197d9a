package usecases

import (
	"context"

	"sitelog/internal/application/intervention/dto"
	"sitelog/internal/domain/intervention"
	"sitelog/internal/shared/errors"
	"sitelog/internal/shared/logger"
)

type GetInterventionQuery struct {
	ID string
}

type GetInterventionUseCase struct {
	interventionRepo intervention.Repository
	logger           logger.Interface
}

func NewGetInterventionUseCase(
	interventionRepo intervention.Repository,
	logger logger.Interface,
) *GetInterventionUseCase {
	return &GetInterventionUseCase{
		interventionRepo: interventionRepo,
		logger:           logger,
	}
}

func (uc *GetInterventionUseCase) Execute(ctx context.Context, query GetInterventionQuery) (*dto.InterventionDTO, error) {
	if query.ID == "" {
		return nil, errors.NewValidationError("intervention ID is required")
	}

	existing, err := uc.interventionRepo.FindByID(ctx, query.ID)
	if err != nil {
		uc.logger.Errorw("failed to find intervention", "error", err, "intervention_id", query.ID)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("intervention not found")
	}

	return dto.ToInterventionDTO(existing), nil
}
