package usecases

import (
	"context"

	"sitelog/internal/application/intervention/dto"
	"sitelog/internal/domain/intervention"
	"sitelog/internal/shared/logger"
	"sitelog/internal/shared/utils"
)

type ListInterventionsQuery struct {
	Filter intervention.Filter
}

type ListInterventionsResult struct {
	Interventions []*dto.InterventionDTO
	Total         int64
	Page          int
	Limit         int
	Pages         int
}

type ListInterventionsUseCase struct {
	interventionRepo intervention.Repository
	logger           logger.Interface
}

func NewListInterventionsUseCase(
	interventionRepo intervention.Repository,
	logger logger.Interface,
) *ListInterventionsUseCase {
	return &ListInterventionsUseCase{
		interventionRepo: interventionRepo,
		logger:           logger,
	}
}

func (uc *ListInterventionsUseCase) Execute(ctx context.Context, query ListInterventionsQuery) (*ListInterventionsResult, error) {
	filter := query.Filter

	pagination := utils.ValidatePagination(filter.Page, filter.Limit)
	filter.Page = pagination.Page
	filter.Limit = pagination.Limit

	items, total, err := uc.interventionRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list interventions", "error", err)
		return nil, err
	}

	return &ListInterventionsResult{
		Interventions: dto.ToInterventionDTOs(items),
		Total:         total,
		Page:          filter.Page,
		Limit:         filter.Limit,
		Pages:         utils.TotalPages(total, filter.Limit),
	}, nil
}
