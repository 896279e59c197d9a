package usecases

import (
	"context"

	"sitelog/internal/application/predefined/dto"
	"sitelog/internal/domain/predefined"
	"sitelog/internal/shared/errors"
	"sitelog/internal/shared/logger"
)

type ListValuesByTypeQuery struct {
	Type string
}

type ListValuesByTypeUseCase struct {
	valueRepo predefined.Repository
	logger    logger.Interface
}

func NewListValuesByTypeUseCase(
	valueRepo predefined.Repository,
	logger logger.Interface,
) *ListValuesByTypeUseCase {
	return &ListValuesByTypeUseCase{
		valueRepo: valueRepo,
		logger:    logger,
	}
}

func (uc *ListValuesByTypeUseCase) Execute(ctx context.Context, query ListValuesByTypeQuery) ([]*dto.PredefinedValueDTO, error) {
	valueType := predefined.ValueType(query.Type)
	if !valueType.IsValid() {
		return nil, errors.NewValidationError("invalid value type")
	}

	values, err := uc.valueRepo.ListByType(ctx, valueType)
	if err != nil {
		uc.logger.Errorw("failed to list predefined values", "error", err, "type", query.Type)
		return nil, err
	}

	return dto.ToPredefinedValueDTOs(values), nil
}

type ListAllValuesUseCase struct {
	valueRepo predefined.Repository
	logger    logger.Interface
}

func NewListAllValuesUseCase(
	valueRepo predefined.Repository,
	logger logger.Interface,
) *ListAllValuesUseCase {
	return &ListAllValuesUseCase{
		valueRepo: valueRepo,
		logger:    logger,
	}
}

// Execute returns active values grouped by type. Every known type is
// present in the result, empty types included.
func (uc *ListAllValuesUseCase) Execute(ctx context.Context) (map[string][]*dto.PredefinedValueDTO, error) {
	values, err := uc.valueRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list all predefined values", "error", err)
		return nil, err
	}

	grouped := make(map[string][]*dto.PredefinedValueDTO, len(predefined.AllValueTypes))
	for _, t := range predefined.AllValueTypes {
		grouped[t.String()] = []*dto.PredefinedValueDTO{}
	}
	for _, v := range values {
		key := v.Type().String()
		grouped[key] = append(grouped[key], dto.ToPredefinedValueDTO(v))
	}

	return grouped, nil
}
