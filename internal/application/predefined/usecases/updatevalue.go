package usecases

import (
	"context"

	"sitelog/internal/application/predefined/dto"
	"sitelog/internal/domain/predefined"
	"sitelog/internal/shared/errors"
	"sitelog/internal/shared/logger"
)

type UpdateValueCommand struct {
	ID     string
	Fields predefined.UpdateFields
}

type UpdateValueUseCase struct {
	valueRepo predefined.Repository
	logger    logger.Interface
}

func NewUpdateValueUseCase(
	valueRepo predefined.Repository,
	logger logger.Interface,
) *UpdateValueUseCase {
	return &UpdateValueUseCase{
		valueRepo: valueRepo,
		logger:    logger,
	}
}

func (uc *UpdateValueUseCase) Execute(ctx context.Context, cmd UpdateValueCommand) (*dto.PredefinedValueDTO, error) {
	if cmd.ID == "" {
		return nil, errors.NewValidationError("value ID is required")
	}

	existing, err := uc.valueRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to find predefined value", "error", err, "value_id", cmd.ID)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("predefined value not found")
	}

	if cmd.Fields.Value != nil && *cmd.Fields.Value != existing.Value() {
		duplicate, err := uc.valueRepo.FindByTypeAndValue(ctx, existing.Type(), *cmd.Fields.Value)
		if err != nil {
			return nil, err
		}
		if duplicate != nil {
			return nil, errors.NewConflictError("this value already exists for this type")
		}
	}

	if err := existing.Apply(cmd.Fields); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.valueRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update predefined value", "error", err, "value_id", cmd.ID)
		return nil, err
	}

	return dto.ToPredefinedValueDTO(existing), nil
}
