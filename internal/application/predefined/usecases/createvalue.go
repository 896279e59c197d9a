package usecases

import (
	"context"

	"sitelog/internal/application/predefined/dto"
	"sitelog/internal/domain/predefined"
	"sitelog/internal/shared/errors"
	"sitelog/internal/shared/logger"
)

type CreateValueCommand struct {
	Type        string
	Value       string
	Description string
}

type CreateValueUseCase struct {
	valueRepo predefined.Repository
	logger    logger.Interface
}

func NewCreateValueUseCase(
	valueRepo predefined.Repository,
	logger logger.Interface,
) *CreateValueUseCase {
	return &CreateValueUseCase{
		valueRepo: valueRepo,
		logger:    logger,
	}
}

func (uc *CreateValueUseCase) Execute(ctx context.Context, cmd CreateValueCommand) (*dto.PredefinedValueDTO, error) {
	uc.logger.Infow("executing create predefined value use case", "type", cmd.Type, "value", cmd.Value)

	valueType := predefined.ValueType(cmd.Type)
	if !valueType.IsValid() {
		return nil, errors.NewValidationError("invalid value type")
	}

	existing, err := uc.valueRepo.FindByTypeAndValue(ctx, valueType, cmd.Value)
	if err != nil {
		uc.logger.Errorw("failed to check predefined value uniqueness", "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("this value already exists for this type")
	}

	newValue, err := predefined.NewValue(valueType, cmd.Value, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.valueRepo.Save(ctx, newValue); err != nil {
		uc.logger.Errorw("failed to save predefined value", "error", err)
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("this value already exists for this type")
		}
		return nil, err
	}

	uc.logger.Infow("predefined value created", "value_id", newValue.ID())

	return dto.ToPredefinedValueDTO(newValue), nil
}
