package usecases

import (
	"context"

	"sitelog/internal/domain/predefined"
	"sitelog/internal/shared/errors"
	"sitelog/internal/shared/logger"
)

type DeleteValueCommand struct {
	ID string
}

type DeleteValueUseCase struct {
	valueRepo predefined.Repository
	logger    logger.Interface
}

func NewDeleteValueUseCase(
	valueRepo predefined.Repository,
	logger logger.Interface,
) *DeleteValueUseCase {
	return &DeleteValueUseCase{
		valueRepo: valueRepo,
		logger:    logger,
	}
}

func (uc *DeleteValueUseCase) Execute(ctx context.Context, cmd DeleteValueCommand) error {
	if cmd.ID == "" {
		return errors.NewValidationError("value ID is required")
	}

	existing, err := uc.valueRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to find predefined value", "error", err, "value_id", cmd.ID)
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError("predefined value not found")
	}

	if err := uc.valueRepo.Delete(ctx, cmd.ID); err != nil {
		uc.logger.Errorw("failed to delete predefined value", "error", err, "value_id", cmd.ID)
		return err
	}

	uc.logger.Infow("predefined value deleted", "value_id", cmd.ID)

	return nil
}

type DeactivateValueUseCase struct {
	valueRepo predefined.Repository
	logger    logger.Interface
}

func NewDeactivateValueUseCase(
	valueRepo predefined.Repository,
	logger logger.Interface,
) *DeactivateValueUseCase {
	return &DeactivateValueUseCase{
		valueRepo: valueRepo,
		logger:    logger,
	}
}

// Execute marks a value inactive instead of removing it, keeping old
// interventions that reference the literal string intact.
func (uc *DeactivateValueUseCase) Execute(ctx context.Context, cmd DeleteValueCommand) error {
	if cmd.ID == "" {
		return errors.NewValidationError("value ID is required")
	}

	existing, err := uc.valueRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError("predefined value not found")
	}

	existing.Deactivate()

	if err := uc.valueRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to deactivate predefined value", "error", err, "value_id", cmd.ID)
		return err
	}

	return nil
}
