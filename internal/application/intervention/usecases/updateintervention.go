package usecases

import (
	"context"

	"sitelog/internal/application/intervention/dto"
	"sitelog/internal/domain/audit"
	"sitelog/internal/domain/intervention"
	"sitelog/internal/shared/errors"
	"sitelog/internal/shared/logger"
)

type UpdateInterventionCommand struct {
	ID     string
	Update intervention.UpdateParams
	Actor  Actor
}

type UpdateInterventionUseCase struct {
	interventionRepo intervention.Repository
	auditRepo        audit.Repository
	logger           logger.Interface
}

func NewUpdateInterventionUseCase(
	interventionRepo intervention.Repository,
	auditRepo audit.Repository,
	logger logger.Interface,
) *UpdateInterventionUseCase {
	return &UpdateInterventionUseCase{
		interventionRepo: interventionRepo,
		auditRepo:        auditRepo,
		logger:           logger,
	}
}

func (uc *UpdateInterventionUseCase) Execute(ctx context.Context, cmd UpdateInterventionCommand) (*dto.InterventionDTO, error) {
	uc.logger.Infow("executing update intervention use case", "intervention_id", cmd.ID, "actor_id", cmd.Actor.UserID)

	if cmd.ID == "" {
		return nil, errors.NewValidationError("intervention ID is required")
	}

	existing, err := uc.interventionRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to find intervention", "error", err, "intervention_id", cmd.ID)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("intervention not found")
	}

	before := existing.Snapshot()

	if err := existing.Apply(cmd.Update, cmd.Actor.UserID); err != nil {
		uc.logger.Errorw("invalid intervention update", "error", err, "intervention_id", cmd.ID)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.interventionRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update intervention", "error", err, "intervention_id", cmd.ID)
		return nil, err
	}

	if err := recordAudit(ctx, uc.auditRepo, uc.logger,
		audit.ActionUpdate, existing.ID(),
		before, existing.Snapshot(),
		"Intervention modifiée", cmd.Actor,
	); err != nil {
		return nil, err
	}

	uc.logger.Infow("intervention updated successfully", "intervention_id", existing.ID())

	return dto.ToInterventionDTO(existing), nil
}
