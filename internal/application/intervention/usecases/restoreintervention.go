package usecases

import (
	"context"

	"sitelog/internal/application/intervention/dto"
	"sitelog/internal/domain/audit"
	"sitelog/internal/domain/intervention"
	"sitelog/internal/shared/errors"
	"sitelog/internal/shared/logger"
)

type RestoreInterventionCommand struct {
	ID    string
	Actor Actor
}

type RestoreInterventionUseCase struct {
	interventionRepo intervention.Repository
	auditRepo        audit.Repository
	logger           logger.Interface
}

func NewRestoreInterventionUseCase(
	interventionRepo intervention.Repository,
	auditRepo audit.Repository,
	logger logger.Interface,
) *RestoreInterventionUseCase {
	return &RestoreInterventionUseCase{
		interventionRepo: interventionRepo,
		auditRepo:        auditRepo,
		logger:           logger,
	}
}

func (uc *RestoreInterventionUseCase) Execute(ctx context.Context, cmd RestoreInterventionCommand) (*dto.InterventionDTO, error) {
	uc.logger.Infow("executing restore intervention use case", "intervention_id", cmd.ID, "actor_id", cmd.Actor.UserID)

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

	// Restoring an intervention that is not archived is not an error.
	// The call still gets its own audit entry.
	existing.Restore(cmd.Actor.UserID)

	if err := uc.interventionRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to restore intervention", "error", err, "intervention_id", cmd.ID)
		return nil, err
	}

	// Restore entries carry no value snapshots, only the action itself.
	if err := recordAudit(ctx, uc.auditRepo, uc.logger,
		audit.ActionRestore, existing.ID(),
		nil, nil,
		"Intervention restaurée", cmd.Actor,
	); err != nil {
		return nil, err
	}

	uc.logger.Infow("intervention restored successfully", "intervention_id", existing.ID())

	return dto.ToInterventionDTO(existing), nil
}
