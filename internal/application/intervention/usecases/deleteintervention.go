package usecases

import (
	"context"

	"sitelog/internal/domain/audit"
	"sitelog/internal/domain/intervention"
	"sitelog/internal/shared/errors"
	"sitelog/internal/shared/logger"
)

type DeleteInterventionCommand struct {
	ID    string
	Actor Actor
}

type DeleteInterventionResult struct {
	ID string
}

type DeleteInterventionUseCase struct {
	interventionRepo intervention.Repository
	auditRepo        audit.Repository
	logger           logger.Interface
}

func NewDeleteInterventionUseCase(
	interventionRepo intervention.Repository,
	auditRepo audit.Repository,
	logger logger.Interface,
) *DeleteInterventionUseCase {
	return &DeleteInterventionUseCase{
		interventionRepo: interventionRepo,
		auditRepo:        auditRepo,
		logger:           logger,
	}
}

func (uc *DeleteInterventionUseCase) Execute(ctx context.Context, cmd DeleteInterventionCommand) (*DeleteInterventionResult, error) {
	uc.logger.Infow("executing delete intervention use case", "intervention_id", cmd.ID, "actor_id", cmd.Actor.UserID)

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

	// The audit entry is written before the row disappears so the final
	// state survives the deletion.
	if err := recordAudit(ctx, uc.auditRepo, uc.logger,
		audit.ActionDelete, existing.ID(),
		existing.Snapshot(), nil,
		"Intervention supprimée", cmd.Actor,
	); err != nil {
		return nil, err
	}

	if err := uc.interventionRepo.Delete(ctx, cmd.ID); err != nil {
		uc.logger.Errorw("failed to delete intervention", "error", err, "intervention_id", cmd.ID)
		return nil, err
	}

	uc.logger.Infow("intervention deleted successfully", "intervention_id", cmd.ID)

	return &DeleteInterventionResult{ID: cmd.ID}, nil
}
