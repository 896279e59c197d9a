package usecases

import (
	"context"

	"sitelog/internal/application/intervention/dto"
	"sitelog/internal/domain/audit"
	"sitelog/internal/domain/intervention"
	"sitelog/internal/shared/errors"
	"sitelog/internal/shared/logger"
)

type ArchiveInterventionCommand struct {
	ID    string
	Actor Actor
}

type ArchiveInterventionUseCase struct {
	interventionRepo intervention.Repository
	auditRepo        audit.Repository
	logger           logger.Interface
}

func NewArchiveInterventionUseCase(
	interventionRepo intervention.Repository,
	auditRepo audit.Repository,
	logger logger.Interface,
) *ArchiveInterventionUseCase {
	return &ArchiveInterventionUseCase{
		interventionRepo: interventionRepo,
		auditRepo:        auditRepo,
		logger:           logger,
	}
}

func (uc *ArchiveInterventionUseCase) Execute(ctx context.Context, cmd ArchiveInterventionCommand) (*dto.InterventionDTO, error) {
	uc.logger.Infow("executing archive intervention use case", "intervention_id", cmd.ID, "actor_id", cmd.Actor.UserID)

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

	// Archiving an already archived intervention is not an error. The
	// call still gets its own audit entry.
	existing.Archive(cmd.Actor.UserID)

	if err := uc.interventionRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to archive intervention", "error", err, "intervention_id", cmd.ID)
		return nil, err
	}

	// Archive entries carry no value snapshots, only the action itself.
	if err := recordAudit(ctx, uc.auditRepo, uc.logger,
		audit.ActionArchive, existing.ID(),
		nil, nil,
		"Intervention archivée", cmd.Actor,
	); err != nil {
		return nil, err
	}

	uc.logger.Infow("intervention archived successfully", "intervention_id", existing.ID())

	return dto.ToInterventionDTO(existing), nil
}
