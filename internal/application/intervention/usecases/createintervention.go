package usecases

import (
	"context"

	"sitelog/internal/application/intervention/dto"
	"sitelog/internal/domain/audit"
	"sitelog/internal/domain/intervention"
	"sitelog/internal/shared/errors"
	"sitelog/internal/shared/logger"
)

type CreateInterventionCommand struct {
	Params intervention.Params
	Actor  Actor
}

type CreateInterventionUseCase struct {
	interventionRepo intervention.Repository
	auditRepo        audit.Repository
	logger           logger.Interface
}

func NewCreateInterventionUseCase(
	interventionRepo intervention.Repository,
	auditRepo audit.Repository,
	logger logger.Interface,
) *CreateInterventionUseCase {
	return &CreateInterventionUseCase{
		interventionRepo: interventionRepo,
		auditRepo:        auditRepo,
		logger:           logger,
	}
}

func (uc *CreateInterventionUseCase) Execute(ctx context.Context, cmd CreateInterventionCommand) (*dto.InterventionDTO, error) {
	uc.logger.Infow("executing create intervention use case", "titre", cmd.Params.Titre, "actor_id", cmd.Actor.UserID)

	if cmd.Actor.UserID == "" {
		return nil, errors.NewValidationError("actor ID is required")
	}

	newIntervention, err := intervention.NewIntervention(cmd.Params, cmd.Actor.UserID)
	if err != nil {
		uc.logger.Errorw("failed to create intervention entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.interventionRepo.Save(ctx, newIntervention); err != nil {
		uc.logger.Errorw("failed to save intervention", "error", err)
		return nil, err
	}

	if err := recordAudit(ctx, uc.auditRepo, uc.logger,
		audit.ActionCreate, newIntervention.ID(),
		nil, newIntervention.Snapshot(),
		"Intervention créée", cmd.Actor,
	); err != nil {
		return nil, err
	}

	uc.logger.Infow("intervention created successfully", "intervention_id", newIntervention.ID())

	return dto.ToInterventionDTO(newIntervention), nil
}
