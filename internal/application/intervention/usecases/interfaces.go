package usecases

import (
	"context"

	"sitelog/internal/application/intervention/dto"
	"sitelog/internal/domain/intervention"
)

type CreateInterventionExecutor interface {
	Execute(ctx context.Context, cmd CreateInterventionCommand) (*dto.InterventionDTO, error)
}

type UpdateInterventionExecutor interface {
	Execute(ctx context.Context, cmd UpdateInterventionCommand) (*dto.InterventionDTO, error)
}

type DeleteInterventionExecutor interface {
	Execute(ctx context.Context, cmd DeleteInterventionCommand) (*DeleteInterventionResult, error)
}

type ArchiveInterventionExecutor interface {
	Execute(ctx context.Context, cmd ArchiveInterventionCommand) (*dto.InterventionDTO, error)
}

type RestoreInterventionExecutor interface {
	Execute(ctx context.Context, cmd RestoreInterventionCommand) (*dto.InterventionDTO, error)
}

type GetInterventionExecutor interface {
	Execute(ctx context.Context, query GetInterventionQuery) (*dto.InterventionDTO, error)
}

type ListInterventionsExecutor interface {
	Execute(ctx context.Context, query ListInterventionsQuery) (*ListInterventionsResult, error)
}

type GetInterventionStatsExecutor interface {
	Execute(ctx context.Context) (*intervention.Stats, error)
}

type ExportInterventionsExecutor interface {
	Execute(ctx context.Context, query ExportInterventionsQuery) ([]byte, error)
}
