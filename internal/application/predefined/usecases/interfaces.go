package usecases

import (
	"context"

	"sitelog/internal/application/predefined/dto"
)

type CreateValueExecutor interface {
	Execute(ctx context.Context, cmd CreateValueCommand) (*dto.PredefinedValueDTO, error)
}

type UpdateValueExecutor interface {
	Execute(ctx context.Context, cmd UpdateValueCommand) (*dto.PredefinedValueDTO, error)
}

type DeleteValueExecutor interface {
	Execute(ctx context.Context, cmd DeleteValueCommand) error
}

type DeactivateValueExecutor interface {
	Execute(ctx context.Context, cmd DeleteValueCommand) error
}

type ListValuesByTypeExecutor interface {
	Execute(ctx context.Context, query ListValuesByTypeQuery) ([]*dto.PredefinedValueDTO, error)
}

type ListAllValuesExecutor interface {
	Execute(ctx context.Context) (map[string][]*dto.PredefinedValueDTO, error)
}

type ReorderValuesExecutor interface {
	Execute(ctx context.Context, cmd ReorderValuesCommand) error
}
