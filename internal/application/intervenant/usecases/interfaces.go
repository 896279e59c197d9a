package usecases

import (
	"context"

	"sitelog/internal/application/intervenant/dto"
)

type CreateIntervenantExecutor interface {
	Execute(ctx context.Context, cmd CreateIntervenantCommand) (*dto.IntervenantDTO, error)
}

type UpdateIntervenantExecutor interface {
	Execute(ctx context.Context, cmd UpdateIntervenantCommand) (*dto.IntervenantDTO, error)
}

type DeleteIntervenantExecutor interface {
	Execute(ctx context.Context, cmd DeleteIntervenantCommand) error
}

type GetIntervenantExecutor interface {
	Execute(ctx context.Context, query GetIntervenantQuery) (*dto.IntervenantDTO, error)
}

type ListIntervenantsExecutor interface {
	Execute(ctx context.Context, query ListIntervenantsQuery) (*ListIntervenantsResult, error)
}

type CreateCompanyExecutor interface {
	Execute(ctx context.Context, cmd CreateCompanyCommand) (*dto.CompanyDTO, error)
}

type UpdateCompanyExecutor interface {
	Execute(ctx context.Context, cmd UpdateCompanyCommand) (*dto.CompanyDTO, error)
}

type DeleteCompanyExecutor interface {
	Execute(ctx context.Context, cmd DeleteCompanyCommand) error
}

type GetCompanyExecutor interface {
	Execute(ctx context.Context, query GetCompanyQuery) (*GetCompanyResult, error)
}

type ListCompaniesExecutor interface {
	Execute(ctx context.Context, query ListCompaniesQuery) (*ListCompaniesResult, error)
}
