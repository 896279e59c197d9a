package usecases

import (
	"context"

	"sitelog/internal/application/intervenant/dto"
	"sitelog/internal/domain/intervenant"
	"sitelog/internal/shared/errors"
	"sitelog/internal/shared/logger"
	"sitelog/internal/shared/utils"
)

type CreateCompanyCommand struct {
	Name string
}

type CreateCompanyUseCase struct {
	companyRepo intervenant.CompanyRepository
	logger      logger.Interface
}

func NewCreateCompanyUseCase(
	companyRepo intervenant.CompanyRepository,
	logger logger.Interface,
) *CreateCompanyUseCase {
	return &CreateCompanyUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *CreateCompanyUseCase) Execute(ctx context.Context, cmd CreateCompanyCommand) (*dto.CompanyDTO, error) {
	newCompany, err := intervenant.NewCompany(cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.companyRepo.Save(ctx, newCompany); err != nil {
		uc.logger.Errorw("failed to save company", "error", err)
		return nil, err
	}

	uc.logger.Infow("company created", "company_id", newCompany.ID())

	return dto.ToCompanyDTO(newCompany), nil
}

type UpdateCompanyCommand struct {
	ID       string
	Name     *string
	IsActive *bool
}

type UpdateCompanyUseCase struct {
	companyRepo intervenant.CompanyRepository
	logger      logger.Interface
}

func NewUpdateCompanyUseCase(
	companyRepo intervenant.CompanyRepository,
	logger logger.Interface,
) *UpdateCompanyUseCase {
	return &UpdateCompanyUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *UpdateCompanyUseCase) Execute(ctx context.Context, cmd UpdateCompanyCommand) (*dto.CompanyDTO, error) {
	if cmd.ID == "" {
		return nil, errors.NewValidationError("company ID is required")
	}

	existing, err := uc.companyRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("company not found")
	}

	if cmd.Name != nil {
		if err := existing.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.IsActive != nil {
		existing.SetActive(*cmd.IsActive)
	}

	if err := uc.companyRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update company", "error", err, "company_id", cmd.ID)
		return nil, err
	}

	return dto.ToCompanyDTO(existing), nil
}

type DeleteCompanyCommand struct {
	ID string
}

type DeleteCompanyUseCase struct {
	companyRepo intervenant.CompanyRepository
	logger      logger.Interface
}

func NewDeleteCompanyUseCase(
	companyRepo intervenant.CompanyRepository,
	logger logger.Interface,
) *DeleteCompanyUseCase {
	return &DeleteCompanyUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// Execute deletes the company. Intervenants attached to it keep their
// profile and lose only the company link.
func (uc *DeleteCompanyUseCase) Execute(ctx context.Context, cmd DeleteCompanyCommand) error {
	if cmd.ID == "" {
		return errors.NewValidationError("company ID is required")
	}

	existing, err := uc.companyRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError("company not found")
	}

	if err := uc.companyRepo.Delete(ctx, cmd.ID); err != nil {
		uc.logger.Errorw("failed to delete company", "error", err, "company_id", cmd.ID)
		return err
	}

	uc.logger.Infow("company deleted", "company_id", cmd.ID)

	return nil
}

type GetCompanyQuery struct {
	ID string
}

type GetCompanyResult struct {
	Company      *dto.CompanyDTO
	Intervenants []*dto.IntervenantDTO
}

type GetCompanyUseCase struct {
	companyRepo intervenant.CompanyRepository
	logger      logger.Interface
}

func NewGetCompanyUseCase(
	companyRepo intervenant.CompanyRepository,
	logger logger.Interface,
) *GetCompanyUseCase {
	return &GetCompanyUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *GetCompanyUseCase) Execute(ctx context.Context, query GetCompanyQuery) (*GetCompanyResult, error) {
	if query.ID == "" {
		return nil, errors.NewValidationError("company ID is required")
	}

	existing, err := uc.companyRepo.FindByID(ctx, query.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("company not found")
	}

	members, err := uc.companyRepo.FindIntervenants(ctx, query.ID)
	if err != nil {
		uc.logger.Errorw("failed to list company intervenants", "error", err, "company_id", query.ID)
		return nil, err
	}

	return &GetCompanyResult{
		Company:      dto.ToCompanyDTO(existing),
		Intervenants: dto.ToIntervenantDTOs(members),
	}, nil
}

type ListCompaniesQuery struct {
	Page  int
	Limit int
}

type ListCompaniesResult struct {
	Companies []*dto.CompanyDTO
	Total     int64
	Page      int
	Limit     int
	Pages     int
}

type ListCompaniesUseCase struct {
	companyRepo intervenant.CompanyRepository
	logger      logger.Interface
}

func NewListCompaniesUseCase(
	companyRepo intervenant.CompanyRepository,
	logger logger.Interface,
) *ListCompaniesUseCase {
	return &ListCompaniesUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *ListCompaniesUseCase) Execute(ctx context.Context, query ListCompaniesQuery) (*ListCompaniesResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.Limit)

	items, total, err := uc.companyRepo.List(ctx, pagination.Page, pagination.Limit)
	if err != nil {
		uc.logger.Errorw("failed to list companies", "error", err)
		return nil, err
	}

	return &ListCompaniesResult{
		Companies: dto.ToCompanyDTOs(items),
		Total:     total,
		Page:      pagination.Page,
		Limit:     pagination.Limit,
		Pages:     utils.TotalPages(total, pagination.Limit),
	}, nil
}
