package usecases

import (
	"context"

	"sitelog/internal/application/intervenant/dto"
	"sitelog/internal/domain/intervenant"
	"sitelog/internal/shared/errors"
	"sitelog/internal/shared/logger"
	"sitelog/internal/shared/utils"
)

type CreateIntervenantCommand struct {
	Name      string
	Surname   string
	Phone     string
	Email     string
	Country   string
	Type      string
	CompanyID string
}

type CreateIntervenantUseCase struct {
	intervenantRepo intervenant.Repository
	companyRepo     intervenant.CompanyRepository
	logger          logger.Interface
}

func NewCreateIntervenantUseCase(
	intervenantRepo intervenant.Repository,
	companyRepo intervenant.CompanyRepository,
	logger logger.Interface,
) *CreateIntervenantUseCase {
	return &CreateIntervenantUseCase{
		intervenantRepo: intervenantRepo,
		companyRepo:     companyRepo,
		logger:          logger,
	}
}

func (uc *CreateIntervenantUseCase) Execute(ctx context.Context, cmd CreateIntervenantCommand) (*dto.IntervenantDTO, error) {
	uc.logger.Infow("executing create intervenant use case", "surname", cmd.Surname)

	if cmd.CompanyID != "" {
		company, err := uc.companyRepo.FindByID(ctx, cmd.CompanyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, errors.NewValidationError("company not found")
		}
	}

	newIntervenant, err := intervenant.NewIntervenant(
		cmd.Name, cmd.Surname, cmd.Phone,
		cmd.Email, cmd.Country, cmd.Type, cmd.CompanyID,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.intervenantRepo.Save(ctx, newIntervenant); err != nil {
		uc.logger.Errorw("failed to save intervenant", "error", err)
		return nil, err
	}

	return dto.ToIntervenantDTO(newIntervenant), nil
}

type UpdateIntervenantCommand struct {
	ID     string
	Fields intervenant.UpdateFields
}

type UpdateIntervenantUseCase struct {
	intervenantRepo intervenant.Repository
	logger          logger.Interface
}

func NewUpdateIntervenantUseCase(
	intervenantRepo intervenant.Repository,
	logger logger.Interface,
) *UpdateIntervenantUseCase {
	return &UpdateIntervenantUseCase{
		intervenantRepo: intervenantRepo,
		logger:          logger,
	}
}

func (uc *UpdateIntervenantUseCase) Execute(ctx context.Context, cmd UpdateIntervenantCommand) (*dto.IntervenantDTO, error) {
	if cmd.ID == "" {
		return nil, errors.NewValidationError("intervenant ID is required")
	}

	existing, err := uc.intervenantRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("intervenant not found")
	}

	if err := existing.Apply(cmd.Fields); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.intervenantRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update intervenant", "error", err, "intervenant_id", cmd.ID)
		return nil, err
	}

	return dto.ToIntervenantDTO(existing), nil
}

type DeleteIntervenantCommand struct {
	ID string
}

type DeleteIntervenantUseCase struct {
	intervenantRepo intervenant.Repository
	logger          logger.Interface
}

func NewDeleteIntervenantUseCase(
	intervenantRepo intervenant.Repository,
	logger logger.Interface,
) *DeleteIntervenantUseCase {
	return &DeleteIntervenantUseCase{
		intervenantRepo: intervenantRepo,
		logger:          logger,
	}
}

func (uc *DeleteIntervenantUseCase) Execute(ctx context.Context, cmd DeleteIntervenantCommand) error {
	if cmd.ID == "" {
		return errors.NewValidationError("intervenant ID is required")
	}

	existing, err := uc.intervenantRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError("intervenant not found")
	}

	if err := uc.intervenantRepo.Delete(ctx, cmd.ID); err != nil {
		uc.logger.Errorw("failed to delete intervenant", "error", err, "intervenant_id", cmd.ID)
		return err
	}

	return nil
}

type GetIntervenantQuery struct {
	ID string
}

type GetIntervenantUseCase struct {
	intervenantRepo intervenant.Repository
	logger          logger.Interface
}

func NewGetIntervenantUseCase(
	intervenantRepo intervenant.Repository,
	logger logger.Interface,
) *GetIntervenantUseCase {
	return &GetIntervenantUseCase{
		intervenantRepo: intervenantRepo,
		logger:          logger,
	}
}

func (uc *GetIntervenantUseCase) Execute(ctx context.Context, query GetIntervenantQuery) (*dto.IntervenantDTO, error) {
	if query.ID == "" {
		return nil, errors.NewValidationError("intervenant ID is required")
	}

	existing, err := uc.intervenantRepo.FindByID(ctx, query.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("intervenant not found")
	}

	return dto.ToIntervenantDTO(existing), nil
}

type ListIntervenantsQuery struct {
	Page  int
	Limit int
}

type ListIntervenantsResult struct {
	Intervenants []*dto.IntervenantDTO
	Total        int64
	Page         int
	Limit        int
	Pages        int
}

type ListIntervenantsUseCase struct {
	intervenantRepo intervenant.Repository
	logger          logger.Interface
}

func NewListIntervenantsUseCase(
	intervenantRepo intervenant.Repository,
	logger logger.Interface,
) *ListIntervenantsUseCase {
	return &ListIntervenantsUseCase{
		intervenantRepo: intervenantRepo,
		logger:          logger,
	}
}

func (uc *ListIntervenantsUseCase) Execute(ctx context.Context, query ListIntervenantsQuery) (*ListIntervenantsResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.Limit)

	items, total, err := uc.intervenantRepo.ListActive(ctx, pagination.Page, pagination.Limit)
	if err != nil {
		uc.logger.Errorw("failed to list intervenants", "error", err)
		return nil, err
	}

	return &ListIntervenantsResult{
		Intervenants: dto.ToIntervenantDTOs(items),
		Total:        total,
		Page:         pagination.Page,
		Limit:        pagination.Limit,
		Pages:        utils.TotalPages(total, pagination.Limit),
	}, nil
}
