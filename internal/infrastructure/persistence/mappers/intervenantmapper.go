package mappers

import (
	"time"

	"sitelog/internal/domain/intervenant"
	"sitelog/internal/infrastructure/persistence/models"
)

type IntervenantMapper interface {
	ToModel(i *intervenant.Intervenant) *models.IntervenantModel
	ToDomain(model *models.IntervenantModel) *intervenant.Intervenant
}

type IntervenantMapperImpl struct{}

func NewIntervenantMapper() IntervenantMapper {
	return &IntervenantMapperImpl{}
}

func (m *IntervenantMapperImpl) ToModel(i *intervenant.Intervenant) *models.IntervenantModel {
	return &models.IntervenantModel{
		ID:        i.ID(),
		Name:      i.Name(),
		Surname:   i.Surname(),
		Phone:     i.Phone(),
		Email:     i.Email(),
		Country:   i.Country(),
		Type:      i.Type(),
		CompanyID: i.CompanyID(),
		IsActive:  i.IsActive(),
		CreatedAt: i.CreatedAt().UnixMilli(),
		UpdatedAt: i.UpdatedAt().UnixMilli(),
	}
}

func (m *IntervenantMapperImpl) ToDomain(model *models.IntervenantModel) *intervenant.Intervenant {
	return intervenant.ReconstructIntervenant(
		model.ID,
		model.Name,
		model.Surname,
		model.Phone,
		model.Email,
		model.Country,
		model.Type,
		model.CompanyID,
		model.IsActive,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}

type CompanyMapper interface {
	ToModel(c *intervenant.Company) *models.CompanyModel
	ToDomain(model *models.CompanyModel) *intervenant.Company
}

type CompanyMapperImpl struct{}

func NewCompanyMapper() CompanyMapper {
	return &CompanyMapperImpl{}
}

func (m *CompanyMapperImpl) ToModel(c *intervenant.Company) *models.CompanyModel {
	return &models.CompanyModel{
		ID:        c.ID(),
		Name:      c.Name(),
		IsActive:  c.IsActive(),
		CreatedAt: c.CreatedAt().UnixMilli(),
		UpdatedAt: c.UpdatedAt().UnixMilli(),
	}
}

func (m *CompanyMapperImpl) ToDomain(model *models.CompanyModel) *intervenant.Company {
	return intervenant.ReconstructCompany(
		model.ID,
		model.Name,
		model.IsActive,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}
