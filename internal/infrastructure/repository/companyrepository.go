package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sitelog/internal/domain/intervenant"
	"sitelog/internal/infrastructure/persistence/mappers"
	"sitelog/internal/infrastructure/persistence/models"
	"sitelog/internal/shared/errors"
)

type CompanyRepositoryImpl struct {
	db                *gorm.DB
	mapper            mappers.CompanyMapper
	intervenantMapper mappers.IntervenantMapper
}

func NewCompanyRepository(db *gorm.DB) intervenant.CompanyRepository {
	return &CompanyRepositoryImpl{
		db:                db,
		mapper:            mappers.NewCompanyMapper(),
		intervenantMapper: mappers.NewIntervenantMapper(),
	}
}

func (r *CompanyRepositoryImpl) Save(ctx context.Context, c *intervenant.Company) error {
	model := r.mapper.ToModel(c)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}

	return nil
}

func (r *CompanyRepositoryImpl) Update(ctx context.Context, c *intervenant.Company) error {
	model := r.mapper.ToModel(c)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update company: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("company not found")
	}

	return nil
}

// Delete removes the company and detaches its intervenants in one
// transaction. The intervenant profiles themselves are kept.
func (r *CompanyRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.IntervenantModel{}).
			Where("company_id = ?", id).
			Update("company_id", "").Error; err != nil {
			return fmt.Errorf("failed to detach intervenants from company: %w", err)
		}

		result := tx.Where("id = ?", id).Delete(&models.CompanyModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete company: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("company not found")
		}

		return nil
	})
}

func (r *CompanyRepositoryImpl) FindByID(ctx context.Context, id string) (*intervenant.Company, error) {
	var model models.CompanyModel

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find company by id: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *CompanyRepositoryImpl) List(ctx context.Context, page, limit int) ([]*intervenant.Company, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.CompanyModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count companies: %w", err)
	}

	query = query.Order("name ASC")
	if limit > 0 {
		offset := (page - 1) * limit
		if offset < 0 {
			offset = 0
		}
		query = query.Offset(offset).Limit(limit)
	}

	var companyModels []*models.CompanyModel
	if err := query.Find(&companyModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list companies: %w", err)
	}

	result := make([]*intervenant.Company, 0, len(companyModels))
	for _, model := range companyModels {
		result = append(result, r.mapper.ToDomain(model))
	}

	return result, total, nil
}

func (r *CompanyRepositoryImpl) FindIntervenants(ctx context.Context, companyID string) ([]*intervenant.Intervenant, error) {
	var intervenantModels []*models.IntervenantModel

	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("surname ASC, name ASC").
		Find(&intervenantModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find company intervenants: %w", err)
	}

	result := make([]*intervenant.Intervenant, 0, len(intervenantModels))
	for _, model := range intervenantModels {
		result = append(result, r.intervenantMapper.ToDomain(model))
	}

	return result, nil
}
