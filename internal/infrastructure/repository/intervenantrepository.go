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

type IntervenantRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.IntervenantMapper
}

func NewIntervenantRepository(db *gorm.DB) intervenant.Repository {
	return &IntervenantRepositoryImpl{
		db:     db,
		mapper: mappers.NewIntervenantMapper(),
	}
}

func (r *IntervenantRepositoryImpl) Save(ctx context.Context, i *intervenant.Intervenant) error {
	model := r.mapper.ToModel(i)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create intervenant: %w", err)
	}

	return nil
}

func (r *IntervenantRepositoryImpl) Update(ctx context.Context, i *intervenant.Intervenant) error {
	model := r.mapper.ToModel(i)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update intervenant: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("intervenant not found")
	}

	return nil
}

func (r *IntervenantRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.IntervenantModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete intervenant: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("intervenant not found")
	}

	return nil
}

func (r *IntervenantRepositoryImpl) FindByID(ctx context.Context, id string) (*intervenant.Intervenant, error) {
	var model models.IntervenantModel

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find intervenant by id: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *IntervenantRepositoryImpl) ListActive(ctx context.Context, page, limit int) ([]*intervenant.Intervenant, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.IntervenantModel{}).
		Where("is_active = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count intervenants: %w", err)
	}

	query = query.Order("surname ASC, name ASC")
	if limit > 0 {
		offset := (page - 1) * limit
		if offset < 0 {
			offset = 0
		}
		query = query.Offset(offset).Limit(limit)
	}

	var intervenantModels []*models.IntervenantModel
	if err := query.Find(&intervenantModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list intervenants: %w", err)
	}

	result := make([]*intervenant.Intervenant, 0, len(intervenantModels))
	for _, model := range intervenantModels {
		result = append(result, r.mapper.ToDomain(model))
	}

	return result, total, nil
}
