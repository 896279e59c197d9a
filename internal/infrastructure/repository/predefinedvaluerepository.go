package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sitelog/internal/domain/predefined"
	"sitelog/internal/infrastructure/persistence/mappers"
	"sitelog/internal/infrastructure/persistence/models"
	"sitelog/internal/shared/db"
	"sitelog/internal/shared/errors"
)

type PredefinedValueRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PredefinedValueMapper
}

func NewPredefinedValueRepository(gdb *gorm.DB) predefined.Repository {
	return &PredefinedValueRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewPredefinedValueMapper(),
	}
}

func (r *PredefinedValueRepositoryImpl) Save(ctx context.Context, v *predefined.Value) error {
	model := r.mapper.ToModel(v)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create predefined value: %w", err)
	}

	return nil
}

func (r *PredefinedValueRepositoryImpl) Update(ctx context.Context, v *predefined.Value) error {
	model := r.mapper.ToModel(v)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update predefined value: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("predefined value not found")
	}

	return nil
}

func (r *PredefinedValueRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.PredefinedValueModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete predefined value: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("predefined value not found")
	}

	return nil
}

func (r *PredefinedValueRepositoryImpl) FindByID(ctx context.Context, id string) (*predefined.Value, error) {
	var model models.PredefinedValueModel

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find predefined value by id: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *PredefinedValueRepositoryImpl) FindByTypeAndValue(ctx context.Context, valueType predefined.ValueType, value string) (*predefined.Value, error) {
	var model models.PredefinedValueModel

	if err := r.db.WithContext(ctx).
		Where("type = ? AND value = ?", valueType.String(), value).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find predefined value by type and value: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *PredefinedValueRepositoryImpl) ListByType(ctx context.Context, valueType predefined.ValueType) ([]*predefined.Value, error) {
	var valueModels []*models.PredefinedValueModel

	if err := r.db.WithContext(ctx).
		Where("type = ? AND is_active = ?", valueType.String(), true).
		Order("sort_order ASC, value ASC").
		Find(&valueModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list predefined values by type: %w", err)
	}

	return r.toDomainList(valueModels), nil
}

func (r *PredefinedValueRepositoryImpl) ListAll(ctx context.Context) ([]*predefined.Value, error) {
	var valueModels []*models.PredefinedValueModel

	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("type ASC, sort_order ASC, value ASC").
		Find(&valueModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list predefined values: %w", err)
	}

	return r.toDomainList(valueModels), nil
}

// UpdateSortOrder participates in an ambient transaction when one is
// present on the context, so a reorder either applies fully or not at
// all.
func (r *PredefinedValueRepositoryImpl) UpdateSortOrder(ctx context.Context, valueType predefined.ValueType, id string, sortOrder int) error {
	conn := db.GetTxFromContext(ctx, r.db)

	result := conn.Model(&models.PredefinedValueModel{}).
		Where("id = ? AND type = ?", id, valueType.String()).
		Update("sort_order", sortOrder)
	if result.Error != nil {
		return fmt.Errorf("failed to update sort order: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("predefined value not found for this type")
	}

	return nil
}

func (r *PredefinedValueRepositoryImpl) toDomainList(valueModels []*models.PredefinedValueModel) []*predefined.Value {
	result := make([]*predefined.Value, 0, len(valueModels))
	for _, model := range valueModels {
		result = append(result, r.mapper.ToDomain(model))
	}
	return result
}
