package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sitelog/internal/domain/audit"
	"sitelog/internal/infrastructure/persistence/mappers"
	"sitelog/internal/infrastructure/persistence/models"
)

type AuditRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AuditLogMapper
}

func NewAuditRepository(db *gorm.DB) audit.Repository {
	return &AuditRepositoryImpl{
		db:     db,
		mapper: mappers.NewAuditLogMapper(),
	}
}

func (r *AuditRepositoryImpl) Save(ctx context.Context, log *audit.Log) error {
	model := r.mapper.ToModel(log)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

func (r *AuditRepositoryImpl) List(ctx context.Context, filter audit.Filter) ([]*audit.Log, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AuditLogModel{})

	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", string(filter.EntityType))
	}
	if filter.EntityID != "" {
		query = query.Where("entity_id = ?", filter.EntityID)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", string(filter.Action))
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", filter.From.UnixMilli())
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", filter.To.UnixMilli())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	query = query.Order("created_at DESC")
	if filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		if offset < 0 {
			offset = 0
		}
		query = query.Offset(offset).Limit(filter.Limit)
	}

	var logModels []*models.AuditLogModel
	if err := query.Find(&logModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list audit logs: %w", err)
	}

	result := make([]*audit.Log, 0, len(logModels))
	for _, model := range logModels {
		result = append(result, r.mapper.ToDomain(model))
	}

	return result, total, nil
}

func (r *AuditRepositoryImpl) ListByEntityID(ctx context.Context, entityType audit.EntityType, entityID string) ([]*audit.Log, error) {
	var logModels []*models.AuditLogModel

	if err := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at DESC").
		Find(&logModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list audit logs by entity id: %w", err)
	}

	result := make([]*audit.Log, 0, len(logModels))
	for _, model := range logModels {
		result = append(result, r.mapper.ToDomain(model))
	}

	return result, nil
}
