package mappers

import (
	"time"

	"sitelog/internal/domain/predefined"
	"sitelog/internal/infrastructure/persistence/models"
)

type PredefinedValueMapper interface {
	ToModel(v *predefined.Value) *models.PredefinedValueModel
	ToDomain(model *models.PredefinedValueModel) *predefined.Value
}

type PredefinedValueMapperImpl struct{}

func NewPredefinedValueMapper() PredefinedValueMapper {
	return &PredefinedValueMapperImpl{}
}

func (m *PredefinedValueMapperImpl) ToModel(v *predefined.Value) *models.PredefinedValueModel {
	return &models.PredefinedValueModel{
		ID:            v.ID(),
		Type:          v.Type().String(),
		Value:         v.Value(),
		Description:   v.Description(),
		Nickname:      v.Nickname(),
		EquipmentType: v.EquipmentType(),
		ParentID:      v.ParentID(),
		IsActive:      v.IsActive(),
		SortOrder:     v.SortOrder(),
		CreatedAt:     v.CreatedAt().UnixMilli(),
		UpdatedAt:     v.UpdatedAt().UnixMilli(),
	}
}

func (m *PredefinedValueMapperImpl) ToDomain(model *models.PredefinedValueModel) *predefined.Value {
	return predefined.ReconstructValue(
		model.ID,
		predefined.ValueType(model.Type),
		model.Value,
		model.Description,
		model.Nickname,
		model.EquipmentType,
		model.ParentID,
		model.IsActive,
		model.SortOrder,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}
