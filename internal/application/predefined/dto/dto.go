package dto

import (
	"time"

	"sitelog/internal/domain/predefined"
)

type PredefinedValueDTO struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Value         string    `json:"value"`
	Description   string    `json:"description"`
	Nickname      string    `json:"nickname"`
	EquipmentType string    `json:"equipmentType"`
	ParentID      string    `json:"parentId"`
	IsActive      bool      `json:"isActive"`
	SortOrder     int       `json:"sortOrder"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func ToPredefinedValueDTO(v *predefined.Value) *PredefinedValueDTO {
	if v == nil {
		return nil
	}

	return &PredefinedValueDTO{
		ID:            v.ID(),
		Type:          v.Type().String(),
		Value:         v.Value(),
		Description:   v.Description(),
		Nickname:      v.Nickname(),
		EquipmentType: v.EquipmentType(),
		ParentID:      v.ParentID(),
		IsActive:      v.IsActive(),
		SortOrder:     v.SortOrder(),
		CreatedAt:     v.CreatedAt(),
		UpdatedAt:     v.UpdatedAt(),
	}
}

func ToPredefinedValueDTOs(values []*predefined.Value) []*PredefinedValueDTO {
	out := make([]*PredefinedValueDTO, 0, len(values))
	for _, v := range values {
		out = append(out, ToPredefinedValueDTO(v))
	}
	return out
}
