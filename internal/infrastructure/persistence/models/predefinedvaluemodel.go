package models

import "sitelog/internal/shared/constants"

type PredefinedValueModel struct {
	ID            string `gorm:"primaryKey;size:36"`
	Type          string `gorm:"size:50;not null;uniqueIndex:idx_predefined_type_value"`
	Value         string `gorm:"size:150;not null;uniqueIndex:idx_predefined_type_value"`
	Description   string `gorm:"size:500"`
	Nickname      string `gorm:"size:100"`
	EquipmentType string `gorm:"size:100"`
	ParentID      string `gorm:"size:36;index"`
	IsActive      bool   `gorm:"not null;default:true;index"`
	SortOrder     int    `gorm:"not null;default:0"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (PredefinedValueModel) TableName() string {
	return constants.TablePredefinedValues
}
