package models

import "sitelog/internal/shared/constants"

type IntervenantModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"size:100;not null"`
	Surname   string `gorm:"size:100;not null;index"`
	Phone     string `gorm:"size:30;not null"`
	Email     string `gorm:"size:255"`
	Country   string `gorm:"size:100"`
	Type      string `gorm:"size:100"`
	CompanyID string `gorm:"size:36;index"`
	IsActive  bool   `gorm:"not null;default:true;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (IntervenantModel) TableName() string {
	return constants.TableIntervenants
}

type CompanyModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"size:255;not null;index"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CompanyModel) TableName() string {
	return constants.TableCompanies
}
