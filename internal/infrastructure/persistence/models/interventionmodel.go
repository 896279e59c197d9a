package models

import "sitelog/internal/shared/constants"

type InterventionModel struct {
	ID                       string `gorm:"primaryKey;size:36"`
	Titre                    string `gorm:"size:255;not null;index"`
	CentraleType             string `gorm:"size:100"`
	Centrale                 string `gorm:"size:150;not null;index"`
	Equipement               string `gorm:"size:150;not null;index"`
	EntrepriseIntervenante   string `gorm:"size:255"`
	NombreIntervenant        *int
	IntervenantEnregistre    string `gorm:"size:255"`
	DateRef                  *int64 `gorm:"index"`
	DebutInter               *int64
	FinInter                 *int64
	HasPerteProduction       bool `gorm:"not null;default:false"`
	HasPerteCommunication    bool `gorm:"not null;default:false"`
	IndispoTerminee          bool `gorm:"not null;default:false"`
	DateIndisponibiliteDebut *int64
	DateIndisponibiliteFin   *int64
	TypeEvenement            string `gorm:"type:json"`
	TypeDysfonctionnement    string `gorm:"type:json"`
	RapportAttendu           bool   `gorm:"not null;default:false"`
	RapportRecu              bool   `gorm:"not null;default:false"`
	Commentaires             string `gorm:"type:text"`
	IsArchived               bool   `gorm:"not null;default:false;index"`
	ArchivedAt               *int64
	CreatedByID              string `gorm:"size:36;index"`
	UpdatedByID              string `gorm:"size:36"`
	CreatedAt                int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt                int64  `gorm:"autoUpdateTime:milli;not null"`

	// No foreign key constraints. Relationships are enforced by the
	// application layer.
}

func (InterventionModel) TableName() string {
	return constants.TableInterventions
}
