package dto

import (
	"time"

	"sitelog/internal/domain/intervention"
)

type InterventionDTO struct {
	ID                         string     `json:"id"`
	Titre                      string     `json:"titre"`
	CentraleType               string     `json:"centraleType"`
	Centrale                   string     `json:"centrale"`
	Equipement                 string     `json:"equipement"`
	EntrepriseIntervenante     string     `json:"entrepriseIntervenante"`
	NombreIntervenant          *int       `json:"nombreIntervenant"`
	IntervenantEnregistre      string     `json:"intervenantEnregistre"`
	DateRef                    *time.Time `json:"dateRef"`
	DebutInter                 *time.Time `json:"debutInter"`
	FinInter                   *time.Time `json:"finInter"`
	DureeHeures                *float64   `json:"dureeHeures"`
	HasPerteProduction         bool       `json:"hasPerteProduction"`
	HasPerteCommunication      bool       `json:"hasPerteCommunication"`
	IndispoTerminee            bool       `json:"indispoTerminee"`
	DateIndisponibiliteDebut   *time.Time `json:"dateIndisponibiliteDebut"`
	DateIndisponibiliteFin     *time.Time `json:"dateIndisponibiliteFin"`
	DureeIndisponibiliteHeures *float64   `json:"dureeIndisponibiliteHeures"`
	TypeEvenement              []string   `json:"typeEvenement"`
	TypeDysfonctionnement      []string   `json:"typeDysfonctionnement"`
	RapportAttendu             bool       `json:"rapportAttendu"`
	RapportRecu                bool       `json:"rapportRecu"`
	Commentaires               string     `json:"commentaires"`
	IsArchived                 bool       `json:"isArchived"`
	ArchivedAt                 *time.Time `json:"archivedAt"`
	CreatedByID                string     `json:"createdById"`
	UpdatedByID                string     `json:"updatedById"`
	CreatedAt                  time.Time  `json:"createdAt"`
	UpdatedAt                  time.Time  `json:"updatedAt"`
}

func ToInterventionDTO(i *intervention.Intervention) *InterventionDTO {
	if i == nil {
		return nil
	}

	return &InterventionDTO{
		ID:                         i.ID(),
		Titre:                      i.Titre(),
		CentraleType:               i.CentraleType(),
		Centrale:                   i.Centrale(),
		Equipement:                 i.Equipement(),
		EntrepriseIntervenante:     i.EntrepriseIntervenante(),
		NombreIntervenant:          i.NombreIntervenant(),
		IntervenantEnregistre:      i.IntervenantEnregistre(),
		DateRef:                    i.DateRef(),
		DebutInter:                 i.DebutInter(),
		FinInter:                   i.FinInter(),
		DureeHeures:                i.DureeHeures(),
		HasPerteProduction:         i.HasPerteProduction(),
		HasPerteCommunication:      i.HasPerteCommunication(),
		IndispoTerminee:            i.IndispoTerminee(),
		DateIndisponibiliteDebut:   i.DateIndisponibiliteDebut(),
		DateIndisponibiliteFin:     i.DateIndisponibiliteFin(),
		DureeIndisponibiliteHeures: i.DureeIndisponibiliteHeures(),
		TypeEvenement:              i.TypeEvenement(),
		TypeDysfonctionnement:      i.TypeDysfonctionnement(),
		RapportAttendu:             i.RapportAttendu(),
		RapportRecu:                i.RapportRecu(),
		Commentaires:               i.Commentaires(),
		IsArchived:                 i.IsArchived(),
		ArchivedAt:                 i.ArchivedAt(),
		CreatedByID:                i.CreatedByID(),
		UpdatedByID:                i.UpdatedByID(),
		CreatedAt:                  i.CreatedAt(),
		UpdatedAt:                  i.UpdatedAt(),
	}
}

func ToInterventionDTOs(items []*intervention.Intervention) []*InterventionDTO {
	out := make([]*InterventionDTO, 0, len(items))
	for _, i := range items {
		out = append(out, ToInterventionDTO(i))
	}
	return out
}
