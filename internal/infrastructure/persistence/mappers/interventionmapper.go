package mappers

import (
	"encoding/json"
	"time"

	"sitelog/internal/domain/intervention"
	"sitelog/internal/infrastructure/persistence/models"
)

// InterventionMapper converts between intervention entities and
// persistence models.
type InterventionMapper interface {
	ToModel(i *intervention.Intervention) *models.InterventionModel
	ToDomain(model *models.InterventionModel) (*intervention.Intervention, error)
}

type InterventionMapperImpl struct{}

func NewInterventionMapper() InterventionMapper {
	return &InterventionMapperImpl{}
}

func (m *InterventionMapperImpl) ToModel(i *intervention.Intervention) *models.InterventionModel {
	model := &models.InterventionModel{
		ID:                       i.ID(),
		Titre:                    i.Titre(),
		CentraleType:             i.CentraleType(),
		Centrale:                 i.Centrale(),
		Equipement:               i.Equipement(),
		EntrepriseIntervenante:   i.EntrepriseIntervenante(),
		NombreIntervenant:        i.NombreIntervenant(),
		IntervenantEnregistre:    i.IntervenantEnregistre(),
		DateRef:                  toMillis(i.DateRef()),
		DebutInter:               toMillis(i.DebutInter()),
		FinInter:                 toMillis(i.FinInter()),
		HasPerteProduction:       i.HasPerteProduction(),
		HasPerteCommunication:    i.HasPerteCommunication(),
		IndispoTerminee:          i.IndispoTerminee(),
		DateIndisponibiliteDebut: toMillis(i.DateIndisponibiliteDebut()),
		DateIndisponibiliteFin:   toMillis(i.DateIndisponibiliteFin()),
		RapportAttendu:           i.RapportAttendu(),
		RapportRecu:              i.RapportRecu(),
		Commentaires:             i.Commentaires(),
		IsArchived:               i.IsArchived(),
		ArchivedAt:               toMillis(i.ArchivedAt()),
		CreatedByID:              i.CreatedByID(),
		UpdatedByID:              i.UpdatedByID(),
		CreatedAt:                i.CreatedAt().UnixMilli(),
		UpdatedAt:                i.UpdatedAt().UnixMilli(),
	}

	evenement, _ := json.Marshal(i.TypeEvenement())
	model.TypeEvenement = string(evenement)
	dysfonctionnement, _ := json.Marshal(i.TypeDysfonctionnement())
	model.TypeDysfonctionnement = string(dysfonctionnement)

	return model
}

func (m *InterventionMapperImpl) ToDomain(model *models.InterventionModel) (*intervention.Intervention, error) {
	return intervention.ReconstructIntervention(
		model.ID,
		intervention.Params{
			Titre:                    model.Titre,
			CentraleType:             model.CentraleType,
			Centrale:                 model.Centrale,
			Equipement:               model.Equipement,
			EntrepriseIntervenante:   model.EntrepriseIntervenante,
			NombreIntervenant:        model.NombreIntervenant,
			IntervenantEnregistre:    model.IntervenantEnregistre,
			DateRef:                  fromMillis(model.DateRef),
			DebutInter:               fromMillis(model.DebutInter),
			FinInter:                 fromMillis(model.FinInter),
			HasPerteProduction:       model.HasPerteProduction,
			HasPerteCommunication:    model.HasPerteCommunication,
			IndispoTerminee:          model.IndispoTerminee,
			DateIndisponibiliteDebut: fromMillis(model.DateIndisponibiliteDebut),
			DateIndisponibiliteFin:   fromMillis(model.DateIndisponibiliteFin),
			TypeEvenement:            decodeTags(model.TypeEvenement),
			TypeDysfonctionnement:    decodeTags(model.TypeDysfonctionnement),
			RapportAttendu:           model.RapportAttendu,
			RapportRecu:              model.RapportRecu,
			Commentaires:             model.Commentaires,
		},
		model.IsArchived,
		fromMillis(model.ArchivedAt),
		model.CreatedByID,
		model.UpdatedByID,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}

// decodeTags tolerates legacy rows where the column holds plain text
// instead of a JSON array.
func decodeTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return []string{raw}
	}
	return tags
}
