package intervention

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"sitelog/internal/application/intervention/usecases"
	interventiondomain "sitelog/internal/domain/intervention"
	"sitelog/internal/shared/constants"
	"sitelog/internal/shared/errors"
	"sitelog/internal/shared/utils"
)

type CreateInterventionRequest struct {
	Titre                    string     `json:"titre" binding:"required,max=255"`
	CentraleType             string     `json:"centraleType" binding:"max=100"`
	Centrale                 string     `json:"centrale" binding:"required,max=150"`
	Equipement               string     `json:"equipement" binding:"required,max=150"`
	EntrepriseIntervenante   string     `json:"entrepriseIntervenante" binding:"max=255"`
	NombreIntervenant        *int       `json:"nombreIntervenant" binding:"omitempty,min=0"`
	IntervenantEnregistre    string     `json:"intervenantEnregistre" binding:"max=255"`
	DateRef                  *time.Time `json:"dateRef"`
	DebutInter               *time.Time `json:"debutInter"`
	FinInter                 *time.Time `json:"finInter"`
	HasPerteProduction       bool       `json:"hasPerteProduction"`
	HasPerteCommunication    bool       `json:"hasPerteCommunication"`
	IndispoTerminee          bool       `json:"indispoTerminee"`
	DateIndisponibiliteDebut *time.Time `json:"dateIndisponibiliteDebut"`
	DateIndisponibiliteFin   *time.Time `json:"dateIndisponibiliteFin"`
	TypeEvenement            []string   `json:"typeEvenement"`
	TypeDysfonctionnement    []string   `json:"typeDysfonctionnement"`
	RapportAttendu           bool       `json:"rapportAttendu"`
	RapportRecu              bool       `json:"rapportRecu"`
	Commentaires             string     `json:"commentaires"`
}

func (r *CreateInterventionRequest) ToParams() interventiondomain.Params {
	return interventiondomain.Params{
		Titre:                    r.Titre,
		CentraleType:             r.CentraleType,
		Centrale:                 r.Centrale,
		Equipement:               r.Equipement,
		EntrepriseIntervenante:   r.EntrepriseIntervenante,
		NombreIntervenant:        r.NombreIntervenant,
		IntervenantEnregistre:    r.IntervenantEnregistre,
		DateRef:                  r.DateRef,
		DebutInter:               r.DebutInter,
		FinInter:                 r.FinInter,
		HasPerteProduction:       r.HasPerteProduction,
		HasPerteCommunication:    r.HasPerteCommunication,
		IndispoTerminee:          r.IndispoTerminee,
		DateIndisponibiliteDebut: r.DateIndisponibiliteDebut,
		DateIndisponibiliteFin:   r.DateIndisponibiliteFin,
		TypeEvenement:            r.TypeEvenement,
		TypeDysfonctionnement:    r.TypeDysfonctionnement,
		RapportAttendu:           r.RapportAttendu,
		RapportRecu:              r.RapportRecu,
		Commentaires:             r.Commentaires,
	}
}

// NullableTime distinguishes an absent JSON field from an explicit null.
// An explicit null clears the stored timestamp.
type NullableTime struct {
	Set  bool
	Time *time.Time
}

func (n *NullableTime) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Time = nil
		return nil
	}
	return json.Unmarshal(data, &n.Time)
}

func (n NullableTime) MarshalJSON() ([]byte, error) {
	if n.Time == nil {
		return []byte("null"), nil
	}
	return json.Marshal(n.Time)
}

type UpdateInterventionRequest struct {
	Titre                    *string      `json:"titre" binding:"omitempty,max=255"`
	CentraleType             *string      `json:"centraleType" binding:"omitempty,max=100"`
	Centrale                 *string      `json:"centrale" binding:"omitempty,max=150"`
	Equipement               *string      `json:"equipement" binding:"omitempty,max=150"`
	EntrepriseIntervenante   *string      `json:"entrepriseIntervenante" binding:"omitempty,max=255"`
	NombreIntervenant        *int         `json:"nombreIntervenant" binding:"omitempty,min=0"`
	IntervenantEnregistre    *string      `json:"intervenantEnregistre" binding:"omitempty,max=255"`
	DateRef                  NullableTime `json:"dateRef,omitzero"`
	DebutInter               NullableTime `json:"debutInter,omitzero"`
	FinInter                 NullableTime `json:"finInter,omitzero"`
	HasPerteProduction       *bool        `json:"hasPerteProduction"`
	HasPerteCommunication    *bool        `json:"hasPerteCommunication"`
	IndispoTerminee          *bool        `json:"indispoTerminee"`
	DateIndisponibiliteDebut NullableTime `json:"dateIndisponibiliteDebut,omitzero"`
	DateIndisponibiliteFin   NullableTime `json:"dateIndisponibiliteFin,omitzero"`
	TypeEvenement            []string     `json:"typeEvenement"`
	TypeDysfonctionnement    []string     `json:"typeDysfonctionnement"`
	RapportAttendu           *bool        `json:"rapportAttendu"`
	RapportRecu              *bool        `json:"rapportRecu"`
	Commentaires             *string      `json:"commentaires"`
}

func (r *UpdateInterventionRequest) ToUpdateParams() interventiondomain.UpdateParams {
	return interventiondomain.UpdateParams{
		Titre:                    r.Titre,
		CentraleType:             r.CentraleType,
		Centrale:                 r.Centrale,
		Equipement:               r.Equipement,
		EntrepriseIntervenante:   r.EntrepriseIntervenante,
		NombreIntervenant:        r.NombreIntervenant,
		IntervenantEnregistre:    r.IntervenantEnregistre,
		DateRef:                  r.DateRef.Time,
		DebutInter:               r.DebutInter.Time,
		FinInter:                 r.FinInter.Time,
		HasPerteProduction:       r.HasPerteProduction,
		HasPerteCommunication:    r.HasPerteCommunication,
		IndispoTerminee:          r.IndispoTerminee,
		DateIndisponibiliteDebut: r.DateIndisponibiliteDebut.Time,
		DateIndisponibiliteFin:   r.DateIndisponibiliteFin.Time,
		TypeEvenement:            r.TypeEvenement,
		TypeDysfonctionnement:    r.TypeDysfonctionnement,
		RapportAttendu:           r.RapportAttendu,
		RapportRecu:              r.RapportRecu,
		Commentaires:             r.Commentaires,

		ClearDateRef:                  r.DateRef.Set && r.DateRef.Time == nil,
		ClearDebutInter:               r.DebutInter.Set && r.DebutInter.Time == nil,
		ClearFinInter:                 r.FinInter.Set && r.FinInter.Time == nil,
		ClearDateIndisponibiliteDebut: r.DateIndisponibiliteDebut.Set && r.DateIndisponibiliteDebut.Time == nil,
		ClearDateIndisponibiliteFin:   r.DateIndisponibiliteFin.Set && r.DateIndisponibiliteFin.Time == nil,
	}
}

// parseListFilter decodes the listing query string into a domain filter.
// Date bounds accept RFC 3339 timestamps or plain YYYY-MM-DD dates.
func parseListFilter(c *gin.Context) (interventiondomain.Filter, error) {
	pagination := utils.ParsePagination(c)

	filter := interventiondomain.Filter{
		Centrale:              c.Query("centrale"),
		Equipement:            c.Query("equipement"),
		TypeEvenement:         c.Query("typeEvenement"),
		TypeDysfonctionnement: c.Query("typeDysfonctionnement"),
		Search:                c.Query("search"),
		Page:                  pagination.Page,
		Limit:                 pagination.Limit,
		SortBy:                c.Query("sortBy"),
		SortOrder:             c.Query("sortOrder"),
	}

	if raw := c.Query("isArchived"); raw != "" {
		archived, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, errors.NewValidationError("isArchived must be a boolean")
		}
		filter.IsArchived = &archived
	}

	if raw := c.Query("dateDebutFrom"); raw != "" {
		from, err := parseDateParam(raw)
		if err != nil {
			return filter, errors.NewValidationError("dateDebutFrom must be an RFC 3339 timestamp or YYYY-MM-DD date")
		}
		filter.DateRefFrom = &from
	}

	if raw := c.Query("dateDebutTo"); raw != "" {
		to, err := parseDateParam(raw)
		if err != nil {
			return filter, errors.NewValidationError("dateDebutTo must be an RFC 3339 timestamp or YYYY-MM-DD date")
		}
		filter.DateRefTo = &to
	}

	return filter, nil
}

func parseDateParam(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func actorFromContext(c *gin.Context) usecases.Actor {
	return usecases.Actor{
		UserID:    c.GetString(constants.ContextKeyUserID),
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}
