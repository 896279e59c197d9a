package intervention

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Intervention is a maintenance event recorded against a piece of
// equipment on a site. The intervention window (debutInter/finInter) and
// the unavailability window are independent; both are optional.
type Intervention struct {
	id                       string
	titre                    string
	centraleType             string
	centrale                 string
	equipement               string
	entrepriseIntervenante   string
	nombreIntervenant        *int
	intervenantEnregistre    string
	dateRef                  *time.Time
	debutInter               *time.Time
	finInter                 *time.Time
	hasPerteProduction       bool
	hasPerteCommunication    bool
	indispoTerminee          bool
	dateIndisponibiliteDebut *time.Time
	dateIndisponibiliteFin   *time.Time
	typeEvenement            []string
	typeDysfonctionnement    []string
	rapportAttendu           bool
	rapportRecu              bool
	commentaires             string
	isArchived               bool
	archivedAt               *time.Time
	createdByID              string
	updatedByID              string
	createdAt                time.Time
	updatedAt                time.Time
}

// Params carries the full set of writable intervention fields.
type Params struct {
	Titre                    string
	CentraleType             string
	Centrale                 string
	Equipement               string
	EntrepriseIntervenante   string
	NombreIntervenant        *int
	IntervenantEnregistre    string
	DateRef                  *time.Time
	DebutInter               *time.Time
	FinInter                 *time.Time
	HasPerteProduction       bool
	HasPerteCommunication    bool
	IndispoTerminee          bool
	DateIndisponibiliteDebut *time.Time
	DateIndisponibiliteFin   *time.Time
	TypeEvenement            []string
	TypeDysfonctionnement    []string
	RapportAttendu           bool
	RapportRecu              bool
	Commentaires             string
}

// UpdateParams carries a partial update: nil fields are left unchanged.
// The Clear flags reset the matching optional timestamp to null; they
// take precedence over the corresponding value field.
type UpdateParams struct {
	Titre                    *string
	CentraleType             *string
	Centrale                 *string
	Equipement               *string
	EntrepriseIntervenante   *string
	NombreIntervenant        *int
	IntervenantEnregistre    *string
	DateRef                  *time.Time
	DebutInter               *time.Time
	FinInter                 *time.Time
	HasPerteProduction       *bool
	HasPerteCommunication    *bool
	IndispoTerminee          *bool
	DateIndisponibiliteDebut *time.Time
	DateIndisponibiliteFin   *time.Time
	TypeEvenement            []string
	TypeDysfonctionnement    []string
	RapportAttendu           *bool
	RapportRecu              *bool
	Commentaires             *string

	ClearDateRef                  bool
	ClearDebutInter               bool
	ClearFinInter                 bool
	ClearDateIndisponibiliteDebut bool
	ClearDateIndisponibiliteFin   bool
}

// NewIntervention creates an intervention created by creatorID.
func NewIntervention(p Params, creatorID string) (*Intervention, error) {
	if err := validateParams(p.Titre, p.Centrale, p.Equipement, p.DebutInter, p.FinInter, p.DateIndisponibiliteDebut, p.DateIndisponibiliteFin); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	i := &Intervention{
		id:                       uuid.NewString(),
		titre:                    p.Titre,
		centraleType:             p.CentraleType,
		centrale:                 p.Centrale,
		equipement:               p.Equipement,
		entrepriseIntervenante:   p.EntrepriseIntervenante,
		nombreIntervenant:        p.NombreIntervenant,
		intervenantEnregistre:    p.IntervenantEnregistre,
		dateRef:                  p.DateRef,
		debutInter:               p.DebutInter,
		finInter:                 p.FinInter,
		hasPerteProduction:       p.HasPerteProduction,
		hasPerteCommunication:    p.HasPerteCommunication,
		indispoTerminee:          p.IndispoTerminee,
		dateIndisponibiliteDebut: p.DateIndisponibiliteDebut,
		dateIndisponibiliteFin:   p.DateIndisponibiliteFin,
		typeEvenement:            normalizeTags(p.TypeEvenement),
		typeDysfonctionnement:    normalizeTags(p.TypeDysfonctionnement),
		rapportAttendu:           p.RapportAttendu,
		rapportRecu:              p.RapportRecu,
		commentaires:             p.Commentaires,
		createdByID:              creatorID,
		createdAt:                now,
		updatedAt:                now,
	}

	return i, nil
}

// ReconstructIntervention rebuilds an intervention from persistence.
func ReconstructIntervention(
	id string,
	p Params,
	isArchived bool,
	archivedAt *time.Time,
	createdByID, updatedByID string,
	createdAt, updatedAt time.Time,
) (*Intervention, error) {
	if id == "" {
		return nil, fmt.Errorf("intervention ID is required")
	}

	return &Intervention{
		id:                       id,
		titre:                    p.Titre,
		centraleType:             p.CentraleType,
		centrale:                 p.Centrale,
		equipement:               p.Equipement,
		entrepriseIntervenante:   p.EntrepriseIntervenante,
		nombreIntervenant:        p.NombreIntervenant,
		intervenantEnregistre:    p.IntervenantEnregistre,
		dateRef:                  p.DateRef,
		debutInter:               p.DebutInter,
		finInter:                 p.FinInter,
		hasPerteProduction:       p.HasPerteProduction,
		hasPerteCommunication:    p.HasPerteCommunication,
		indispoTerminee:          p.IndispoTerminee,
		dateIndisponibiliteDebut: p.DateIndisponibiliteDebut,
		dateIndisponibiliteFin:   p.DateIndisponibiliteFin,
		typeEvenement:            normalizeTags(p.TypeEvenement),
		typeDysfonctionnement:    normalizeTags(p.TypeDysfonctionnement),
		rapportAttendu:           p.RapportAttendu,
		rapportRecu:              p.RapportRecu,
		commentaires:             p.Commentaires,
		isArchived:               isArchived,
		archivedAt:               archivedAt,
		createdByID:              createdByID,
		updatedByID:              updatedByID,
		createdAt:                createdAt,
		updatedAt:                updatedAt,
	}, nil
}

func (i *Intervention) ID() string                           { return i.id }
func (i *Intervention) Titre() string                        { return i.titre }
func (i *Intervention) CentraleType() string                 { return i.centraleType }
func (i *Intervention) Centrale() string                     { return i.centrale }
func (i *Intervention) Equipement() string                   { return i.equipement }
func (i *Intervention) EntrepriseIntervenante() string       { return i.entrepriseIntervenante }
func (i *Intervention) NombreIntervenant() *int              { return i.nombreIntervenant }
func (i *Intervention) IntervenantEnregistre() string        { return i.intervenantEnregistre }
func (i *Intervention) DateRef() *time.Time                  { return i.dateRef }
func (i *Intervention) DebutInter() *time.Time               { return i.debutInter }
func (i *Intervention) FinInter() *time.Time                 { return i.finInter }
func (i *Intervention) HasPerteProduction() bool             { return i.hasPerteProduction }
func (i *Intervention) HasPerteCommunication() bool          { return i.hasPerteCommunication }
func (i *Intervention) IndispoTerminee() bool                { return i.indispoTerminee }
func (i *Intervention) DateIndisponibiliteDebut() *time.Time { return i.dateIndisponibiliteDebut }
func (i *Intervention) DateIndisponibiliteFin() *time.Time   { return i.dateIndisponibiliteFin }
func (i *Intervention) RapportAttendu() bool                 { return i.rapportAttendu }
func (i *Intervention) RapportRecu() bool                    { return i.rapportRecu }
func (i *Intervention) Commentaires() string                 { return i.commentaires }
func (i *Intervention) IsArchived() bool                     { return i.isArchived }
func (i *Intervention) ArchivedAt() *time.Time               { return i.archivedAt }
func (i *Intervention) CreatedByID() string                  { return i.createdByID }
func (i *Intervention) UpdatedByID() string                  { return i.updatedByID }
func (i *Intervention) CreatedAt() time.Time                 { return i.createdAt }
func (i *Intervention) UpdatedAt() time.Time                 { return i.updatedAt }

func (i *Intervention) TypeEvenement() []string {
	out := make([]string, len(i.typeEvenement))
	copy(out, i.typeEvenement)
	return out
}

func (i *Intervention) TypeDysfonctionnement() []string {
	out := make([]string, len(i.typeDysfonctionnement))
	copy(out, i.typeDysfonctionnement)
	return out
}

// DureeHeures returns the intervention duration in hours rounded to two
// decimals, or nil when either bound of the window is missing.
func (i *Intervention) DureeHeures() *float64 {
	return durationHours(i.debutInter, i.finInter)
}

// DureeIndisponibiliteHeures returns the unavailability duration in hours
// rounded to two decimals, or nil when either bound is missing.
func (i *Intervention) DureeIndisponibiliteHeures() *float64 {
	return durationHours(i.dateIndisponibiliteDebut, i.dateIndisponibiliteFin)
}

// Apply performs a partial update: only non-nil fields change.
// The resulting time windows are re-validated.
func (i *Intervention) Apply(p UpdateParams, updaterID string) error {
	debut := i.debutInter
	fin := i.finInter
	if p.ClearDebutInter {
		debut = nil
	} else if p.DebutInter != nil {
		debut = p.DebutInter
	}
	if p.ClearFinInter {
		fin = nil
	} else if p.FinInter != nil {
		fin = p.FinInter
	}
	indispoDebut := i.dateIndisponibiliteDebut
	indispoFin := i.dateIndisponibiliteFin
	if p.ClearDateIndisponibiliteDebut {
		indispoDebut = nil
	} else if p.DateIndisponibiliteDebut != nil {
		indispoDebut = p.DateIndisponibiliteDebut
	}
	if p.ClearDateIndisponibiliteFin {
		indispoFin = nil
	} else if p.DateIndisponibiliteFin != nil {
		indispoFin = p.DateIndisponibiliteFin
	}

	titre := i.titre
	centrale := i.centrale
	equipement := i.equipement
	if p.Titre != nil {
		titre = *p.Titre
	}
	if p.Centrale != nil {
		centrale = *p.Centrale
	}
	if p.Equipement != nil {
		equipement = *p.Equipement
	}

	if err := validateParams(titre, centrale, equipement, debut, fin, indispoDebut, indispoFin); err != nil {
		return err
	}

	i.titre = titre
	i.centrale = centrale
	i.equipement = equipement
	i.debutInter = debut
	i.finInter = fin
	i.dateIndisponibiliteDebut = indispoDebut
	i.dateIndisponibiliteFin = indispoFin

	if p.CentraleType != nil {
		i.centraleType = *p.CentraleType
	}
	if p.EntrepriseIntervenante != nil {
		i.entrepriseIntervenante = *p.EntrepriseIntervenante
	}
	if p.NombreIntervenant != nil {
		i.nombreIntervenant = p.NombreIntervenant
	}
	if p.IntervenantEnregistre != nil {
		i.intervenantEnregistre = *p.IntervenantEnregistre
	}
	if p.ClearDateRef {
		i.dateRef = nil
	} else if p.DateRef != nil {
		i.dateRef = p.DateRef
	}
	if p.HasPerteProduction != nil {
		i.hasPerteProduction = *p.HasPerteProduction
	}
	if p.HasPerteCommunication != nil {
		i.hasPerteCommunication = *p.HasPerteCommunication
	}
	if p.IndispoTerminee != nil {
		i.indispoTerminee = *p.IndispoTerminee
	}
	if p.TypeEvenement != nil {
		i.typeEvenement = normalizeTags(p.TypeEvenement)
	}
	if p.TypeDysfonctionnement != nil {
		i.typeDysfonctionnement = normalizeTags(p.TypeDysfonctionnement)
	}
	if p.RapportAttendu != nil {
		i.rapportAttendu = *p.RapportAttendu
	}
	if p.RapportRecu != nil {
		i.rapportRecu = *p.RapportRecu
	}
	if p.Commentaires != nil {
		i.commentaires = *p.Commentaires
	}

	i.updatedByID = updaterID
	i.updatedAt = time.Now().UTC()

	return nil
}

// Archive marks the intervention archived and stamps archivedAt.
// Archiving an already archived intervention is a no-op.
func (i *Intervention) Archive(updaterID string) {
	if i.isArchived {
		return
	}
	now := time.Now().UTC()
	i.isArchived = true
	i.archivedAt = &now
	i.updatedByID = updaterID
	i.updatedAt = now
}

// Restore clears the archived flag and timestamp. Restoring an intervention
// that is not archived is a no-op, not an error.
func (i *Intervention) Restore(updaterID string) {
	if !i.isArchived {
		return
	}
	i.isArchived = false
	i.archivedAt = nil
	i.updatedByID = updaterID
	i.updatedAt = time.Now().UTC()
}

// Snapshot returns the full current state as a flat map, suitable for an
// audit trail payload.
func (i *Intervention) Snapshot() map[string]interface{} {
	return map[string]interface{}{
		"id":                       i.id,
		"titre":                    i.titre,
		"centraleType":             i.centraleType,
		"centrale":                 i.centrale,
		"equipement":               i.equipement,
		"entrepriseIntervenante":   i.entrepriseIntervenante,
		"nombreIntervenant":        i.nombreIntervenant,
		"intervenantEnregistre":    i.intervenantEnregistre,
		"dateRef":                  i.dateRef,
		"debutInter":               i.debutInter,
		"finInter":                 i.finInter,
		"hasPerteProduction":       i.hasPerteProduction,
		"hasPerteCommunication":    i.hasPerteCommunication,
		"indispoTerminee":          i.indispoTerminee,
		"dateIndisponibiliteDebut": i.dateIndisponibiliteDebut,
		"dateIndisponibiliteFin":   i.dateIndisponibiliteFin,
		"typeEvenement":            i.TypeEvenement(),
		"typeDysfonctionnement":    i.TypeDysfonctionnement(),
		"rapportAttendu":           i.rapportAttendu,
		"rapportRecu":              i.rapportRecu,
		"commentaires":             i.commentaires,
		"isArchived":               i.isArchived,
		"archivedAt":               i.archivedAt,
	}
}

func validateParams(titre, centrale, equipement string, debut, fin, indispoDebut, indispoFin *time.Time) error {
	if len(titre) == 0 {
		return fmt.Errorf("titre is required")
	}
	if len(titre) > 255 {
		return fmt.Errorf("titre exceeds maximum length of 255 characters")
	}
	if len(centrale) == 0 {
		return fmt.Errorf("centrale is required")
	}
	if len(equipement) == 0 {
		return fmt.Errorf("equipement is required")
	}
	if debut != nil && fin != nil && fin.Before(*debut) {
		return fmt.Errorf("finInter must not precede debutInter")
	}
	if indispoDebut != nil && indispoFin != nil && indispoFin.Before(*indispoDebut) {
		return fmt.Errorf("dateIndisponibiliteFin must not precede dateIndisponibiliteDebut")
	}
	return nil
}

func normalizeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func durationHours(start, end *time.Time) *float64 {
	if start == nil || end == nil {
		return nil
	}
	hours := end.Sub(*start).Hours()
	rounded := math.Round(hours*100) / 100
	return &rounded
}
