package intervenant

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Intervenant is a person who can be recorded against interventions.
// The link to a company is optional and survives company deletion
// (companyID is cleared, the profile stays).
type Intervenant struct {
	id              string
	name            string
	surname         string
	phone           string
	email           string
	country         string
	intervenantType string
	companyID       string
	isActive        bool
	createdAt       time.Time
	updatedAt       time.Time
}

// NewIntervenant creates an active intervenant profile.
func NewIntervenant(name, surname, phone, email, country, intervenantType, companyID string) (*Intervenant, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if surname == "" {
		return nil, fmt.Errorf("surname is required")
	}
	if phone == "" {
		return nil, fmt.Errorf("phone is required")
	}

	now := time.Now().UTC()
	return &Intervenant{
		id:              uuid.NewString(),
		name:            name,
		surname:         surname,
		phone:           phone,
		email:           email,
		country:         country,
		intervenantType: intervenantType,
		companyID:       companyID,
		isActive:        true,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructIntervenant rebuilds an intervenant from persistence.
func ReconstructIntervenant(
	id, name, surname, phone, email, country, intervenantType, companyID string,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Intervenant {
	return &Intervenant{
		id:              id,
		name:            name,
		surname:         surname,
		phone:           phone,
		email:           email,
		country:         country,
		intervenantType: intervenantType,
		companyID:       companyID,
		isActive:        isActive,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (i *Intervenant) ID() string           { return i.id }
func (i *Intervenant) Name() string         { return i.name }
func (i *Intervenant) Surname() string      { return i.surname }
func (i *Intervenant) Phone() string        { return i.phone }
func (i *Intervenant) Email() string        { return i.email }
func (i *Intervenant) Country() string      { return i.country }
func (i *Intervenant) Type() string         { return i.intervenantType }
func (i *Intervenant) CompanyID() string    { return i.companyID }
func (i *Intervenant) IsActive() bool       { return i.isActive }
func (i *Intervenant) CreatedAt() time.Time { return i.createdAt }
func (i *Intervenant) UpdatedAt() time.Time { return i.updatedAt }

// FullName returns "surname name", the display convention used across
// the application.
func (i *Intervenant) FullName() string {
	return strings.TrimSpace(i.surname + " " + i.name)
}

// UpdateFields carries a partial update: nil fields are left unchanged.
type UpdateFields struct {
	Name            *string
	Surname         *string
	Phone           *string
	Email           *string
	Country         *string
	IntervenantType *string
	CompanyID       *string
	IsActive        *bool
}

// Apply performs a partial update on the profile.
func (i *Intervenant) Apply(f UpdateFields) error {
	if f.Name != nil {
		if *f.Name == "" {
			return fmt.Errorf("name cannot be empty")
		}
		i.name = *f.Name
	}
	if f.Surname != nil {
		if *f.Surname == "" {
			return fmt.Errorf("surname cannot be empty")
		}
		i.surname = *f.Surname
	}
	if f.Phone != nil {
		i.phone = *f.Phone
	}
	if f.Email != nil {
		i.email = *f.Email
	}
	if f.Country != nil {
		i.country = *f.Country
	}
	if f.IntervenantType != nil {
		i.intervenantType = *f.IntervenantType
	}
	if f.CompanyID != nil {
		i.companyID = *f.CompanyID
	}
	if f.IsActive != nil {
		i.isActive = *f.IsActive
	}
	i.updatedAt = time.Now().UTC()
	return nil
}
