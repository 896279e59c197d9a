package dto

import (
	"time"

	"sitelog/internal/domain/intervenant"
)

type IntervenantDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Country   string    `json:"country"`
	Type      string    `json:"type"`
	CompanyID string    `json:"companyId"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CompanyDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToIntervenantDTO(i *intervenant.Intervenant) *IntervenantDTO {
	if i == nil {
		return nil
	}

	return &IntervenantDTO{
		ID:        i.ID(),
		Name:      i.Name(),
		Surname:   i.Surname(),
		FullName:  i.FullName(),
		Phone:     i.Phone(),
		Email:     i.Email(),
		Country:   i.Country(),
		Type:      i.Type(),
		CompanyID: i.CompanyID(),
		IsActive:  i.IsActive(),
		CreatedAt: i.CreatedAt(),
		UpdatedAt: i.UpdatedAt(),
	}
}

func ToIntervenantDTOs(items []*intervenant.Intervenant) []*IntervenantDTO {
	out := make([]*IntervenantDTO, 0, len(items))
	for _, i := range items {
		out = append(out, ToIntervenantDTO(i))
	}
	return out
}

func ToCompanyDTO(c *intervenant.Company) *CompanyDTO {
	if c == nil {
		return nil
	}

	return &CompanyDTO{
		ID:        c.ID(),
		Name:      c.Name(),
		IsActive:  c.IsActive(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func ToCompanyDTOs(items []*intervenant.Company) []*CompanyDTO {
	out := make([]*CompanyDTO, 0, len(items))
	for _, c := range items {
		out = append(out, ToCompanyDTO(c))
	}
	return out
}
