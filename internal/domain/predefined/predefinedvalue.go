package predefined

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ValueType is the controlled vocabulary a predefined value belongs to.
type ValueType string

const (
	TypeCentrale          ValueType = "centrale"
	TypeEquipement        ValueType = "equipement"
	TypeEvenement         ValueType = "type_evenement"
	TypeDysfonctionnement ValueType = "type_dysfonctionnement"
	TypeIntervenant       ValueType = "type_intervenant"
)

// AllValueTypes lists every known vocabulary, in display order.
var AllValueTypes = []ValueType{
	TypeCentrale,
	TypeEquipement,
	TypeEvenement,
	TypeDysfonctionnement,
	TypeIntervenant,
}

func (t ValueType) String() string {
	return string(t)
}

func (t ValueType) IsValid() bool {
	switch t {
	case TypeCentrale, TypeEquipement, TypeEvenement, TypeDysfonctionnement, TypeIntervenant:
		return true
	}
	return false
}

// Value is one taxonomy entry. Equipement entries may reference their
// centrale through ParentID, forming a two-level hierarchy.
type Value struct {
	id            string
	valueType     ValueType
	value         string
	description   string
	nickname      string
	equipmentType string
	parentID      string
	isActive      bool
	sortOrder     int
	createdAt     time.Time
	updatedAt     time.Time
}

// NewValue creates a taxonomy entry. The (type, value) pair uniqueness is
// enforced by the repository, not here.
func NewValue(valueType ValueType, value, description string) (*Value, error) {
	if !valueType.IsValid() {
		return nil, fmt.Errorf("invalid value type: %s", valueType)
	}
	if value == "" {
		return nil, fmt.Errorf("value is required")
	}
	if len(value) > 150 {
		return nil, fmt.Errorf("value exceeds maximum length of 150 characters")
	}

	now := time.Now().UTC()
	return &Value{
		id:          uuid.NewString(),
		valueType:   valueType,
		value:       value,
		description: description,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructValue rebuilds a taxonomy entry from persistence.
func ReconstructValue(
	id string,
	valueType ValueType,
	value, description, nickname, equipmentType, parentID string,
	isActive bool,
	sortOrder int,
	createdAt, updatedAt time.Time,
) *Value {
	return &Value{
		id:            id,
		valueType:     valueType,
		value:         value,
		description:   description,
		nickname:      nickname,
		equipmentType: equipmentType,
		parentID:      parentID,
		isActive:      isActive,
		sortOrder:     sortOrder,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (v *Value) ID() string            { return v.id }
func (v *Value) Type() ValueType       { return v.valueType }
func (v *Value) Value() string         { return v.value }
func (v *Value) Description() string   { return v.description }
func (v *Value) Nickname() string      { return v.nickname }
func (v *Value) EquipmentType() string { return v.equipmentType }
func (v *Value) ParentID() string      { return v.parentID }
func (v *Value) IsActive() bool        { return v.isActive }
func (v *Value) SortOrder() int        { return v.sortOrder }
func (v *Value) CreatedAt() time.Time  { return v.createdAt }
func (v *Value) UpdatedAt() time.Time  { return v.updatedAt }

// UpdateFields carries a partial update: nil fields are left unchanged.
type UpdateFields struct {
	Value         *string
	Description   *string
	Nickname      *string
	EquipmentType *string
	ParentID      *string
	IsActive      *bool
	SortOrder     *int
}

// Apply performs a partial update on the entry.
func (v *Value) Apply(f UpdateFields) error {
	if f.Value != nil {
		if *f.Value == "" {
			return fmt.Errorf("value cannot be empty")
		}
		if len(*f.Value) > 150 {
			return fmt.Errorf("value exceeds maximum length of 150 characters")
		}
		v.value = *f.Value
	}
	if f.Description != nil {
		v.description = *f.Description
	}
	if f.Nickname != nil {
		v.nickname = *f.Nickname
	}
	if f.EquipmentType != nil {
		v.equipmentType = *f.EquipmentType
	}
	if f.ParentID != nil {
		v.parentID = *f.ParentID
	}
	if f.IsActive != nil {
		v.isActive = *f.IsActive
	}
	if f.SortOrder != nil {
		v.sortOrder = *f.SortOrder
	}
	v.updatedAt = time.Now().UTC()
	return nil
}

// Deactivate marks the entry inactive so it no longer appears in
// type listings.
func (v *Value) Deactivate() {
	v.isActive = false
	v.updatedAt = time.Now().UTC()
}
