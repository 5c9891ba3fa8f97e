package models

import (
	"strings"

	"github.com/condoboard/backend/internal/types"
	"gorm.io/gorm"
)

// Resident is a person living in or owning a unit. A person holding a
// unit both as owner and as their home has the combined "owner-tenant"
// role.
type Resident struct {
	Model
	BuildingID uint64   `gorm:"index"`
	Building   Building `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	UnitID     uint64   `gorm:"index"`
	Unit       Unit     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	FirstName  string
	LastName   string
	Email      string
	Role       types.Role
}

func (r *Resident) BeforeCreate(tx *gorm.DB) error {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)

	if r.FirstName == "" || r.LastName == "" {
		return ErrResidentNameRequired
	}

	if !r.Role.Valid() {
		return ErrResidentRoleInvalid
	}

	return r.checkUnit(tx, r.UnitID)
}

func (r *Resident) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(Resident)
	if !ok {
		return nil
	}

	if tx.Statement.Changed("FirstName") && strings.TrimSpace(toSave.FirstName) == "" {
		return ErrResidentNameRequired
	}

	if tx.Statement.Changed("LastName") && strings.TrimSpace(toSave.LastName) == "" {
		return ErrResidentNameRequired
	}

	if tx.Statement.Changed("Role") && !toSave.Role.Valid() {
		return ErrResidentRoleInvalid
	}

	if tx.Statement.Changed("UnitID") {
		return r.checkUnit(tx, toSave.UnitID)
	}

	return nil
}

// checkUnit verifies that the unit belongs to the resident's building.
func (r *Resident) checkUnit(tx *gorm.DB, unitID uint64) error {
	var unit Unit
	err := tx.First(&unit, unitID).Error
	if err != nil {
		return err
	}

	if unit.BuildingID != r.BuildingID {
		return ErrResidentUnitMismatch
	}

	return nil
}
