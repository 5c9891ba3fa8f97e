package models

import (
	"strings"

	"gorm.io/gorm"
)

// Building represents a condominium managed by a user.
type Building struct {
	Model
	UserID           uint64 `gorm:"index"`
	Name             string
	Address          string
	UnitCount        uint
	ConstructionYear uint
	Staircases       uint
	Administrator    string
	IBAN             string
	Bank             string
	Notes            string
}

func (b *Building) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Address = strings.TrimSpace(b.Address)
	b.Administrator = strings.TrimSpace(b.Administrator)
	b.IBAN = strings.ReplaceAll(b.IBAN, " ", "")
	b.Notes = strings.TrimSpace(b.Notes)

	if b.Name == "" {
		return ErrBuildingNameRequired
	}

	return nil
}

func (b *Building) BeforeCreate(_ *gorm.DB) error {
	if b.UnitCount < 1 {
		return ErrBuildingUnitCountInvalid
	}

	return nil
}

// AfterCreate creates the building's units, numbered from 1. Units only
// exist and disappear together with their building.
func (b *Building) AfterCreate(tx *gorm.DB) error {
	units := make([]Unit, 0, b.UnitCount)
	for i := uint(1); i <= b.UnitCount; i++ {
		units = append(units, Unit{
			BuildingID: b.ID,
			Number:     i,
		})
	}

	return tx.Create(&units).Error
}

func (b *Building) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("UnitCount") {
		return ErrBuildingUnitCountImmutable
	}

	if toSave, ok := tx.Statement.Dest.(Building); ok {
		if tx.Statement.Changed("Name") && strings.TrimSpace(toSave.Name) == "" {
			return ErrBuildingNameRequired
		}
	}

	return nil
}

// Units returns the units of the building, ordered by number.
func (b Building) Units(db *gorm.DB) ([]Unit, error) {
	var units []Unit
	err := db.Where(&Unit{BuildingID: b.ID}).Order("number ASC").Find(&units).Error
	if err != nil {
		return nil, err
	}

	return units, nil
}
