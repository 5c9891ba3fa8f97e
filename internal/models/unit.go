package models

// Unit is a single apartment or commercial space within a building.
//
// Units are created together with their building and cannot be added or
// removed afterwards.
type Unit struct {
	Model
	BuildingID uint64   `gorm:"uniqueIndex:unit_building_number"`
	Building   Building `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Number     uint     `gorm:"uniqueIndex:unit_building_number"`
}
