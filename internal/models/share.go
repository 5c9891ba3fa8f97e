package models

import (
	"github.com/condoboard/backend/internal/types"
	"gorm.io/gorm"
)

// ShareEntry is one unit's share in one of the ten ownership tables.
//
// Shares are expressed in thousandths: a complete table holds values
// summing to 1000 across a building's units. Individual entries may be
// written independently, so a table can be incomplete or inconsistent
// while data entry is in progress.
type ShareEntry struct {
	Model
	BuildingID uint64      `gorm:"index"`
	Building   Building    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	UnitID     uint64      `gorm:"uniqueIndex:share_unit_table"`
	Unit       Unit        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Table      types.Table `gorm:"column:table_code;uniqueIndex:share_unit_table" json:"table"`
	Value      int64
}

func (s *ShareEntry) BeforeSave(_ *gorm.DB) error {
	if !s.Table.Valid() {
		return ErrTableInvalid
	}

	if s.Value < 0 {
		return ErrShareValueNegative
	}

	if s.Value > 1000 {
		return ErrShareValueTooLarge
	}

	return nil
}

// ReplaceShares replaces a building's share table with the given
// values, one per unit in unit number order.
//
// The whole table is validated before anything is written: there has to
// be one value per unit and the values have to sum to 1000. This is the
// only write path that guarantees a consistent table.
func ReplaceShares(db *gorm.DB, building Building, table types.Table, values []int64) error {
	if !table.Valid() {
		return ErrTableInvalid
	}

	return db.Transaction(func(tx *gorm.DB) error {
		units, err := building.Units(tx)
		if err != nil {
			return err
		}

		if len(values) != len(units) {
			return ErrShareCountMismatch
		}

		var sum int64
		for _, value := range values {
			if value < 0 {
				return ErrShareValueNegative
			}
			if value > 1000 {
				return ErrShareValueTooLarge
			}
			sum += value
		}

		if sum != 1000 {
			return ErrShareSumInvalid
		}

		err = tx.Where(&ShareEntry{BuildingID: building.ID, Table: table}).Delete(&ShareEntry{}).Error
		if err != nil {
			return err
		}

		entries := make([]ShareEntry, 0, len(units))
		for i, unit := range units {
			entries = append(entries, ShareEntry{
				BuildingID: building.ID,
				UnitID:     unit.ID,
				Table:      table,
				Value:      values[i],
			})
		}

		return tx.Create(&entries).Error
	})
}

// ShareTableStatus describes the state of one share table of a
// building.
type ShareTableStatus struct {
	Table    types.Table `json:"table"`
	Entries  int         `json:"entries"`
	Sum      int64       `json:"sum"`
	Complete bool        `json:"complete"`
	Valid    bool        `json:"valid"`
}

// ShareValidation reports, for every table, whether the building's
// share entries are complete and sum to 1000.
//
// Individual entry writes can leave a table inconsistent, this report
// is how such tables are found.
func ShareValidation(db *gorm.DB, building Building) ([]ShareTableStatus, error) {
	var entries []ShareEntry
	err := db.Where(&ShareEntry{BuildingID: building.ID}).Find(&entries).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[types.Table]int)
	sums := make(map[types.Table]int64)
	for _, entry := range entries {
		counts[entry.Table]++
		sums[entry.Table] += entry.Value
	}

	statuses := make([]ShareTableStatus, 0, len(types.Tables))
	for _, table := range types.Tables {
		status := ShareTableStatus{
			Table:    table,
			Entries:  counts[table],
			Sum:      sums[table],
			Complete: counts[table] == int(building.UnitCount),
		}
		status.Valid = status.Complete && status.Sum == 1000

		statuses = append(statuses, status)
	}

	return statuses, nil
}
