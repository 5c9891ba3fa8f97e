package v1

import (
	"github.com/condoboard/backend/internal/models"
	"github.com/condoboard/backend/internal/types"
)

type ShareEditable struct {
	Values []int64 `json:"values" example:"600,400"` // One value per unit in unit number order, summing to 1000
}

type ShareEntry struct {
	UnitID uint64 `json:"unitId" example:"4"`
	Value  int64  `json:"value" example:"600"`
}

type ShareTable struct {
	Table   types.Table  `json:"table" example:"A"`
	Sum     int64        `json:"sum" example:"1000"` // Sum over all entries of the table
	Entries []ShareEntry `json:"entries"`
}

func newShareTable(table types.Table, entries []models.ShareEntry) ShareTable {
	data := ShareTable{
		Table:   table,
		Entries: make([]ShareEntry, 0, len(entries)),
	}

	for _, entry := range entries {
		data.Sum += entry.Value
		data.Entries = append(data.Entries, ShareEntry{
			UnitID: entry.UnitID,
			Value:  entry.Value,
		})
	}

	return data
}

// newShareTables groups the entries by table, in table code order.
func newShareTables(entries []models.ShareEntry) []ShareTable {
	grouped := make(map[types.Table][]models.ShareEntry)
	for _, entry := range entries {
		grouped[entry.Table] = append(grouped[entry.Table], entry)
	}

	data := make([]ShareTable, 0, len(grouped))
	for _, table := range types.Tables {
		if tableEntries, ok := grouped[table]; ok {
			data = append(data, newShareTable(table, tableEntries))
		}
	}

	return data
}

type ShareListResponse struct {
	Data  []ShareTable `json:"data"`  // List of tables with entries
	Error *string      `json:"error"` // The error, if any occurred
}

type ShareTableResponse struct {
	Error *string     `json:"error"` // The error, if any occurred
	Data  *ShareTable `json:"data"`  // The resource
}

type ShareValidationResponse struct {
	Data  []models.ShareTableStatus `json:"data"`  // Validation status per table
	Error *string                   `json:"error"` // The error, if any occurred
}
