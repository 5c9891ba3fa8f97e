package v1

import (
	"sort"

	"github.com/condoboard/backend/internal/models"
	"github.com/condoboard/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AllocationTotal struct {
	ResidentID uint64          `json:"residentId" example:"9"`
	FirstName  string          `json:"firstName" example:"Maria"`
	LastName   string          `json:"lastName" example:"Rossi"`
	UnitNumber uint            `json:"unitNumber" example:"3"`
	Role       types.Role      `json:"role" example:"owner"`
	Total      decimal.Decimal `json:"total" example:"412.50"`
}

type Allocation struct {
	Totals     []AllocationTotal `json:"totals"`                            // Per-resident totals
	GrandTotal decimal.Decimal   `json:"grandTotal" example:"1200.00"`      // Sum over all residents
}

// newAllocation resolves the per-resident totals into the API
// representation, sorted by unit number and name.
func newAllocation(db *gorm.DB, building models.Building, totals map[uint64]decimal.Decimal) (Allocation, error) {
	var residents []models.Resident
	err := db.Where(&models.Resident{BuildingID: building.ID}).Find(&residents).Error
	if err != nil {
		return Allocation{}, err
	}

	var units []models.Unit
	err = db.Where(&models.Unit{BuildingID: building.ID}).Find(&units).Error
	if err != nil {
		return Allocation{}, err
	}

	numbers := make(map[uint64]uint, len(units))
	for _, unit := range units {
		numbers[unit.ID] = unit.Number
	}

	data := Allocation{
		Totals: make([]AllocationTotal, 0, len(residents)),
	}

	for _, resident := range residents {
		total := totals[resident.ID]
		data.GrandTotal = data.GrandTotal.Add(total)
		data.Totals = append(data.Totals, AllocationTotal{
			ResidentID: resident.ID,
			FirstName:  resident.FirstName,
			LastName:   resident.LastName,
			UnitNumber: numbers[resident.UnitID],
			Role:       resident.Role,
			Total:      total,
		})
	}

	sort.SliceStable(data.Totals, func(i, j int) bool {
		a, b := data.Totals[i], data.Totals[j]
		if a.UnitNumber != b.UnitNumber {
			return a.UnitNumber < b.UnitNumber
		}
		if a.LastName != b.LastName {
			return a.LastName < b.LastName
		}
		return a.ResidentID < b.ResidentID
	})

	return data, nil
}

type AllocationResponse struct {
	Error *string     `json:"error"` // The error, if any occurred
	Data  *Allocation `json:"data"`  // The resource
}

type AllocationDetail struct {
	ResidentID  uint64          `json:"residentId" example:"9"`
	ExpenseID   uint64          `json:"expenseId" example:"23"`
	Description string          `json:"description" example:"Pulizia scale"`
	Table       types.Table     `json:"table" example:"A"`
	Policy      types.Policy    `json:"policy" example:"50/50"`
	Amount      decimal.Decimal `json:"amount" example:"150.25"`
	Year        uint            `json:"year" example:"2026"`
}

type AllocationDetailListResponse struct {
	Data  []AllocationDetail `json:"data"`  // List of records
	Error *string            `json:"error"` // The error, if any occurred
}

type AllocationQueryFilter struct {
	Table string `form:"table"` // Only records of expenses split by this table
}
