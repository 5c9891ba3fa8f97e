package v1

import (
	"github.com/condoboard/backend/internal/models"
	"github.com/shopspring/decimal"
)

type Budget struct {
	models.Model
	BuildingID    uint64          `json:"buildingId" example:"17"`
	Year          uint            `json:"year" example:"2027"`
	TotalForecast decimal.Decimal `json:"totalForecast" example:"15000.00"` // Sum of the budget's forecast expenses
	TotalActual   decimal.Decimal `json:"totalActual" example:"14233.80"`   // Sum of the actual expenses the budget was generated from
	Notes         string          `json:"notes"`
}

// newBudget returns the API representation of the resource
func newBudget(model models.AnnualBudget) Budget {
	return Budget{
		Model:         model.Model,
		BuildingID:    model.BuildingID,
		Year:          model.Year,
		TotalForecast: model.TotalForecast,
		TotalActual:   model.TotalActual,
		Notes:         model.Notes,
	}
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`  // List of resources
	Error *string  `json:"error"` // The error, if any occurred
}

type BudgetGenerate struct {
	Budget     Budget     `json:"budget"`     // The generated budget
	Allocation Allocation `json:"allocation"` // The recomputed actual allocation
}

type BudgetGenerateResponse struct {
	Error *string         `json:"error"` // The error, if any occurred
	Data  *BudgetGenerate `json:"data"`  // The resource
}
