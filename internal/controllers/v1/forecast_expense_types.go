package v1

import (
	"github.com/condoboard/backend/internal/models"
	"github.com/condoboard/backend/internal/types"
	"github.com/shopspring/decimal"
)

type ForecastExpenseEditable struct {
	Year           uint            `json:"year" example:"2027"`                    // Budget year, defaults to the next calendar year. Ignored on updates.
	Description    string          `json:"description" example:"Manutenzione ascensore" default:""`
	Month          uint8           `json:"month" example:"6" minimum:"0" maximum:"12"` // Month of the expense, 0 when not tied to a month
	ExpectedAmount decimal.Decimal `json:"expectedAmount" example:"900.00"`            // Expected amount, has to be positive
	Table          types.Table     `json:"table" example:"C"`                          // Share table the expense is split by
	Policy         types.Policy    `json:"policy" example:"owner"`                     // One of "owner", "tenant", "50/50", "custom"
	OwnerPct       decimal.Decimal `json:"ownerPct" example:"70"`                      // Owner percentage, only used with the custom policy
	TenantPct      decimal.Decimal `json:"tenantPct" example:"30"`                     // Tenant percentage, only used with the custom policy
}

// model returns the database resource for the API representation of the editable fields
func (editable ForecastExpenseEditable) model() models.ForecastExpense {
	return models.ForecastExpense{
		Description:    editable.Description,
		Month:          editable.Month,
		ExpectedAmount: editable.ExpectedAmount,
		Table:          editable.Table,
		Policy:         editable.Policy,
		OwnerPct:       editable.OwnerPct,
		TenantPct:      editable.TenantPct,
	}
}

type ForecastExpense struct {
	models.Model
	ForecastExpenseEditable
	BuildingID uint64 `json:"buildingId" example:"17"`
	BudgetID   uint64 `json:"budgetId" example:"3"`
}

// newForecastExpense returns the API representation of the resource
func newForecastExpense(model models.ForecastExpense, year uint) ForecastExpense {
	return ForecastExpense{
		Model: model.Model,
		ForecastExpenseEditable: ForecastExpenseEditable{
			Year:           year,
			Description:    model.Description,
			Month:          model.Month,
			ExpectedAmount: model.ExpectedAmount,
			Table:          model.Table,
			Policy:         model.Policy,
			OwnerPct:       model.OwnerPct,
			TenantPct:      model.TenantPct,
		},
		BuildingID: model.BuildingID,
		BudgetID:   model.BudgetID,
	}
}

type ForecastExpenseListResponse struct {
	Data  []ForecastExpense `json:"data"`  // List of resources
	Error *string           `json:"error"` // The error, if any occurred
}

type ForecastExpenseResponse struct {
	Error *string          `json:"error"` // The error, if any occurred
	Data  *ForecastExpense `json:"data"`  // The resource
}

type ForecastExpenseQueryFilter struct {
	Year uint `form:"year"` // Only forecast expenses of this budget year
}
