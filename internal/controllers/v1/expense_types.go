package v1

import (
	"time"

	"github.com/condoboard/backend/internal/models"
	"github.com/condoboard/backend/internal/types"
	"github.com/shopspring/decimal"
)

type ExpenseEditable struct {
	Description string          `json:"description" example:"Pulizia scale" default:""`
	Amount      decimal.Decimal `json:"amount" example:"1200.50" minimum:"0.00000001" multipleOf:"0.00000001"` // Amount of the expense, has to be positive
	Date        time.Time       `json:"date" example:"2026-03-15T00:00:00Z"`                                   // Date of the expense, defaults to now
	Table       types.Table     `json:"table" example:"A"`                                                     // Share table the expense is split by
	Policy      types.Policy    `json:"policy" example:"50/50"`                                                // One of "owner", "tenant", "50/50", "custom"
	OwnerPct    decimal.Decimal `json:"ownerPct" example:"70"`                                                 // Owner percentage, only used with the custom policy
	TenantPct   decimal.Decimal `json:"tenantPct" example:"30"`                                                // Tenant percentage, only used with the custom policy
}

// model returns the database resource for the API representation of the editable fields
func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Description: editable.Description,
		Amount:      editable.Amount,
		Date:        editable.Date,
		Table:       editable.Table,
		Policy:      editable.Policy,
		OwnerPct:    editable.OwnerPct,
		TenantPct:   editable.TenantPct,
	}
}

type Expense struct {
	models.Model
	ExpenseEditable
	BuildingID uint64 `json:"buildingId" example:"17"`
}

// newExpense returns the API representation of the resource
func newExpense(model models.Expense) Expense {
	return Expense{
		Model: model.Model,
		ExpenseEditable: ExpenseEditable{
			Description: model.Description,
			Amount:      model.Amount,
			Date:        model.Date,
			Table:       model.Table,
			Policy:      model.Policy,
			OwnerPct:    model.OwnerPct,
			TenantPct:   model.TenantPct,
		},
		BuildingID: model.BuildingID,
	}
}

type ExpenseListResponse struct {
	Data  []Expense `json:"data"`  // List of resources
	Error *string   `json:"error"` // The error, if any occurred
}

type ExpenseResponse struct {
	Error *string  `json:"error"` // The error, if any occurred
	Data  *Expense `json:"data"`  // The resource
}

type ExpenseQueryFilter struct {
	Table  string `form:"table"`  // By share table
	Policy string `form:"policy"` // By allocation policy
	Year   uint   `form:"year"`   // Expenses dated in this year
}
