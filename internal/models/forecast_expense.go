package models

import (
	"strings"

	"github.com/condoboard/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ForecastExpense is a planned cost within an annual budget. It carries
// the same allocation rule as an actual expense so that the forecast
// allocation can run the same engine.
type ForecastExpense struct {
	Model
	BudgetID    uint64       `gorm:"index"`
	Budget      AnnualBudget `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	BuildingID  uint64       `gorm:"index"`
	Building    Building     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Description string
	// Month is optional. 0 means the expense is not tied to a month.
	Month          uint8
	ExpectedAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Table          types.Table     `gorm:"column:table_code" json:"table"`
	Policy         types.Policy    `json:"policy"`
	OwnerPct       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	TenantPct      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (f *ForecastExpense) BeforeSave(_ *gorm.DB) error {
	f.Description = strings.TrimSpace(f.Description)

	if f.Month > 12 {
		return ErrForecastMonthInvalid
	}

	return validateAllocationRule(f.ExpectedAmount, f.Table, f.Policy, f.OwnerPct, f.TenantPct)
}

// BeforeUpdate validates the state the forecast expense will have after
// the update, see Expense.BeforeUpdate.
func (f *ForecastExpense) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(ForecastExpense)
	if !ok {
		return nil
	}

	merged := *f
	if tx.Statement.Changed("Month") {
		merged.Month = toSave.Month
	}
	if tx.Statement.Changed("ExpectedAmount") {
		merged.ExpectedAmount = toSave.ExpectedAmount
	}
	if tx.Statement.Changed("Table") {
		merged.Table = toSave.Table
	}
	if tx.Statement.Changed("Policy") {
		merged.Policy = toSave.Policy
	}
	if tx.Statement.Changed("OwnerPct") {
		merged.OwnerPct = toSave.OwnerPct
	}
	if tx.Statement.Changed("TenantPct") {
		merged.TenantPct = toSave.TenantPct
	}

	if merged.Month > 12 {
		return ErrForecastMonthInvalid
	}

	return validateAllocationRule(merged.ExpectedAmount, merged.Table, merged.Policy, merged.OwnerPct, merged.TenantPct)
}

func (f *ForecastExpense) AfterSave(tx *gorm.DB) error {
	return f.syncBudgetTotal(tx)
}

func (f *ForecastExpense) AfterDelete(tx *gorm.DB) error {
	return f.syncBudgetTotal(tx)
}

func (f *ForecastExpense) syncBudgetTotal(tx *gorm.DB) error {
	var budget AnnualBudget
	err := tx.First(&budget, f.BudgetID).Error
	if err != nil {
		return err
	}

	return budget.updateTotalForecast(tx)
}
