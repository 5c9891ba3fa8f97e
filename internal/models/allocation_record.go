package models

import (
	"github.com/shopspring/decimal"
)

// AllocationRecord is one resident's share of one actual expense. The
// records for a building are wiped and regenerated as a whole on every
// recompute, they are never edited individually.
type AllocationRecord struct {
	Model
	BuildingID uint64   `gorm:"index"`
	Building   Building `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ResidentID uint64   `gorm:"index"`
	Resident   Resident `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ExpenseID  uint64   `gorm:"index"`
	Expense    Expense  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Year       uint
}

// ForecastAllocationRecord is one resident's total across all forecast
// expenses of a budget. Unlike actual allocation there is exactly one
// record per resident, zero amounts included.
type ForecastAllocationRecord struct {
	Model
	BuildingID uint64       `gorm:"index"`
	Building   Building     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	BudgetID   uint64       `gorm:"uniqueIndex:forecast_budget_resident"`
	Budget     AnnualBudget `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ResidentID uint64       `gorm:"uniqueIndex:forecast_budget_resident"`
	Resident   Resident     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Year       uint
}
