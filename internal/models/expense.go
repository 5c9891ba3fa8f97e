package models

import (
	"strings"
	"time"

	"github.com/condoboard/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is an actual cost incurred by a building.
//
// The table determines which ownership-share schedule the expense is
// split by, the policy determines how each unit's slice is divided
// between owners and tenants.
type Expense struct {
	Model
	BuildingID  uint64   `gorm:"index"`
	Building    Building `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Description string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date        time.Time
	Table       types.Table  `gorm:"column:table_code" json:"table"`
	Policy      types.Policy `json:"policy"`
	// OwnerPct and TenantPct are only used with the custom policy.
	OwnerPct  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	TenantPct decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return validateAllocationRule(e.Amount, e.Table, e.Policy, e.OwnerPct, e.TenantPct)
}

// BeforeUpdate validates the state the expense will have after the
// update, not only the changed fields. A policy change to "custom" has
// to be checked together with the percentages, changed or not.
func (e *Expense) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(Expense)
	if !ok {
		return nil
	}

	merged := *e
	if tx.Statement.Changed("Amount") {
		merged.Amount = toSave.Amount
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

	return validateAllocationRule(merged.Amount, merged.Table, merged.Policy, merged.OwnerPct, merged.TenantPct)
}

// validateAllocationRule checks the fields shared between actual and
// forecast expenses.
func validateAllocationRule(amount decimal.Decimal, table types.Table, policy types.Policy, ownerPct, tenantPct decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrExpenseAmountNotPositive
	}

	if !table.Valid() {
		return ErrTableInvalid
	}

	if !policy.Valid() {
		return ErrPolicyInvalid
	}

	if policy == types.PolicyCustom {
		hundred := decimal.NewFromInt(100)

		if ownerPct.IsNegative() || tenantPct.IsNegative() || ownerPct.GreaterThan(hundred) || tenantPct.GreaterThan(hundred) || !ownerPct.Add(tenantPct).Equal(hundred) {
			return ErrCustomPercentagesInvalid
		}
	}

	return nil
}
