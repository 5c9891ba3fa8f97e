package models

import (
	"errors"
	"time"

	"github.com/condoboard/backend/internal/allocate"
	"github.com/condoboard/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// engineInputs loads a building's residents and share tables in the
// form the allocation engine works on.
func engineInputs(db *gorm.DB, buildingID uint64) ([]allocate.Resident, allocate.ShareTables, error) {
	var units []Unit
	err := db.Where(&Unit{BuildingID: buildingID}).Find(&units).Error
	if err != nil {
		return nil, nil, err
	}

	numbers := make(map[uint64]uint, len(units))
	for _, unit := range units {
		numbers[unit.ID] = unit.Number
	}

	var residents []Resident
	err = db.Where(&Resident{BuildingID: buildingID}).Find(&residents).Error
	if err != nil {
		return nil, nil, err
	}

	engineResidents := make([]allocate.Resident, 0, len(residents))
	for _, resident := range residents {
		engineResidents = append(engineResidents, allocate.Resident{
			ID:         resident.ID,
			UnitID:     resident.UnitID,
			UnitNumber: numbers[resident.UnitID],
			FirstName:  resident.FirstName,
			LastName:   resident.LastName,
			Role:       resident.Role,
		})
	}

	var entries []ShareEntry
	err = db.Where(&ShareEntry{BuildingID: buildingID}).Find(&entries).Error
	if err != nil {
		return nil, nil, err
	}

	tables := make(allocate.ShareTables)
	for _, entry := range entries {
		shares, ok := tables[entry.Table]
		if !ok {
			shares = make(allocate.Shares)
			tables[entry.Table] = shares
		}
		shares[entry.UnitID] = entry.Value
	}

	return engineResidents, tables, nil
}

func (e Expense) engineExpense() allocate.Expense {
	return allocate.Expense{
		ID:        e.ID,
		Amount:    e.Amount,
		Table:     e.Table,
		Policy:    e.Policy,
		OwnerPct:  e.OwnerPct,
		TenantPct: e.TenantPct,
	}
}

func (f ForecastExpense) engineExpense() allocate.Expense {
	return allocate.Expense{
		ID:        f.ID,
		Amount:    f.ExpectedAmount,
		Table:     f.Table,
		Policy:    f.Policy,
		OwnerPct:  f.OwnerPct,
		TenantPct: f.TenantPct,
	}
}

// RecomputeAllocation deletes and regenerates all allocation records of
// the building from its current expenses.
//
// One record is written per resident and expense with a nonzero amount.
// Residents whose unit has no share for an expense's table get no
// record for that expense. The returned map holds the per-resident
// totals, rounded to cents, for every resident of the building.
func RecomputeAllocation(db *gorm.DB, building Building) (map[uint64]decimal.Decimal, error) {
	totals := make(map[uint64]decimal.Decimal)

	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where(&AllocationRecord{BuildingID: building.ID}).Delete(&AllocationRecord{}).Error
		if err != nil {
			return err
		}

		residents, tables, err := engineInputs(tx, building.ID)
		if err != nil {
			return err
		}

		var expenses []Expense
		err = tx.Where(&Expense{BuildingID: building.ID}).Find(&expenses).Error
		if err != nil {
			return err
		}

		engineExpenses := make([]allocate.Expense, 0, len(expenses))
		for _, expense := range expenses {
			engineExpenses = append(engineExpenses, expense.engineExpense())
		}

		result := allocate.Allocate(residents, tables, engineExpenses)

		year := uint(time.Now().In(time.UTC).Year())
		records := make([]AllocationRecord, 0, len(result.Lines))
		for _, line := range result.Lines {
			records = append(records, AllocationRecord{
				BuildingID: building.ID,
				ResidentID: line.ResidentID,
				ExpenseID:  line.ExpenseID,
				Amount:     line.Amount.Round(2),
				Year:       year,
			})
		}

		if len(records) > 0 {
			err = tx.Create(&records).Error
			if err != nil {
				return err
			}
		}

		for id, total := range result.Totals {
			totals[id] = total.Round(2)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return totals, nil
}

// RecomputeForecastAllocation deletes and regenerates the forecast
// allocation records of the building's budget for the given year.
//
// Unlike RecomputeAllocation, exactly one record is written per
// resident, holding their total across all of the budget's forecast
// expenses. Zero totals are persisted too. With a table filter only
// forecast expenses of that table contribute, but the budget's records
// are still replaced as a whole.
func RecomputeForecastAllocation(db *gorm.DB, building Building, year uint, table types.Table) (map[uint64]decimal.Decimal, decimal.Decimal, error) {
	totals := make(map[uint64]decimal.Decimal)
	grandTotal := decimal.Zero

	err := db.Transaction(func(tx *gorm.DB) error {
		var budget AnnualBudget
		err := tx.Where(&AnnualBudget{BuildingID: building.ID, Year: year}).First(&budget).Error
		if err != nil {
			return err
		}

		err = tx.Where(&ForecastAllocationRecord{BudgetID: budget.ID}).Delete(&ForecastAllocationRecord{}).Error
		if err != nil {
			return err
		}

		residents, tables, err := engineInputs(tx, building.ID)
		if err != nil {
			return err
		}

		var expenses []ForecastExpense
		query := tx.Where(&ForecastExpense{BudgetID: budget.ID})
		if table != "" {
			query = query.Where("table_code = ?", table)
		}
		err = query.Find(&expenses).Error
		if err != nil {
			return err
		}

		engineExpenses := make([]allocate.Expense, 0, len(expenses))
		for _, expense := range expenses {
			engineExpenses = append(engineExpenses, expense.engineExpense())
		}

		result := allocate.Allocate(residents, tables, engineExpenses)

		records := make([]ForecastAllocationRecord, 0, len(residents))
		for _, resident := range residents {
			total := result.Totals[resident.ID].Round(2)
			totals[resident.ID] = total
			grandTotal = grandTotal.Add(total)

			records = append(records, ForecastAllocationRecord{
				BuildingID: building.ID,
				BudgetID:   budget.ID,
				ResidentID: resident.ID,
				Amount:     total,
				Year:       budget.Year,
			})
		}

		if len(records) > 0 {
			err = tx.Create(&records).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, decimal.Zero, err
	}

	return totals, grandTotal, nil
}

// ProjectNextYear builds the next-year projection report for the
// building.
//
// The projection prefers the forecast expenses of the reference year's
// budget. When the reference year has no budget or the budget has no
// forecast expenses, the actual expenses dated in the reference year
// are used instead. Nothing is persisted.
func ProjectNextYear(db *gorm.DB, building Building, referenceYear uint) (allocate.Projection, error) {
	residents, tables, err := engineInputs(db, building.ID)
	if err != nil {
		return allocate.Projection{}, err
	}

	engineExpenses, err := projectionExpenses(db, building, referenceYear)
	if err != nil {
		return allocate.Projection{}, err
	}

	return allocate.Project(residents, tables, engineExpenses), nil
}

func projectionExpenses(db *gorm.DB, building Building, referenceYear uint) ([]allocate.Expense, error) {
	var budget AnnualBudget
	err := db.Where(&AnnualBudget{BuildingID: building.ID, Year: referenceYear}).First(&budget).Error
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		return nil, err
	}

	if err == nil {
		var forecast []ForecastExpense
		err = db.Where(&ForecastExpense{BudgetID: budget.ID}).Find(&forecast).Error
		if err != nil {
			return nil, err
		}

		if len(forecast) > 0 {
			engineExpenses := make([]allocate.Expense, 0, len(forecast))
			for _, expense := range forecast {
				engineExpenses = append(engineExpenses, expense.engineExpense())
			}

			return engineExpenses, nil
		}
	}

	start := time.Date(int(referenceYear), 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	var expenses []Expense
	err = db.Where(&Expense{BuildingID: building.ID}).Where("date >= ? AND date < ?", start, end).Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	engineExpenses := make([]allocate.Expense, 0, len(expenses))
	for _, expense := range expenses {
		engineExpenses = append(engineExpenses, expense.engineExpense())
	}

	return engineExpenses, nil
}
