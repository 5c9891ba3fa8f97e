package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AnnualBudget groups a building's forecast expenses for one year.
//
// TotalForecast is kept in sync with the budget's forecast expenses by
// their hooks, TotalActual is set when a budget is generated from the
// current year's actual expenses.
type AnnualBudget struct {
	Model
	BuildingID    uint64   `gorm:"uniqueIndex:budget_building_year"`
	Building      Building `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Year          uint     `gorm:"uniqueIndex:budget_building_year"`
	TotalForecast decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	TotalActual   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Notes         string
}

func (b *AnnualBudget) BeforeSave(_ *gorm.DB) error {
	b.Notes = strings.TrimSpace(b.Notes)

	if b.Year < 1900 {
		return ErrBudgetYearInvalid
	}

	return nil
}

// BudgetForYear returns the building's budget for the year, creating an
// empty one when none exists yet.
func BudgetForYear(db *gorm.DB, building Building, year uint) (AnnualBudget, error) {
	var budget AnnualBudget
	err := db.Where(&AnnualBudget{BuildingID: building.ID, Year: year}).First(&budget).Error
	if err == nil {
		return budget, nil
	}

	if !errors.Is(err, ErrResourceNotFound) {
		return AnnualBudget{}, err
	}

	budget = AnnualBudget{
		BuildingID: building.ID,
		Year:       year,
	}
	err = db.Create(&budget).Error
	if err != nil {
		return AnnualBudget{}, err
	}

	return budget, nil
}

// GenerateBudget creates the building's budget for the given year from
// the current year's actual expenses and recomputes the actual
// allocation for the detail mapping.
func GenerateBudget(db *gorm.DB, building Building, year uint) (AnnualBudget, map[uint64]decimal.Decimal, error) {
	var budget AnnualBudget
	var totals map[uint64]decimal.Decimal

	err := db.Transaction(func(tx *gorm.DB) error {
		currentYear := uint(time.Now().In(time.UTC).Year())
		start := time.Date(int(currentYear), 1, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(1, 0, 0)

		var expenses []Expense
		err := tx.Where(&Expense{BuildingID: building.ID}).Where("date >= ? AND date < ?", start, end).Find(&expenses).Error
		if err != nil {
			return err
		}

		total := decimal.Zero
		for _, expense := range expenses {
			total = total.Add(expense.Amount)
		}

		budget = AnnualBudget{
			BuildingID:  building.ID,
			Year:        year,
			TotalActual: total,
		}
		err = tx.Create(&budget).Error
		if err != nil {
			return err
		}

		totals, err = RecomputeAllocation(tx, building)
		return err
	})
	if err != nil {
		return AnnualBudget{}, nil, err
	}

	return budget, totals, nil
}

// updateTotalForecast recalculates the budget total from its forecast
// expenses.
func (b *AnnualBudget) updateTotalForecast(tx *gorm.DB) error {
	var expenses []ForecastExpense
	err := tx.Where(&ForecastExpense{BudgetID: b.ID}).Find(&expenses).Error
	if err != nil {
		return err
	}

	total := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(expense.ExpectedAmount)
	}

	return tx.Model(b).Select("TotalForecast").Updates(AnnualBudget{TotalForecast: total}).Error
}
