package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

// ExportBuilding returns all stored data of one building as raw JSON,
// keyed by model name. The export contains every share table, the
// budgets with their forecast expenses and the generated allocation
// records.
func ExportBuilding(db *gorm.DB, building Building) (map[string]json.RawMessage, error) {
	data := make(map[string]json.RawMessage)

	marshal := func(key string, resources any) error {
		raw, err := json.Marshal(resources)
		if err != nil {
			return err
		}
		data[key] = raw
		return nil
	}

	if err := marshal("Building", building); err != nil {
		return nil, err
	}

	var units []Unit
	if err := db.Where(&Unit{BuildingID: building.ID}).Order("number ASC").Find(&units).Error; err != nil {
		return nil, err
	}
	if err := marshal("Unit", units); err != nil {
		return nil, err
	}

	var residents []Resident
	if err := db.Where(&Resident{BuildingID: building.ID}).Find(&residents).Error; err != nil {
		return nil, err
	}
	if err := marshal("Resident", residents); err != nil {
		return nil, err
	}

	var shares []ShareEntry
	if err := db.Where(&ShareEntry{BuildingID: building.ID}).Order("table_code ASC, unit_id ASC").Find(&shares).Error; err != nil {
		return nil, err
	}
	if err := marshal("ShareEntry", shares); err != nil {
		return nil, err
	}

	var expenses []Expense
	if err := db.Where(&Expense{BuildingID: building.ID}).Order("date ASC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	if err := marshal("Expense", expenses); err != nil {
		return nil, err
	}

	var budgets []AnnualBudget
	if err := db.Where(&AnnualBudget{BuildingID: building.ID}).Order("year ASC").Find(&budgets).Error; err != nil {
		return nil, err
	}
	if err := marshal("AnnualBudget", budgets); err != nil {
		return nil, err
	}

	var forecastExpenses []ForecastExpense
	if err := db.Where(&ForecastExpense{BuildingID: building.ID}).Find(&forecastExpenses).Error; err != nil {
		return nil, err
	}
	if err := marshal("ForecastExpense", forecastExpenses); err != nil {
		return nil, err
	}

	var records []AllocationRecord
	if err := db.Where(&AllocationRecord{BuildingID: building.ID}).Find(&records).Error; err != nil {
		return nil, err
	}
	if err := marshal("AllocationRecord", records); err != nil {
		return nil, err
	}

	var forecastRecords []ForecastAllocationRecord
	if err := db.Where(&ForecastAllocationRecord{BuildingID: building.ID}).Find(&forecastRecords).Error; err != nil {
		return nil, err
	}
	if err := marshal("ForecastAllocationRecord", forecastRecords); err != nil {
		return nil, err
	}

	return data, nil
}
