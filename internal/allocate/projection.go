package allocate

import (
	"github.com/condoboard/backend/internal/types"
	"github.com/shopspring/decimal"
)

// TableAmount is the amount a resident owes for one share table.
type TableAmount struct {
	Table  types.Table
	Amount decimal.Decimal
}

// PersonProjection aggregates a resident's projected amounts across all
// tables.
type PersonProjection struct {
	Resident Resident
	Total    decimal.Decimal
	Tables   []TableAmount
}

// TableProjection is the projected total for a single share table with its
// per-resident split.
type TableProjection struct {
	Table   types.Table
	Total   decimal.Decimal
	Persons []PersonAmount
}

// PersonAmount is one resident's amount within a table projection.
type PersonAmount struct {
	Resident Resident
	Amount   decimal.Decimal
}

// ProjectionSummary aggregates the projection by role. A resident with the
// combined role counts toward both the owner and the tenant side.
type ProjectionSummary struct {
	OwnerTotal       decimal.Decimal
	TenantTotal      decimal.Decimal
	GrandTotal       decimal.Decimal
	OwnerCount       int
	TenantCount      int
	AveragePerOwner  decimal.Decimal
	AveragePerTenant decimal.Decimal
}

// Projection is the next-year projection report. It is derived state only
// and never persisted.
type Projection struct {
	PerPerson []PersonProjection
	PerTable  []TableProjection
	Summary   ProjectionSummary
}

// Project runs the engine once per share table and aggregates the outcome
// into a per-person and per-table report.
//
// Only residents with a nonzero projected amount appear, both in the table
// splits and in the per-person list. The per-person list keeps the engine's
// resident order; table breakdowns follow the fixed table code order.
func Project(residents []Resident, shares ShareTables, expenses []Expense) Projection {
	perTable := make([]TableProjection, 0)
	ordered := sortResidents(residents)

	// amounts[residentID][table]
	amounts := make(map[uint64]map[types.Table]decimal.Decimal)

	for _, table := range types.Tables {
		tableExpenses := make([]Expense, 0)
		for _, e := range expenses {
			if e.Table == table {
				tableExpenses = append(tableExpenses, e)
			}
		}
		if len(tableExpenses) == 0 {
			continue
		}

		result := Allocate(residents, shares, tableExpenses)

		projection := TableProjection{Table: table}
		for _, r := range ordered {
			amount := result.Totals[r.ID]
			if !amount.IsPositive() {
				continue
			}

			projection.Total = projection.Total.Add(amount)
			projection.Persons = append(projection.Persons, PersonAmount{
				Resident: r,
				Amount:   amount,
			})

			if amounts[r.ID] == nil {
				amounts[r.ID] = make(map[types.Table]decimal.Decimal)
			}
			amounts[r.ID][table] = amount
		}

		perTable = append(perTable, projection)
	}

	perPerson := make([]PersonProjection, 0)
	summary := ProjectionSummary{}

	for _, r := range ordered {
		byTable, ok := amounts[r.ID]
		if !ok {
			continue
		}

		person := PersonProjection{Resident: r}
		for _, table := range types.Tables {
			amount, ok := byTable[table]
			if !ok {
				continue
			}

			person.Total = person.Total.Add(amount)
			person.Tables = append(person.Tables, TableAmount{Table: table, Amount: amount})
		}

		perPerson = append(perPerson, person)

		summary.GrandTotal = summary.GrandTotal.Add(person.Total)
		if r.Role.PaysAsOwner() {
			summary.OwnerTotal = summary.OwnerTotal.Add(person.Total)
			summary.OwnerCount++
		}
		if r.Role.PaysAsTenant() {
			summary.TenantTotal = summary.TenantTotal.Add(person.Total)
			summary.TenantCount++
		}
	}

	if summary.OwnerCount > 0 {
		summary.AveragePerOwner = summary.OwnerTotal.Div(decimal.NewFromInt(int64(summary.OwnerCount)))
	}
	if summary.TenantCount > 0 {
		summary.AveragePerTenant = summary.TenantTotal.Div(decimal.NewFromInt(int64(summary.TenantCount)))
	}

	return Projection{
		PerPerson: perPerson,
		PerTable:  perTable,
		Summary:   summary,
	}
}
