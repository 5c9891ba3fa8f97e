package v1

import (
	"github.com/condoboard/backend/internal/allocate"
	"github.com/condoboard/backend/internal/types"
	"github.com/shopspring/decimal"
)

type ProjectionPersonRef struct {
	ResidentID uint64     `json:"residentId" example:"9"`
	FirstName  string     `json:"firstName" example:"Maria"`
	LastName   string     `json:"lastName" example:"Rossi"`
	UnitNumber uint       `json:"unitNumber" example:"3"`
	Role       types.Role `json:"role" example:"owner"`
}

func newProjectionPersonRef(r allocate.Resident) ProjectionPersonRef {
	return ProjectionPersonRef{
		ResidentID: r.ID,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		UnitNumber: r.UnitNumber,
		Role:       r.Role,
	}
}

type ProjectionTableAmount struct {
	Table  types.Table     `json:"table" example:"A"`
	Amount decimal.Decimal `json:"amount" example:"412.50"`
}

type ProjectionPerson struct {
	ProjectionPersonRef
	Total  decimal.Decimal         `json:"total" example:"812.50"`
	Tables []ProjectionTableAmount `json:"tables"` // Per-table breakdown
}

type ProjectionTablePerson struct {
	ProjectionPersonRef
	Amount decimal.Decimal `json:"amount" example:"412.50"`
}

type ProjectionTable struct {
	Table   types.Table             `json:"table" example:"A"`
	Total   decimal.Decimal         `json:"total" example:"1000.00"`
	Persons []ProjectionTablePerson `json:"persons"`
}

type ProjectionSummary struct {
	OwnerTotal       decimal.Decimal `json:"ownerTotal" example:"1100.00"`      // Total paid by owners, combined roles included
	TenantTotal      decimal.Decimal `json:"tenantTotal" example:"600.00"`      // Total paid by tenants, combined roles included
	GrandTotal       decimal.Decimal `json:"grandTotal" example:"1200.00"`
	OwnerCount       int             `json:"ownerCount" example:"2"`
	TenantCount      int             `json:"tenantCount" example:"2"`
	AveragePerOwner  decimal.Decimal `json:"averagePerOwner" example:"550.00"`
	AveragePerTenant decimal.Decimal `json:"averagePerTenant" example:"300.00"`
}

type Projection struct {
	ReferenceYear uint               `json:"referenceYear" example:"2026"` // Year the projection is based on
	PerPerson     []ProjectionPerson `json:"perPerson"`
	PerTable      []ProjectionTable  `json:"perTable"`
	Summary       ProjectionSummary  `json:"summary"`
}

// newProjection returns the API representation of the report. Amounts
// are rounded to cents here, the engine keeps full precision.
func newProjection(referenceYear uint, projection allocate.Projection) Projection {
	data := Projection{
		ReferenceYear: referenceYear,
		PerPerson:     make([]ProjectionPerson, 0, len(projection.PerPerson)),
		PerTable:      make([]ProjectionTable, 0, len(projection.PerTable)),
		Summary: ProjectionSummary{
			OwnerTotal:       projection.Summary.OwnerTotal.Round(2),
			TenantTotal:      projection.Summary.TenantTotal.Round(2),
			GrandTotal:       projection.Summary.GrandTotal.Round(2),
			OwnerCount:       projection.Summary.OwnerCount,
			TenantCount:      projection.Summary.TenantCount,
			AveragePerOwner:  projection.Summary.AveragePerOwner.Round(2),
			AveragePerTenant: projection.Summary.AveragePerTenant.Round(2),
		},
	}

	for _, person := range projection.PerPerson {
		p := ProjectionPerson{
			ProjectionPersonRef: newProjectionPersonRef(person.Resident),
			Total:               person.Total.Round(2),
			Tables:              make([]ProjectionTableAmount, 0, len(person.Tables)),
		}
		for _, table := range person.Tables {
			p.Tables = append(p.Tables, ProjectionTableAmount{
				Table:  table.Table,
				Amount: table.Amount.Round(2),
			})
		}
		data.PerPerson = append(data.PerPerson, p)
	}

	for _, table := range projection.PerTable {
		t := ProjectionTable{
			Table:   table.Table,
			Total:   table.Total.Round(2),
			Persons: make([]ProjectionTablePerson, 0, len(table.Persons)),
		}
		for _, person := range table.Persons {
			t.Persons = append(t.Persons, ProjectionTablePerson{
				ProjectionPersonRef: newProjectionPersonRef(person.Resident),
				Amount:              person.Amount.Round(2),
			})
		}
		data.PerTable = append(data.PerTable, t)
	}

	return data
}

type ProjectionResponse struct {
	Error *string     `json:"error"` // The error, if any occurred
	Data  *Projection `json:"data"`  // The report
}

type ProjectionQueryFilter struct {
	ReferenceYear uint `form:"referenceYear"` // Reference year, defaults to the current year
}

type SummaryLine struct {
	ResidentID uint64          `json:"residentId" example:"9"`
	Name       string          `json:"name" example:"Maria Rossi"`
	Role       types.Role      `json:"role" example:"owner"`
	Amount     decimal.Decimal `json:"amount" example:"412.50"`
	Formatted  string          `json:"formatted" example:"€ 412,50"` // Amount in the Italian number format
}

type Summary struct {
	BuildingName   string          `json:"buildingName" example:"Condominio Aurora"`
	Address        string          `json:"address" example:"Via Roma 12, Torino"`
	Lines          []SummaryLine   `json:"lines"`
	Total          decimal.Decimal `json:"total" example:"1200.00"`
	TotalFormatted string          `json:"totalFormatted" example:"€ 1.200,00"`
}

type SummaryResponse struct {
	Error *string  `json:"error"` // The error, if any occurred
	Data  *Summary `json:"data"`  // The report
}
