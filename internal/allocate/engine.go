// Package allocate implements the expense allocation engine.
//
// The engine is a pure computation over explicit inputs: it performs no I/O
// and knows nothing about the database. Callers load residents, share tables
// and expenses, then persist the result however they need to.
package allocate

import (
	"sort"

	"github.com/condoboard/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Resident is one participant in the allocation.
type Resident struct {
	ID         uint64
	UnitID     uint64
	UnitNumber uint
	FirstName  string
	LastName   string
	Role       types.Role
}

// Shares maps a unit ID to the value one table assigns to it.
type Shares map[uint64]int64

// ShareTables holds the share values of a building, keyed by table code.
type ShareTables map[types.Table]Shares

// Expense is one cost to split. Amount is the full expense amount; for
// forecast expenses it is the expected amount.
type Expense struct {
	ID       uint64
	Amount   decimal.Decimal
	Table    types.Table
	Policy   types.Policy
	OwnerPct decimal.Decimal
	TenantPct decimal.Decimal
}

// Line is the amount one resident owes for one expense.
type Line struct {
	ResidentID uint64
	ExpenseID  uint64
	Amount     decimal.Decimal
}

// Result is the outcome of an allocation run.
//
// Totals has an entry for every resident passed in, zero included, so that
// callers persisting one row per resident do not need to special-case
// residents that were skipped. Lines only contains nonzero amounts.
type Result struct {
	Lines  []Line
	Totals map[uint64]decimal.Decimal
}

// GrandTotal returns the sum of all per-resident totals.
func (r Result) GrandTotal() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range r.Totals {
		total = total.Add(amount)
	}

	return total
}

// unitRoles tracks which roles are present in a unit and how many residents
// hold each pure role. Residents with the combined role register both roles
// as present, but are counted separately and never divided.
type unitRoles struct {
	hasOwner  bool
	hasTenant bool
	owners    int
	tenants   int
	combined  int
}

// Allocate splits every expense across the residents according to the
// expense's share table and policy.
//
// Residents whose unit has no share value for an expense's table do not take
// part in that expense at all. Iteration order is fixed (unit number, last
// name, first name, ID) so that accumulation is deterministic.
//
// Amounts are accumulated at full precision; rounding is left to the caller.
func Allocate(residents []Resident, shares ShareTables, expenses []Expense) Result {
	ordered := sortResidents(residents)

	result := Result{
		Totals: make(map[uint64]decimal.Decimal, len(residents)),
	}
	for _, r := range residents {
		result.Totals[r.ID] = decimal.Zero
	}

	for _, expense := range expenses {
		tableShares := shares[expense.Table]

		roles := make(map[uint64]*unitRoles)
		for _, r := range ordered {
			if !qualifies(r, tableShares) {
				continue
			}

			u, ok := roles[r.UnitID]
			if !ok {
				u = &unitRoles{}
				roles[r.UnitID] = u
			}

			switch r.Role {
			case types.RoleOwnerTenant:
				u.hasOwner = true
				u.hasTenant = true
				u.combined++
			case types.RoleOwner:
				u.hasOwner = true
				u.owners++
			case types.RoleTenant:
				u.hasTenant = true
				u.tenants++
			}
		}

		for _, r := range ordered {
			if !qualifies(r, tableShares) {
				continue
			}

			pct := percentage(expense, r.Role, roles[r.UnitID])
			if pct.IsZero() {
				continue
			}

			// owed = amount × share × pct / 100 / 1000, split equally
			// among residents sharing the same pure role in the unit
			owed := expense.Amount.
				Mul(decimal.NewFromInt(tableShares[r.UnitID])).
				Mul(pct).
				Div(decimal.NewFromInt(100)).
				Div(decimal.NewFromInt(1000)).
				Div(decimal.NewFromInt(divisor(r.Role, roles[r.UnitID])))

			result.Lines = append(result.Lines, Line{
				ResidentID: r.ID,
				ExpenseID:  expense.ID,
				Amount:     owed,
			})
			result.Totals[r.ID] = result.Totals[r.ID].Add(owed)
		}
	}

	return result
}

// qualifies reports whether a resident takes part in an allocation over the
// given table shares. A missing or zero share excludes the unit.
func qualifies(r Resident, tableShares Shares) bool {
	return tableShares[r.UnitID] != 0
}

// percentage computes the share of an expense a role bears under the
// expense's policy. For the custom policy the stored percentages are trusted
// as-is; validation happened when the expense was written.
func percentage(expense Expense, role types.Role, unit *unitRoles) decimal.Decimal {
	switch expense.Policy {
	case types.PolicyOwner:
		if role.PaysAsOwner() {
			return decimal.NewFromInt(100)
		}
		return decimal.Zero

	case types.PolicyTenant:
		if role.PaysAsTenant() {
			return decimal.NewFromInt(100)
		}
		return decimal.Zero

	case types.PolicyFiftyFifty:
		if role == types.RoleOwnerTenant {
			return decimal.NewFromInt(100)
		}
		// With both roles present in the unit each side bears half;
		// a lone role covers the full amount.
		if unit != nil && unit.hasOwner && unit.hasTenant {
			return decimal.NewFromInt(50)
		}
		return decimal.NewFromInt(100)

	case types.PolicyCustom:
		switch role {
		case types.RoleOwnerTenant:
			return expense.OwnerPct.Add(expense.TenantPct)
		case types.RoleOwner:
			return expense.OwnerPct
		default:
			return expense.TenantPct
		}
	}

	return decimal.Zero
}

// divisor returns how many residents of the same pure role share the unit.
// Combined-role residents each bear their full amount.
func divisor(role types.Role, unit *unitRoles) int64 {
	if unit == nil {
		return 1
	}

	switch role {
	case types.RoleOwner:
		if unit.owners > 1 {
			return int64(unit.owners)
		}
	case types.RoleTenant:
		if unit.tenants > 1 {
			return int64(unit.tenants)
		}
	}

	return 1
}

// sortResidents returns a copy sorted by unit number, last name, first name
// and finally ID.
func sortResidents(residents []Resident) []Resident {
	ordered := make([]Resident, len(residents))
	copy(ordered, residents)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.UnitNumber != b.UnitNumber {
			return a.UnitNumber < b.UnitNumber
		}
		if a.LastName != b.LastName {
			return a.LastName < b.LastName
		}
		if a.FirstName != b.FirstName {
			return a.FirstName < b.FirstName
		}
		return a.ID < b.ID
	})

	return ordered
}
