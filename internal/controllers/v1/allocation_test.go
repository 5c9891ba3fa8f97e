package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/condoboard/backend/internal/controllers/v1"
	"github.com/condoboard/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allocationFixture is a building with two units holding shares of
// 600 and 400 thousandths in table A, an owner in the first unit and a
// tenant in the second.
type allocationFixture struct {
	building v1.Building
	owner    v1.ResidentRecord
	tenant   v1.ResidentRecord
}

func (suite *TestSuiteStandard) createAllocationFixture() allocationFixture {
	building := suite.createTestBuilding(v1.BuildingEditable{UnitCount: 2})
	units := suite.unitIDs(building.ID)

	suite.putTestShares(building.ID, "A", []int64{600, 400})

	owner := suite.createTestResident(building.ID, v1.ResidentEditable{
		UnitID:    units[0],
		FirstName: "Anna",
		LastName:  "Bianchi",
		Role:      "owner",
	})
	tenant := suite.createTestResident(building.ID, v1.ResidentEditable{
		UnitID:    units[1],
		FirstName: "Luca",
		LastName:  "Verdi",
		Role:      "tenant",
	})

	return allocationFixture{building, owner, tenant}
}

func (suite *TestSuiteStandard) recompute(buildingID uint64) v1.Allocation {
	url := fmt.Sprintf("http://example.com/v1/buildings/%d/allocation/recompute", buildingID)
	r := suite.authRequest(http.MethodPost, url, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.AllocationResponse
	test.DecodeResponse(suite.T(), &r, &response)

	return *response.Data
}

func (suite *TestSuiteStandard) TestAllocationRecompute() {
	fixture := suite.createAllocationFixture()

	_ = suite.createTestExpense(fixture.building.ID, v1.ExpenseEditable{
		Amount: decimal.NewFromInt(1000),
		Table:  "A",
		Policy: "owner",
	})

	allocation := suite.recompute(fixture.building.ID)
	require.Len(suite.T(), allocation.Totals, 2)

	// Unit order: the owner in unit 1 comes first.
	assert.Equal(suite.T(), fixture.owner.ID, allocation.Totals[0].ResidentID)
	assert.True(suite.T(), decimal.NewFromInt(600).Equal(allocation.Totals[0].Total), "owner total is %s", allocation.Totals[0].Total)
	assert.True(suite.T(), allocation.Totals[1].Total.IsZero(), "tenant total is %s", allocation.Totals[1].Total)
	assert.True(suite.T(), decimal.NewFromInt(600).Equal(allocation.GrandTotal))
}

func (suite *TestSuiteStandard) TestAllocationGet() {
	fixture := suite.createAllocationFixture()
	suite.putTestShares(fixture.building.ID, "B", []int64{500, 500})

	_ = suite.createTestExpense(fixture.building.ID, v1.ExpenseEditable{
		Amount: decimal.NewFromInt(1000),
		Table:  "A",
		Policy: "owner",
	})
	_ = suite.createTestExpense(fixture.building.ID, v1.ExpenseEditable{
		Amount: decimal.NewFromInt(400),
		Table:  "B",
		Policy: "tenant",
	})

	_ = suite.recompute(fixture.building.ID)

	url := fmt.Sprintf("http://example.com/v1/buildings/%d/allocation", fixture.building.ID)
	r := suite.authRequest(http.MethodGet, url, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.AllocationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), decimal.NewFromInt(800).Equal(response.Data.GrandTotal), "grand total is %s", response.Data.GrandTotal)

	// Filtered by table only the matching expenses count.
	r = suite.authRequest(http.MethodGet, url+"?table=B", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), decimal.NewFromInt(200).Equal(response.Data.GrandTotal), "grand total is %s", response.Data.GrandTotal)
}

func (suite *TestSuiteStandard) TestAllocationDetails() {
	fixture := suite.createAllocationFixture()

	expense := suite.createTestExpense(fixture.building.ID, v1.ExpenseEditable{
		Description: "Pulizia scale",
		Amount:      decimal.NewFromInt(1000),
		Table:       "A",
		Policy:      "owner",
	})

	_ = suite.recompute(fixture.building.ID)

	url := fmt.Sprintf("http://example.com/v1/buildings/%d/allocation/details", fixture.building.ID)
	r := suite.authRequest(http.MethodGet, url, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.AllocationDetailListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1, "zero amounts must not appear in the details")

	detail := response.Data[0]
	assert.Equal(suite.T(), fixture.owner.ID, detail.ResidentID)
	assert.Equal(suite.T(), expense.ID, detail.ExpenseID)
	assert.Equal(suite.T(), "Pulizia scale", detail.Description)
	assert.True(suite.T(), decimal.NewFromInt(600).Equal(detail.Amount))
}

func (suite *TestSuiteStandard) TestResidentAllocation() {
	fixture := suite.createAllocationFixture()

	_ = suite.createTestExpense(fixture.building.ID, v1.ExpenseEditable{
		Amount: decimal.NewFromInt(1000),
		Table:  "A",
		Policy: "50/50",
	})

	_ = suite.recompute(fixture.building.ID)

	url := fmt.Sprintf("http://example.com/v1/buildings/%d/allocation/residents/%d", fixture.building.ID, fixture.tenant.ID)
	r := suite.authRequest(http.MethodGet, url, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.AllocationDetailListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	// The tenant is alone in unit 2 and bears its full slice.
	require.Len(suite.T(), response.Data, 1)
	assert.True(suite.T(), decimal.NewFromInt(400).Equal(response.Data[0].Amount), "tenant amount is %s", response.Data[0].Amount)
}
