package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/condoboard/backend/internal/controllers/v1"
	"github.com/condoboard/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestProjection() {
	fixture := suite.createAllocationFixture()

	_ = suite.createTestExpense(fixture.building.ID, v1.ExpenseEditable{
		Amount: decimal.NewFromInt(1000),
		Table:  "A",
		Policy: "50/50",
		Date:   time.Now().In(time.UTC),
	})

	url := fmt.Sprintf("http://example.com/v1/buildings/%d/projection", fixture.building.ID)
	r := suite.authRequest(http.MethodGet, url, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.ProjectionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	projection := response.Data
	assert.Equal(suite.T(), uint(time.Now().In(time.UTC).Year()), projection.ReferenceYear)

	// The units each house a single resident, so the 50/50 split
	// collapses to the lone resident bearing the full unit slice.
	require.Len(suite.T(), projection.PerPerson, 2)
	assert.True(suite.T(), decimal.NewFromInt(600).Equal(projection.PerPerson[0].Total), "owner total is %s", projection.PerPerson[0].Total)
	assert.True(suite.T(), decimal.NewFromInt(400).Equal(projection.PerPerson[1].Total), "tenant total is %s", projection.PerPerson[1].Total)

	require.Len(suite.T(), projection.PerTable, 1)
	assert.EqualValues(suite.T(), "A", projection.PerTable[0].Table)
	assert.True(suite.T(), decimal.NewFromInt(1000).Equal(projection.PerTable[0].Total))

	assert.Equal(suite.T(), 1, projection.Summary.OwnerCount)
	assert.Equal(suite.T(), 1, projection.Summary.TenantCount)
	assert.True(suite.T(), decimal.NewFromInt(600).Equal(projection.Summary.AveragePerOwner))
	assert.True(suite.T(), decimal.NewFromInt(400).Equal(projection.Summary.AveragePerTenant))
}

func (suite *TestSuiteStandard) TestProjectionReferenceYear() {
	fixture := suite.createAllocationFixture()

	_ = suite.createTestExpense(fixture.building.ID, v1.ExpenseEditable{
		Amount: decimal.NewFromInt(1000),
		Date:   time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	url := fmt.Sprintf("http://example.com/v1/buildings/%d/projection?referenceYear=2020", fixture.building.ID)
	r := suite.authRequest(http.MethodGet, url, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.ProjectionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), uint(2020), response.Data.ReferenceYear)
	assert.True(suite.T(), decimal.NewFromInt(600).Equal(response.Data.Summary.GrandTotal), "grand total is %s", response.Data.Summary.GrandTotal)
}

func (suite *TestSuiteStandard) TestSummary() {
	fixture := suite.createAllocationFixture()

	_ = suite.createTestExpense(fixture.building.ID, v1.ExpenseEditable{
		Amount: decimal.NewFromInt(1000),
		Table:  "A",
		Policy: "owner",
	})
	_ = suite.recompute(fixture.building.ID)

	url := fmt.Sprintf("http://example.com/v1/buildings/%d/summary", fixture.building.ID)
	r := suite.authRequest(http.MethodGet, url, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	summary := response.Data
	assert.Equal(suite.T(), fixture.building.Name, summary.BuildingName)
	require.Len(suite.T(), summary.Lines, 2)
	assert.Equal(suite.T(), "Anna Bianchi", summary.Lines[0].Name)
	assert.Equal(suite.T(), "€ 600,00", summary.Lines[0].Formatted)
	assert.True(suite.T(), decimal.NewFromInt(600).Equal(summary.Total))
	assert.Equal(suite.T(), "€ 600,00", summary.TotalFormatted)
}

func (suite *TestSuiteStandard) TestExport() {
	fixture := suite.createAllocationFixture()
	_ = suite.createTestExpense(fixture.building.ID, v1.ExpenseEditable{})

	url := fmt.Sprintf("http://example.com/v1/buildings/%d/export", fixture.building.ID)
	r := suite.authRequest(http.MethodGet, url, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), v1.Version, response.Version)
	assert.False(suite.T(), response.CreationTime.IsZero())

	for _, key := range []string{"Building", "Unit", "Resident", "ShareEntry", "Expense"} {
		assert.Contains(suite.T(), response.Data, key)
	}
}
