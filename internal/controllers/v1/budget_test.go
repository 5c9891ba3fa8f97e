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

func (suite *TestSuiteStandard) TestBudgetGenerate() {
	fixture := suite.createAllocationFixture()

	_ = suite.createTestExpense(fixture.building.ID, v1.ExpenseEditable{
		Amount: decimal.NewFromInt(300),
		Date:   time.Now().In(time.UTC),
	})
	_ = suite.createTestExpense(fixture.building.ID, v1.ExpenseEditable{
		Amount: decimal.NewFromInt(200),
		Date:   time.Now().In(time.UTC),
	})

	year := time.Now().In(time.UTC).Year() + 1
	url := fmt.Sprintf("http://example.com/v1/buildings/%d/budgets/%d/generate", fixture.building.ID, year)
	r := suite.authRequest(http.MethodPost, url, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	var response v1.BudgetGenerateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), uint(year), response.Data.Budget.Year)
	assert.True(suite.T(), decimal.NewFromInt(500).Equal(response.Data.Budget.TotalActual), "TotalActual is %s", response.Data.Budget.TotalActual)
	assert.True(suite.T(), decimal.NewFromInt(300).Equal(response.Data.Allocation.GrandTotal), "grand total is %s", response.Data.Allocation.GrandTotal)

	// Generating the same year twice is rejected.
	r = suite.authRequest(http.MethodPost, url, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteStandard) TestBudgetsGet() {
	building := suite.createTestBuilding(v1.BuildingEditable{})

	_ = suite.createTestForecastExpense(building.ID, v1.ForecastExpenseEditable{
		Year:           2027,
		ExpectedAmount: decimal.NewFromInt(900),
	})

	url := fmt.Sprintf("http://example.com/v1/buildings/%d/budgets", building.ID)
	r := suite.authRequest(http.MethodGet, url, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), uint(2027), response.Data[0].Year)
	assert.True(suite.T(), decimal.NewFromInt(900).Equal(response.Data[0].TotalForecast), "TotalForecast is %s", response.Data[0].TotalForecast)
}

// TestForecastAllocation verifies the forecast split of a budget,
// including the zero line for residents without forecast costs.
func (suite *TestSuiteStandard) TestForecastAllocation() {
	fixture := suite.createAllocationFixture()

	_ = suite.createTestForecastExpense(fixture.building.ID, v1.ForecastExpenseEditable{
		Year:           2027,
		ExpectedAmount: decimal.NewFromInt(1000),
		Table:          "A",
		Policy:         "owner",
	})

	url := fmt.Sprintf("http://example.com/v1/buildings/%d/budgets/2027/allocation", fixture.building.ID)
	r := suite.authRequest(http.MethodGet, url, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.AllocationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data.Totals, 2)
	assert.True(suite.T(), decimal.NewFromInt(600).Equal(response.Data.Totals[0].Total))
	assert.True(suite.T(), response.Data.Totals[1].Total.IsZero())
}

func (suite *TestSuiteStandard) TestForecastAllocationNoBudget() {
	building := suite.createTestBuilding(v1.BuildingEditable{})

	url := fmt.Sprintf("http://example.com/v1/buildings/%d/budgets/2030/allocation", building.ID)
	r := suite.authRequest(http.MethodGet, url, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}
