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

// TestForecastExpenseCreate verifies that the budget year defaults to
// the next calendar year and that the budget is created on demand.
func (suite *TestSuiteStandard) TestForecastExpenseCreate() {
	building := suite.createTestBuilding(v1.BuildingEditable{})

	expense := suite.createTestForecastExpense(building.ID, v1.ForecastExpenseEditable{
		Description: "Manutenzione ascensore",
	})

	assert.Equal(suite.T(), uint(time.Now().In(time.UTC).Year()+1), expense.Year)
	assert.NotZero(suite.T(), expense.BudgetID)
}

func (suite *TestSuiteStandard) TestForecastExpensesGetFilter() {
	building := suite.createTestBuilding(v1.BuildingEditable{})

	_ = suite.createTestForecastExpense(building.ID, v1.ForecastExpenseEditable{Year: 2027})
	_ = suite.createTestForecastExpense(building.ID, v1.ForecastExpenseEditable{Year: 2027, Month: 6})
	_ = suite.createTestForecastExpense(building.ID, v1.ForecastExpenseEditable{Year: 2028})

	url := fmt.Sprintf("http://example.com/v1/buildings/%d/forecast-expenses?year=2027", building.ID)
	r := suite.authRequest(http.MethodGet, url, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.ForecastExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), uint(2027), response.Data[0].Year)
}

func (suite *TestSuiteStandard) TestForecastExpenseUpdate() {
	building := suite.createTestBuilding(v1.BuildingEditable{})
	expense := suite.createTestForecastExpense(building.ID, v1.ForecastExpenseEditable{Year: 2027})

	url := fmt.Sprintf("http://example.com/v1/forecast-expenses/%d", expense.ID)
	r := suite.authRequest(http.MethodPatch, url, map[string]any{"expectedAmount": "350"})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.ForecastExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), decimal.NewFromInt(350).Equal(response.Data.ExpectedAmount))
	assert.Equal(suite.T(), expense.BudgetID, response.Data.BudgetID)

	// The budget year is ignored on updates.
	r = suite.authRequest(http.MethodPatch, url, map[string]any{"year": 2031})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), uint(2027), response.Data.Year)
}

func (suite *TestSuiteStandard) TestForecastExpenseDelete() {
	building := suite.createTestBuilding(v1.BuildingEditable{})
	expense := suite.createTestForecastExpense(building.ID, v1.ForecastExpenseEditable{Year: 2027, ExpectedAmount: decimal.NewFromInt(500)})

	url := fmt.Sprintf("http://example.com/v1/forecast-expenses/%d", expense.ID)
	r := suite.authRequest(http.MethodDelete, url, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	// The budget total follows the deletion.
	budgetsURL := fmt.Sprintf("http://example.com/v1/buildings/%d/budgets", building.ID)
	r = suite.authRequest(http.MethodGet, budgetsURL, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var budgets v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &budgets)
	require.Len(suite.T(), budgets.Data, 1)
	assert.True(suite.T(), budgets.Data[0].TotalForecast.IsZero(), "TotalForecast is %s", budgets.Data[0].TotalForecast)
}
