package v1

import (
	"net/http"
	"time"

	"github.com/condoboard/backend/internal/httputil"
	"github.com/condoboard/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

func RegisterForecastExpenseRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", GetForecastExpenses)
	r.POST("", CreateForecastExpense)
}

func RegisterForecastExpenseDetailRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:forecastExpenseId", httputil.OptionsPatchDelete)
	r.PATCH("/:forecastExpenseId", UpdateForecastExpense)
	r.DELETE("/:forecastExpenseId", DeleteForecastExpense)
}

// getForecastExpense loads the forecast expense from the URI and
// verifies that its building belongs to the authenticated user.
func getForecastExpense(c *gin.Context) (models.ForecastExpense, bool) {
	var uri struct {
		ForecastExpenseID uint64 `uri:"forecastExpenseId" binding:"required"`
	}
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidID.Error(),
		})
		return models.ForecastExpense{}, false
	}

	var expense models.ForecastExpense
	err = models.DB.First(&expense, uri.ForecastExpenseID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return models.ForecastExpense{}, false
	}

	var building models.Building
	err = models.DB.First(&building, expense.BuildingID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return models.ForecastExpense{}, false
	}

	if building.UserID != currentUserID(c) {
		c.JSON(http.StatusNotFound, httpError{
			Error: "there is no forecast expense matching your query",
		})
		return models.ForecastExpense{}, false
	}

	return expense, true
}

// @Summary		Create forecast expense
// @Description	Creates a new forecast expense. The budget for the target year is created when it does not exist, the target year defaults to the next calendar year.
// @Tags			ForecastExpenses
// @Produce		json
// @Success		201			{object}	ForecastExpenseResponse
// @Failure		400			{object}	ForecastExpenseResponse
// @Failure		404			{object}	ForecastExpenseResponse
// @Failure		500			{object}	ForecastExpenseResponse
// @Param			buildingId	path		uint64					true	"ID of the building"
// @Param			expense		body		ForecastExpenseEditable	true	"Forecast expense"
// @Router			/v1/buildings/{buildingId}/forecast-expenses [post]
func CreateForecastExpense(c *gin.Context) {
	building, ok := getBuilding(c)
	if !ok {
		return
	}

	var editable ForecastExpenseEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ForecastExpenseResponse{
			Error: &e,
		})
		return
	}

	year := editable.Year
	if year == 0 {
		year = uint(time.Now().In(time.UTC).Year()) + 1
	}

	budget, err := models.BudgetForYear(models.DB, building, year)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ForecastExpenseResponse{
			Error: &e,
		})
		return
	}

	expense := editable.model()
	expense.BuildingID = building.ID
	expense.BudgetID = budget.ID

	err = models.DB.Create(&expense).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ForecastExpenseResponse{
			Error: &e,
		})
		return
	}

	data := newForecastExpense(expense, budget.Year)
	c.JSON(http.StatusCreated, ForecastExpenseResponse{Data: &data})
}

// @Summary		List forecast expenses
// @Description	Returns the forecast expenses of the building
// @Tags			ForecastExpenses
// @Produce		json
// @Success		200			{object}	ForecastExpenseListResponse
// @Failure		400			{object}	ForecastExpenseListResponse
// @Failure		404			{object}	ForecastExpenseListResponse
// @Failure		500			{object}	ForecastExpenseListResponse
// @Param			buildingId	path		uint64	true	"ID of the building"
// @Param			year		query		uint	false	"Only forecast expenses of this budget year"
// @Router			/v1/buildings/{buildingId}/forecast-expenses [get]
func GetForecastExpenses(c *gin.Context) {
	building, ok := getBuilding(c)
	if !ok {
		return
	}

	var filter ForecastExpenseQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ForecastExpenseListResponse{
			Error: &e,
		})
		return
	}

	var budgets []models.AnnualBudget
	q := models.DB.Where(&models.AnnualBudget{BuildingID: building.ID})
	if filter.Year != 0 {
		q = q.Where("year = ?", filter.Year)
	}
	err := q.Find(&budgets).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ForecastExpenseListResponse{
			Error: &e,
		})
		return
	}

	years := make(map[uint64]uint, len(budgets))
	ids := make([]uint64, 0, len(budgets))
	for _, budget := range budgets {
		years[budget.ID] = budget.Year
		ids = append(ids, budget.ID)
	}

	data := make([]ForecastExpense, 0)
	if len(ids) > 0 {
		var expenses []models.ForecastExpense
		err = models.DB.
			Where("budget_id IN ?", ids).
			Order("budget_id ASC, month ASC, id ASC").
			Find(&expenses).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), ForecastExpenseListResponse{
				Error: &e,
			})
			return
		}

		for _, expense := range expenses {
			data = append(data, newForecastExpense(expense, years[expense.BudgetID]))
		}
	}

	c.JSON(http.StatusOK, ForecastExpenseListResponse{Data: data})
}

// @Summary		Update forecast expense
// @Description	Updates an existing forecast expense and keeps the budget total in sync
// @Tags			ForecastExpenses
// @Produce		json
// @Success		200					{object}	ForecastExpenseResponse
// @Failure		400					{object}	ForecastExpenseResponse
// @Failure		404					{object}	ForecastExpenseResponse
// @Failure		500					{object}	ForecastExpenseResponse
// @Param			forecastExpenseId	path		uint64					true	"ID of the forecast expense"
// @Param			expense				body		ForecastExpenseEditable	true	"Forecast expense"
// @Router			/v1/forecast-expenses/{forecastExpenseId} [patch]
func UpdateForecastExpense(c *gin.Context) {
	expense, ok := getForecastExpense(c)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ForecastExpenseEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ForecastExpenseResponse{
			Error: &e,
		})
		return
	}

	// The budget year cannot be changed, an expense for another year
	// is a new expense
	fields := slices.DeleteFunc(updateFields, func(field any) bool {
		return field == "Year"
	})

	var editable ForecastExpenseEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ForecastExpenseResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&expense).Select("", fields...).Updates(editable.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ForecastExpenseResponse{
			Error: &e,
		})
		return
	}

	var budget models.AnnualBudget
	err = models.DB.First(&budget, expense.BudgetID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ForecastExpenseResponse{
			Error: &e,
		})
		return
	}

	data := newForecastExpense(expense, budget.Year)
	c.JSON(http.StatusOK, ForecastExpenseResponse{Data: &data})
}

// @Summary		Delete forecast expense
// @Description	Deletes a forecast expense and keeps the budget total in sync
// @Tags			ForecastExpenses
// @Success		204
// @Failure		400					{object}	httpError
// @Failure		404					{object}	httpError
// @Failure		500					{object}	httpError
// @Param			forecastExpenseId	path		uint64	true	"ID of the forecast expense"
// @Router			/v1/forecast-expenses/{forecastExpenseId} [delete]
func DeleteForecastExpense(c *gin.Context) {
	expense, ok := getForecastExpense(c)
	if !ok {
		return
	}

	err := models.DB.Delete(&expense).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
