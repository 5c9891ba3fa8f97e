package v1

import (
	"net/http"
	"time"

	"github.com/condoboard/backend/internal/httputil"
	"github.com/condoboard/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterExpenseRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", GetExpenses)
	r.POST("", CreateExpense)
}

func RegisterExpenseDetailRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:expenseId", httputil.OptionsPatchDelete)
	r.PATCH("/:expenseId", UpdateExpense)
	r.DELETE("/:expenseId", DeleteExpense)
}

// getExpense loads the expense from the URI and verifies that its
// building belongs to the authenticated user.
func getExpense(c *gin.Context) (models.Expense, bool) {
	var uri struct {
		ExpenseID uint64 `uri:"expenseId" binding:"required"`
	}
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidID.Error(),
		})
		return models.Expense{}, false
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ExpenseID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return models.Expense{}, false
	}

	var building models.Building
	err = models.DB.First(&building, expense.BuildingID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return models.Expense{}, false
	}

	if building.UserID != currentUserID(c) {
		c.JSON(http.StatusNotFound, httpError{
			Error: "there is no expense matching your query",
		})
		return models.Expense{}, false
	}

	return expense, true
}

// @Summary		Create expense
// @Description	Creates a new expense for the building
// @Tags			Expenses
// @Produce		json
// @Success		201			{object}	ExpenseResponse
// @Failure		400			{object}	ExpenseResponse
// @Failure		404			{object}	ExpenseResponse
// @Failure		500			{object}	ExpenseResponse
// @Param			buildingId	path		uint64			true	"ID of the building"
// @Param			expense		body		ExpenseEditable	true	"Expense"
// @Router			/v1/buildings/{buildingId}/expenses [post]
func CreateExpense(c *gin.Context) {
	building, ok := getBuilding(c)
	if !ok {
		return
	}

	var editable ExpenseEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	expense := editable.model()
	expense.BuildingID = building.ID

	err = models.DB.Create(&expense).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	data := newExpense(expense)
	c.JSON(http.StatusCreated, ExpenseResponse{Data: &data})
}

// @Summary		List expenses
// @Description	Returns the expenses of the building
// @Tags			Expenses
// @Produce		json
// @Success		200			{object}	ExpenseListResponse
// @Failure		400			{object}	ExpenseListResponse
// @Failure		404			{object}	ExpenseListResponse
// @Failure		500			{object}	ExpenseListResponse
// @Param			buildingId	path		uint64	true	"ID of the building"
// @Param			table		query		string	false	"Filter by share table"
// @Param			policy		query		string	false	"Filter by allocation policy"
// @Param			year		query		uint	false	"Expenses dated in this year"
// @Router			/v1/buildings/{buildingId}/expenses [get]
func GetExpenses(c *gin.Context) {
	building, ok := getBuilding(c)
	if !ok {
		return
	}

	var filter ExpenseQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{
			Error: &e,
		})
		return
	}

	q := models.DB.
		Where(&models.Expense{BuildingID: building.ID}).
		Order("date ASC, id ASC")

	if filter.Table != "" {
		q = q.Where("table_code = ?", filter.Table)
	}

	if filter.Policy != "" {
		q = q.Where("policy = ?", filter.Policy)
	}

	if filter.Year != 0 {
		start := time.Date(int(filter.Year), 1, 1, 0, 0, 0, 0, time.UTC)
		q = q.Where("date >= ? AND date < ?", start, start.AddDate(1, 0, 0))
	}

	var expenses []models.Expense
	err := q.Find(&expenses).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpense(expense))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: data})
}

// @Summary		Update expense
// @Description	Updates an existing expense. Allocation records are not recomputed automatically.
// @Tags			Expenses
// @Produce		json
// @Success		200			{object}	ExpenseResponse
// @Failure		400			{object}	ExpenseResponse
// @Failure		404			{object}	ExpenseResponse
// @Failure		500			{object}	ExpenseResponse
// @Param			expenseId	path		uint64			true	"ID of the expense"
// @Param			expense		body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses/{expenseId} [patch]
func UpdateExpense(c *gin.Context) {
	expense, ok := getExpense(c)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ExpenseEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	var editable ExpenseEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&expense).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	data := newExpense(expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &data})
}

// @Summary		Delete expense
// @Description	Deletes an expense together with its allocation records
// @Tags			Expenses
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			expenseId	path		uint64	true	"ID of the expense"
// @Router			/v1/expenses/{expenseId} [delete]
func DeleteExpense(c *gin.Context) {
	expense, ok := getExpense(c)
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
