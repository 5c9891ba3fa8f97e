package v1

import (
	"net/http"

	"github.com/condoboard/backend/internal/httputil"
	"github.com/condoboard/backend/internal/models"
	"github.com/condoboard/backend/internal/types"
	"github.com/gin-gonic/gin"
)

func RegisterBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGet)
		r.GET("", GetBudgets)
	}

	{
		r.OPTIONS("/:year/generate", httputil.OptionsPost)
		r.POST("/:year/generate", GenerateBudget)
	}

	{
		r.OPTIONS("/:year/allocation", httputil.OptionsGet)
		r.GET("/:year/allocation", GetForecastAllocation)
	}
}

func bindYear(c *gin.Context) (uint, bool) {
	var uri URIBuildingYear
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return 0, false
	}

	return uri.Year, true
}

// @Summary		List budgets
// @Description	Returns the annual budgets of the building
// @Tags			Budgets
// @Produce		json
// @Success		200			{object}	BudgetListResponse
// @Failure		400			{object}	BudgetListResponse
// @Failure		404			{object}	BudgetListResponse
// @Failure		500			{object}	BudgetListResponse
// @Param			buildingId	path		uint64	true	"ID of the building"
// @Router			/v1/buildings/{buildingId}/budgets [get]
func GetBudgets(c *gin.Context) {
	building, ok := getBuilding(c)
	if !ok {
		return
	}

	var budgets []models.AnnualBudget
	err := models.DB.
		Where(&models.AnnualBudget{BuildingID: building.ID}).
		Order("year ASC").
		Find(&budgets).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		data = append(data, newBudget(budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Generate budget
// @Description	Creates the budget for the year from the current year's actual expenses and recomputes the actual allocation
// @Tags			Budgets
// @Produce		json
// @Success		201			{object}	BudgetGenerateResponse
// @Failure		400			{object}	BudgetGenerateResponse
// @Failure		404			{object}	BudgetGenerateResponse
// @Failure		500			{object}	BudgetGenerateResponse
// @Param			buildingId	path		uint64	true	"ID of the building"
// @Param			year		path		uint	true	"Budget year"
// @Router			/v1/buildings/{buildingId}/budgets/{year}/generate [post]
func GenerateBudget(c *gin.Context) {
	building, ok := getBuilding(c)
	if !ok {
		return
	}

	year, ok := bindYear(c)
	if !ok {
		return
	}

	budget, totals, err := models.GenerateBudget(models.DB, building, year)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetGenerateResponse{
			Error: &e,
		})
		return
	}

	allocation, err := newAllocation(models.DB, building, totals)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetGenerateResponse{
			Error: &e,
		})
		return
	}

	budgetData := newBudget(budget)
	c.JSON(http.StatusCreated, BudgetGenerateResponse{
		Data: &BudgetGenerate{
			Budget:     budgetData,
			Allocation: allocation,
		},
	})
}

// @Summary		Get forecast allocation
// @Description	Recomputes and returns the forecast allocation of the year's budget, one total per resident
// @Tags			Budgets
// @Produce		json
// @Success		200			{object}	AllocationResponse
// @Failure		400			{object}	AllocationResponse
// @Failure		404			{object}	AllocationResponse
// @Failure		500			{object}	AllocationResponse
// @Param			buildingId	path		uint64	true	"ID of the building"
// @Param			year		path		uint	true	"Budget year"
// @Param			table		query		string	false	"Only forecast expenses split by this table"
// @Router			/v1/buildings/{buildingId}/budgets/{year}/allocation [get]
func GetForecastAllocation(c *gin.Context) {
	building, ok := getBuilding(c)
	if !ok {
		return
	}

	year, ok := bindYear(c)
	if !ok {
		return
	}

	var filter AllocationQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, AllocationResponse{
			Error: &e,
		})
		return
	}

	var table types.Table
	if filter.Table != "" {
		parsed, err := types.ParseTable(filter.Table)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, AllocationResponse{
				Error: &e,
			})
			return
		}
		table = parsed
	}

	totals, _, err := models.RecomputeForecastAllocation(models.DB, building, year, table)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	data, err := newAllocation(models.DB, building, totals)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, AllocationResponse{Data: &data})
}
