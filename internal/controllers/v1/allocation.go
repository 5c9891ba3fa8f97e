package v1

import (
	"net/http"

	"github.com/condoboard/backend/internal/httputil"
	"github.com/condoboard/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func RegisterAllocationRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGet)
		r.GET("", GetAllocation)
	}

	{
		r.OPTIONS("/recompute", httputil.OptionsPost)
		r.POST("/recompute", RecomputeAllocation)
	}

	{
		r.OPTIONS("/details", httputil.OptionsGet)
		r.GET("/details", GetAllocationDetails)
	}

	{
		r.OPTIONS("/residents/:residentId", httputil.OptionsGet)
		r.GET("/residents/:residentId", GetResidentAllocation)
	}
}

// @Summary		Recompute allocation
// @Description	Deletes and regenerates all allocation records of the building from its current expenses, shares and residents
// @Tags			Allocation
// @Produce		json
// @Success		200			{object}	AllocationResponse
// @Failure		400			{object}	AllocationResponse
// @Failure		404			{object}	AllocationResponse
// @Failure		500			{object}	AllocationResponse
// @Param			buildingId	path		uint64	true	"ID of the building"
// @Router			/v1/buildings/{buildingId}/allocation/recompute [post]
func RecomputeAllocation(c *gin.Context) {
	building, ok := getBuilding(c)
	if !ok {
		return
	}

	totals, err := models.RecomputeAllocation(models.DB, building)
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

// @Summary		Get allocation
// @Description	Returns the per-resident totals of the stored allocation records
// @Tags			Allocation
// @Produce		json
// @Success		200			{object}	AllocationResponse
// @Failure		400			{object}	AllocationResponse
// @Failure		404			{object}	AllocationResponse
// @Failure		500			{object}	AllocationResponse
// @Param			buildingId	path		uint64	true	"ID of the building"
// @Param			table		query		string	false	"Only records of expenses split by this table"
// @Router			/v1/buildings/{buildingId}/allocation [get]
func GetAllocation(c *gin.Context) {
	building, ok := getBuilding(c)
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

	q := models.DB.
		Where(&models.AllocationRecord{BuildingID: building.ID})

	if filter.Table != "" {
		q = q.
			Joins("JOIN expenses ON expenses.id = allocation_records.expense_id").
			Where("expenses.table_code = ?", filter.Table)
	}

	var records []models.AllocationRecord
	err := q.Find(&records).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	totals := make(map[uint64]decimal.Decimal)
	for _, record := range records {
		totals[record.ResidentID] = totals[record.ResidentID].Add(record.Amount)
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

// @Summary		Get allocation details
// @Description	Returns every stored allocation record with its expense
// @Tags			Allocation
// @Produce		json
// @Success		200			{object}	AllocationDetailListResponse
// @Failure		400			{object}	AllocationDetailListResponse
// @Failure		404			{object}	AllocationDetailListResponse
// @Failure		500			{object}	AllocationDetailListResponse
// @Param			buildingId	path		uint64	true	"ID of the building"
// @Router			/v1/buildings/{buildingId}/allocation/details [get]
func GetAllocationDetails(c *gin.Context) {
	building, ok := getBuilding(c)
	if !ok {
		return
	}

	details, err := allocationDetails(building, 0)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationDetailListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, AllocationDetailListResponse{Data: details})
}

// @Summary		Get resident allocation
// @Description	Returns the stored allocation records of one resident with a per-table breakdown
// @Tags			Allocation
// @Produce		json
// @Success		200			{object}	AllocationDetailListResponse
// @Failure		400			{object}	AllocationDetailListResponse
// @Failure		404			{object}	AllocationDetailListResponse
// @Failure		500			{object}	AllocationDetailListResponse
// @Param			buildingId	path		uint64	true	"ID of the building"
// @Param			residentId	path		uint64	true	"ID of the resident"
// @Router			/v1/buildings/{buildingId}/allocation/residents/{residentId} [get]
func GetResidentAllocation(c *gin.Context) {
	building, ok := getBuilding(c)
	if !ok {
		return
	}

	var uri struct {
		ResidentID uint64 `uri:"residentId" binding:"required"`
	}
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidID.Error(),
		})
		return
	}

	var resident models.Resident
	err = models.DB.First(&resident, uri.ResidentID).Error
	if err != nil || resident.BuildingID != building.ID {
		if err == nil {
			c.JSON(http.StatusNotFound, httpError{
				Error: "there is no resident matching your query",
			})
			return
		}
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	details, err := allocationDetails(building, resident.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationDetailListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, AllocationDetailListResponse{Data: details})
}

// allocationDetails loads the allocation records of the building, or of
// a single resident when residentID is not zero, joined with their
// expenses.
func allocationDetails(building models.Building, residentID uint64) ([]AllocationDetail, error) {
	q := models.DB.
		Where(&models.AllocationRecord{BuildingID: building.ID}).
		Order("resident_id ASC, expense_id ASC")

	if residentID != 0 {
		q = q.Where("resident_id = ?", residentID)
	}

	var records []models.AllocationRecord
	err := q.Find(&records).Error
	if err != nil {
		return nil, err
	}

	var expenses []models.Expense
	err = models.DB.Where(&models.Expense{BuildingID: building.ID}).Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uint64]models.Expense, len(expenses))
	for _, expense := range expenses {
		byID[expense.ID] = expense
	}

	details := make([]AllocationDetail, 0, len(records))
	for _, record := range records {
		expense := byID[record.ExpenseID]
		details = append(details, AllocationDetail{
			ResidentID:  record.ResidentID,
			ExpenseID:   record.ExpenseID,
			Description: expense.Description,
			Table:       expense.Table,
			Policy:      expense.Policy,
			Amount:      record.Amount,
			Year:        record.Year,
		})
	}

	return details, nil
}
