package v1

import (
	"net/http"

	"github.com/condoboard/backend/internal/httputil"
	"github.com/condoboard/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterBuildingRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetBuildings)
		r.POST("", CreateBuilding)
	}

	{
		r.OPTIONS("/:buildingId", httputil.OptionsGetPatchDelete)
		r.GET("/:buildingId", GetBuilding)
		r.PATCH("/:buildingId", UpdateBuilding)
		r.DELETE("/:buildingId", DeleteBuilding)
	}

	{
		r.OPTIONS("/:buildingId/units", httputil.OptionsGet)
		r.GET("/:buildingId/units", GetUnits)
	}

	// Dependent resources
	RegisterResidentRoutes(r.Group("/:buildingId/residents"))
	RegisterShareRoutes(r.Group("/:buildingId/shares"))
	RegisterExpenseRoutes(r.Group("/:buildingId/expenses"))
	RegisterAllocationRoutes(r.Group("/:buildingId/allocation"))
	RegisterBudgetRoutes(r.Group("/:buildingId/budgets"))
	RegisterForecastExpenseRoutes(r.Group("/:buildingId/forecast-expenses"))
	RegisterReportRoutes(r)
}

// getBuilding loads the building from the URI and verifies that it
// belongs to the authenticated user.
//
// Buildings of other users are reported as not found so that the API
// does not leak which IDs exist.
func getBuilding(c *gin.Context) (models.Building, bool) {
	var uri URIBuilding
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidID.Error(),
		})
		return models.Building{}, false
	}

	var building models.Building
	err = models.DB.First(&building, uri.BuildingID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return models.Building{}, false
	}

	if building.UserID != currentUserID(c) {
		c.JSON(http.StatusNotFound, httpError{
			Error: "there is no building matching your query",
		})
		return models.Building{}, false
	}

	return building, true
}

// @Summary		Create building
// @Description	Creates a new building with its units
// @Tags			Buildings
// @Produce		json
// @Success		201			{object}	BuildingResponse
// @Failure		400			{object}	BuildingResponse
// @Failure		500			{object}	BuildingResponse
// @Param			building	body		BuildingEditable	true	"Building"
// @Router			/v1/buildings [post]
func CreateBuilding(c *gin.Context) {
	var editable BuildingEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BuildingResponse{
			Error: &e,
		})
		return
	}

	building := editable.model()
	building.UserID = currentUserID(c)

	err = models.DB.Create(&building).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BuildingResponse{
			Error: &e,
		})
		return
	}

	data := newBuilding(c, building)
	c.JSON(http.StatusCreated, BuildingResponse{Data: &data})
}

// @Summary		List buildings
// @Description	Returns the buildings of the authenticated user
// @Tags			Buildings
// @Produce		json
// @Success		200	{object}	BuildingListResponse
// @Failure		500	{object}	BuildingListResponse
// @Router			/v1/buildings [get]
// @Param			name	query	string	false	"Filter by name"
func GetBuildings(c *gin.Context) {
	var filter BuildingQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BuildingListResponse{
			Error: &e,
		})
		return
	}

	q := models.DB.
		Where(&models.Building{UserID: currentUserID(c)}).
		Order("name ASC")

	if filter.Name != "" {
		q = q.Where("name LIKE ?", "%"+filter.Name+"%")
	}

	var buildings []models.Building
	err := q.Find(&buildings).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BuildingListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Building, 0, len(buildings))
	for _, building := range buildings {
		data = append(data, newBuilding(c, building))
	}

	c.JSON(http.StatusOK, BuildingListResponse{Data: data})
}

// @Summary		Get building
// @Description	Returns a specific building
// @Tags			Buildings
// @Produce		json
// @Success		200			{object}	BuildingResponse
// @Failure		400			{object}	BuildingResponse
// @Failure		404			{object}	BuildingResponse
// @Failure		500			{object}	BuildingResponse
// @Param			buildingId	path		uint64	true	"ID of the building"
// @Router			/v1/buildings/{buildingId} [get]
func GetBuilding(c *gin.Context) {
	building, ok := getBuilding(c)
	if !ok {
		return
	}

	data := newBuilding(c, building)
	c.JSON(http.StatusOK, BuildingResponse{Data: &data})
}

// @Summary		Update building
// @Description	Updates an existing building. The unit count cannot be changed.
// @Tags			Buildings
// @Produce		json
// @Success		200			{object}	BuildingResponse
// @Failure		400			{object}	BuildingResponse
// @Failure		404			{object}	BuildingResponse
// @Failure		500			{object}	BuildingResponse
// @Param			buildingId	path		uint64				true	"ID of the building"
// @Param			building	body		BuildingEditable	true	"Building"
// @Router			/v1/buildings/{buildingId} [patch]
func UpdateBuilding(c *gin.Context) {
	building, ok := getBuilding(c)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BuildingEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BuildingResponse{
			Error: &e,
		})
		return
	}

	var editable BuildingEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BuildingResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&building).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BuildingResponse{
			Error: &e,
		})
		return
	}

	data := newBuilding(c, building)
	c.JSON(http.StatusOK, BuildingResponse{Data: &data})
}

// @Summary		Delete building
// @Description	Deletes a building with all its units, residents, shares, expenses and budgets
// @Tags			Buildings
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			buildingId	path		uint64	true	"ID of the building"
// @Router			/v1/buildings/{buildingId} [delete]
func DeleteBuilding(c *gin.Context) {
	building, ok := getBuilding(c)
	if !ok {
		return
	}

	err := models.DB.Delete(&building).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		List units
// @Description	Returns the units of the building in unit number order
// @Tags			Buildings
// @Produce		json
// @Success		200			{object}	UnitListResponse
// @Failure		400			{object}	UnitListResponse
// @Failure		404			{object}	UnitListResponse
// @Failure		500			{object}	UnitListResponse
// @Param			buildingId	path		uint64	true	"ID of the building"
// @Router			/v1/buildings/{buildingId}/units [get]
func GetUnits(c *gin.Context) {
	building, ok := getBuilding(c)
	if !ok {
		return
	}

	units, err := building.Units(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UnitListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Unit, 0, len(units))
	for _, unit := range units {
		data = append(data, newUnit(unit))
	}

	c.JSON(http.StatusOK, UnitListResponse{Data: data})
}
