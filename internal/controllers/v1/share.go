package v1

import (
	"net/http"

	"github.com/condoboard/backend/internal/httputil"
	"github.com/condoboard/backend/internal/models"
	"github.com/condoboard/backend/internal/types"
	"github.com/gin-gonic/gin"
)

func RegisterShareRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGet)
		r.GET("", GetShares)
	}

	{
		r.OPTIONS("/validation", httputil.OptionsGet)
		r.GET("/validation", GetShareValidation)
	}

	{
		r.OPTIONS("/:table", httputil.OptionsGetPut)
		r.GET("/:table", GetShareTable)
		r.PUT("/:table", PutShareTable)
	}
}

// bindTable parses the share table code from the URI.
func bindTable(c *gin.Context) (types.Table, bool) {
	var uri URIBuildingTable
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return "", false
	}

	table, err := types.ParseTable(uri.Table)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return "", false
	}

	return table, true
}

// @Summary		List shares
// @Description	Returns all share entries of the building, grouped by table
// @Tags			Shares
// @Produce		json
// @Success		200			{object}	ShareListResponse
// @Failure		400			{object}	ShareListResponse
// @Failure		404			{object}	ShareListResponse
// @Failure		500			{object}	ShareListResponse
// @Param			buildingId	path		uint64	true	"ID of the building"
// @Router			/v1/buildings/{buildingId}/shares [get]
func GetShares(c *gin.Context) {
	building, ok := getBuilding(c)
	if !ok {
		return
	}

	var entries []models.ShareEntry
	err := models.DB.
		Where(&models.ShareEntry{BuildingID: building.ID}).
		Order("table_code ASC, unit_id ASC").
		Find(&entries).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ShareListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ShareListResponse{Data: newShareTables(entries)})
}

// @Summary		Get share table
// @Description	Returns the share entries of one table
// @Tags			Shares
// @Produce		json
// @Success		200			{object}	ShareTableResponse
// @Failure		400			{object}	ShareTableResponse
// @Failure		404			{object}	ShareTableResponse
// @Failure		500			{object}	ShareTableResponse
// @Param			buildingId	path		uint64	true	"ID of the building"
// @Param			table		path		string	true	"Share table code (A-L)"
// @Router			/v1/buildings/{buildingId}/shares/{table} [get]
func GetShareTable(c *gin.Context) {
	building, ok := getBuilding(c)
	if !ok {
		return
	}

	table, ok := bindTable(c)
	if !ok {
		return
	}

	var entries []models.ShareEntry
	err := models.DB.
		Where(&models.ShareEntry{BuildingID: building.ID, Table: table}).
		Order("unit_id ASC").
		Find(&entries).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ShareTableResponse{
			Error: &e,
		})
		return
	}

	data := newShareTable(table, entries)
	c.JSON(http.StatusOK, ShareTableResponse{Data: &data})
}

// @Summary		Replace share table
// @Description	Replaces all entries of one share table. One value per unit in unit number order, values have to sum to 1000.
// @Tags			Shares
// @Produce		json
// @Success		200			{object}	ShareTableResponse
// @Failure		400			{object}	ShareTableResponse
// @Failure		404			{object}	ShareTableResponse
// @Failure		500			{object}	ShareTableResponse
// @Param			buildingId	path		uint64			true	"ID of the building"
// @Param			table		path		string			true	"Share table code (A-L)"
// @Param			shares		body		ShareEditable	true	"Share values"
// @Router			/v1/buildings/{buildingId}/shares/{table} [put]
func PutShareTable(c *gin.Context) {
	building, ok := getBuilding(c)
	if !ok {
		return
	}

	table, ok := bindTable(c)
	if !ok {
		return
	}

	var editable ShareEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ShareTableResponse{
			Error: &e,
		})
		return
	}

	err = models.ReplaceShares(models.DB, building, table, editable.Values)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ShareTableResponse{
			Error: &e,
		})
		return
	}

	var entries []models.ShareEntry
	err = models.DB.
		Where(&models.ShareEntry{BuildingID: building.ID, Table: table}).
		Order("unit_id ASC").
		Find(&entries).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ShareTableResponse{
			Error: &e,
		})
		return
	}

	data := newShareTable(table, entries)
	c.JSON(http.StatusOK, ShareTableResponse{Data: &data})
}

// @Summary		Validate shares
// @Description	Reports for every table whether the building's entries are complete and sum to 1000
// @Tags			Shares
// @Produce		json
// @Success		200			{object}	ShareValidationResponse
// @Failure		400			{object}	ShareValidationResponse
// @Failure		404			{object}	ShareValidationResponse
// @Failure		500			{object}	ShareValidationResponse
// @Param			buildingId	path		uint64	true	"ID of the building"
// @Router			/v1/buildings/{buildingId}/shares/validation [get]
func GetShareValidation(c *gin.Context) {
	building, ok := getBuilding(c)
	if !ok {
		return
	}

	statuses, err := models.ShareValidation(models.DB, building)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ShareValidationResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ShareValidationResponse{Data: statuses})
}
