package v1

import (
	"net/http"

	"github.com/condoboard/backend/internal/httputil"
	"github.com/condoboard/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterResidentRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", GetResidents)
	r.POST("", CreateResident)
}

func RegisterResidentDetailRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:residentId", httputil.OptionsPatchDelete)
	r.PATCH("/:residentId", UpdateResident)
	r.DELETE("/:residentId", DeleteResident)
}

// getResident loads the resident from the URI and verifies that their
// building belongs to the authenticated user.
func getResident(c *gin.Context) (models.Resident, bool) {
	var uri struct {
		ResidentID uint64 `uri:"residentId" binding:"required"`
	}
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidID.Error(),
		})
		return models.Resident{}, false
	}

	var resident models.Resident
	err = models.DB.First(&resident, uri.ResidentID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return models.Resident{}, false
	}

	var building models.Building
	err = models.DB.First(&building, resident.BuildingID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return models.Resident{}, false
	}

	if building.UserID != currentUserID(c) {
		c.JSON(http.StatusNotFound, httpError{
			Error: "there is no resident matching your query",
		})
		return models.Resident{}, false
	}

	return resident, true
}

// @Summary		Create resident
// @Description	Creates a new resident in a unit of the building
// @Tags			Residents
// @Produce		json
// @Success		201			{object}	ResidentResponse
// @Failure		400			{object}	ResidentResponse
// @Failure		404			{object}	ResidentResponse
// @Failure		500			{object}	ResidentResponse
// @Param			buildingId	path		uint64				true	"ID of the building"
// @Param			resident	body		ResidentEditable	true	"Resident"
// @Router			/v1/buildings/{buildingId}/residents [post]
func CreateResident(c *gin.Context) {
	building, ok := getBuilding(c)
	if !ok {
		return
	}

	var editable ResidentEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ResidentResponse{
			Error: &e,
		})
		return
	}

	resident := editable.model()
	resident.BuildingID = building.ID

	err = models.DB.Create(&resident).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ResidentResponse{
			Error: &e,
		})
		return
	}

	data := newResident(resident)
	c.JSON(http.StatusCreated, ResidentResponse{Data: &data})
}

// @Summary		List residents
// @Description	Returns the residents of the building
// @Tags			Residents
// @Produce		json
// @Success		200			{object}	ResidentListResponse
// @Failure		400			{object}	ResidentListResponse
// @Failure		404			{object}	ResidentListResponse
// @Failure		500			{object}	ResidentListResponse
// @Param			buildingId	path		uint64	true	"ID of the building"
// @Param			unit		query		uint64	false	"Filter by unit ID"
// @Param			role		query		string	false	"Filter by role"
// @Router			/v1/buildings/{buildingId}/residents [get]
func GetResidents(c *gin.Context) {
	building, ok := getBuilding(c)
	if !ok {
		return
	}

	var filter ResidentQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ResidentListResponse{
			Error: &e,
		})
		return
	}

	q := models.DB.
		Where(&models.Resident{BuildingID: building.ID}).
		Order("last_name ASC, first_name ASC")

	if filter.UnitID != 0 {
		q = q.Where("unit_id = ?", filter.UnitID)
	}

	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}

	var residents []models.Resident
	err := q.Find(&residents).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ResidentListResponse{
			Error: &e,
		})
		return
	}

	data := make([]ResidentRecord, 0, len(residents))
	for _, resident := range residents {
		data = append(data, newResident(resident))
	}

	c.JSON(http.StatusOK, ResidentListResponse{Data: data})
}

// @Summary		Update resident
// @Description	Updates an existing resident
// @Tags			Residents
// @Produce		json
// @Success		200			{object}	ResidentResponse
// @Failure		400			{object}	ResidentResponse
// @Failure		404			{object}	ResidentResponse
// @Failure		500			{object}	ResidentResponse
// @Param			residentId	path		uint64				true	"ID of the resident"
// @Param			resident	body		ResidentEditable	true	"Resident"
// @Router			/v1/residents/{residentId} [patch]
func UpdateResident(c *gin.Context) {
	resident, ok := getResident(c)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ResidentEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ResidentResponse{
			Error: &e,
		})
		return
	}

	var editable ResidentEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ResidentResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&resident).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ResidentResponse{
			Error: &e,
		})
		return
	}

	data := newResident(resident)
	c.JSON(http.StatusOK, ResidentResponse{Data: &data})
}

// @Summary		Delete resident
// @Description	Deletes a resident together with their allocation records
// @Tags			Residents
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			residentId	path		uint64	true	"ID of the resident"
// @Router			/v1/residents/{residentId} [delete]
func DeleteResident(c *gin.Context) {
	resident, ok := getResident(c)
	if !ok {
		return
	}

	err := models.DB.Delete(&resident).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
