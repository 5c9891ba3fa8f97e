package v1

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/condoboard/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type ExportResponse struct {
	Version      string                     `json:"version" example:"0.0.0"`       // The version of the backend the export was made with
	CreationTime time.Time                  `json:"creationTime"`                  // Time the export was created
	Data         map[string]json.RawMessage `json:"data"`                          // All resources of the building, keyed by model name
	Error        *string                    `json:"error"`                         // The error, if any occurred
}

// @Summary		Export building
// @Description	Returns all stored data of the building as a JSON document
// @Tags			Reports
// @Produce		json
// @Success		200			{object}	ExportResponse
// @Failure		400			{object}	ExportResponse
// @Failure		404			{object}	ExportResponse
// @Failure		500			{object}	ExportResponse
// @Param			buildingId	path		uint64	true	"ID of the building"
// @Router			/v1/buildings/{buildingId}/export [get]
func GetExport(c *gin.Context) {
	building, ok := getBuilding(c)
	if !ok {
		return
	}

	data, err := models.ExportBuilding(models.DB, building)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExportResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ExportResponse{
		Version:      Version,
		CreationTime: time.Now().In(time.UTC),
		Data:         data,
	})
}
