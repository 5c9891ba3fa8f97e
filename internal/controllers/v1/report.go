package v1

import (
	"net/http"
	"time"

	"github.com/condoboard/backend/internal/httputil"
	"github.com/condoboard/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func RegisterReportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/:buildingId/projection", httputil.OptionsGet)
		r.GET("/:buildingId/projection", GetProjection)
	}

	{
		r.OPTIONS("/:buildingId/summary", httputil.OptionsGet)
		r.GET("/:buildingId/summary", GetSummary)
	}

	{
		r.OPTIONS("/:buildingId/export", httputil.OptionsGet)
		r.GET("/:buildingId/export", GetExport)
	}
}

// @Summary		Next-year projection
// @Description	Projects the coming year's costs per resident and per share table. Based on the reference year's forecast expenses when they exist, its actual expenses otherwise. Persists nothing.
// @Tags			Reports
// @Produce		json
// @Success		200				{object}	ProjectionResponse
// @Failure		400				{object}	ProjectionResponse
// @Failure		404				{object}	ProjectionResponse
// @Failure		500				{object}	ProjectionResponse
// @Param			buildingId		path		uint64	true	"ID of the building"
// @Param			referenceYear	query		uint	false	"Reference year, defaults to the current year"
// @Router			/v1/buildings/{buildingId}/projection [get]
func GetProjection(c *gin.Context) {
	building, ok := getBuilding(c)
	if !ok {
		return
	}

	var filter ProjectionQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ProjectionResponse{
			Error: &e,
		})
		return
	}

	referenceYear := filter.ReferenceYear
	if referenceYear == 0 {
		referenceYear = uint(time.Now().In(time.UTC).Year())
	}

	projection, err := models.ProjectNextYear(models.DB, building, referenceYear)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectionResponse{
			Error: &e,
		})
		return
	}

	data := newProjection(referenceYear, projection)
	c.JSON(http.StatusOK, ProjectionResponse{Data: &data})
}

// @Summary		Printable summary
// @Description	Returns the per-resident totals of the stored allocation records with amounts formatted for Italian locale
// @Tags			Reports
// @Produce		json
// @Success		200			{object}	SummaryResponse
// @Failure		400			{object}	SummaryResponse
// @Failure		404			{object}	SummaryResponse
// @Failure		500			{object}	SummaryResponse
// @Param			buildingId	path		uint64	true	"ID of the building"
// @Router			/v1/buildings/{buildingId}/summary [get]
func GetSummary(c *gin.Context) {
	building, ok := getBuilding(c)
	if !ok {
		return
	}

	var records []models.AllocationRecord
	err := models.DB.
		Where(&models.AllocationRecord{BuildingID: building.ID}).
		Find(&records).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	totals := make(map[uint64]decimal.Decimal)
	for _, record := range records {
		totals[record.ResidentID] = totals[record.ResidentID].Add(record.Amount)
	}

	var residents []models.Resident
	err = models.DB.
		Where(&models.Resident{BuildingID: building.ID}).
		Order("last_name ASC, first_name ASC").
		Find(&residents).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	// Amounts in the printable summary use the Italian number format
	printer := message.NewPrinter(language.Italian)

	data := Summary{
		BuildingName: building.Name,
		Address:      building.Address,
		Lines:        make([]SummaryLine, 0, len(residents)),
	}

	grandTotal := decimal.Zero
	for _, resident := range residents {
		total := totals[resident.ID]
		grandTotal = grandTotal.Add(total)

		data.Lines = append(data.Lines, SummaryLine{
			ResidentID: resident.ID,
			Name:       resident.FirstName + " " + resident.LastName,
			Role:       resident.Role,
			Amount:     total,
			Formatted:  printer.Sprintf("€ %.2f", total.InexactFloat64()),
		})
	}

	data.Total = grandTotal
	data.TotalFormatted = printer.Sprintf("€ %.2f", grandTotal.InexactFloat64())

	c.JSON(http.StatusOK, SummaryResponse{Data: &data})
}
