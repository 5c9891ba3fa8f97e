package v1

import (
	"fmt"

	"github.com/condoboard/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type BuildingEditable struct {
	Name             string `json:"name" example:"Condominio Aurora" default:""`          // Name of the building
	Address          string `json:"address" example:"Via Roma 12, Torino" default:""`     // Street address
	UnitCount        uint   `json:"unitCount" example:"8" minimum:"1"`                    // Number of units, immutable after creation
	ConstructionYear uint   `json:"constructionYear" example:"1968" default:"0"`          // Year the building was built
	Staircases       uint   `json:"staircases" example:"2" default:"0"`                   // Number of staircases
	Administrator    string `json:"administrator" example:"Studio Bianchi" default:""`    // Name of the administrator
	IBAN             string `json:"iban" example:"IT60X0542811101000000123456" default:""` // Bank account of the condominium
	Bank             string `json:"bank" example:"Banca Popolare" default:""`             // Name of the bank
	Notes            string `json:"notes" default:""`                                     // Free-form notes
}

// model returns the database resource for the API representation of the editable fields
func (editable BuildingEditable) model() models.Building {
	return models.Building{
		Name:             editable.Name,
		Address:          editable.Address,
		UnitCount:        editable.UnitCount,
		ConstructionYear: editable.ConstructionYear,
		Staircases:       editable.Staircases,
		Administrator:    editable.Administrator,
		IBAN:             editable.IBAN,
		Bank:             editable.Bank,
		Notes:            editable.Notes,
	}
}

type BuildingLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/buildings/17"`            // The building itself
	Units      string `json:"units" example:"https://example.com/api/v1/buildings/17/units"`     // The building's units
	Residents  string `json:"residents" example:"https://example.com/api/v1/buildings/17/residents"`
	Shares     string `json:"shares" example:"https://example.com/api/v1/buildings/17/shares"`
	Expenses   string `json:"expenses" example:"https://example.com/api/v1/buildings/17/expenses"`
	Allocation string `json:"allocation" example:"https://example.com/api/v1/buildings/17/allocation"`
	Budgets    string `json:"budgets" example:"https://example.com/api/v1/buildings/17/budgets"`
}

type Building struct {
	models.Model
	BuildingEditable
	Links BuildingLinks `json:"links"`
}

// newBuilding returns the API representation of the resource
func newBuilding(c *gin.Context, model models.Building) Building {
	self := fmt.Sprintf("%s/v1/buildings/%d", requestHost(c), model.ID)

	return Building{
		Model: model.Model,
		BuildingEditable: BuildingEditable{
			Name:             model.Name,
			Address:          model.Address,
			UnitCount:        model.UnitCount,
			ConstructionYear: model.ConstructionYear,
			Staircases:       model.Staircases,
			Administrator:    model.Administrator,
			IBAN:             model.IBAN,
			Bank:             model.Bank,
			Notes:            model.Notes,
		},
		Links: BuildingLinks{
			Self:       self,
			Units:      self + "/units",
			Residents:  self + "/residents",
			Shares:     self + "/shares",
			Expenses:   self + "/expenses",
			Allocation: self + "/allocation",
			Budgets:    self + "/budgets",
		},
	}
}

type BuildingListResponse struct {
	Data  []Building `json:"data"`                                                  // List of resources
	Error *string    `json:"error" example:"the building name must not be empty"` // The error, if any occurred
}

type BuildingResponse struct {
	Error *string   `json:"error" example:"the building name must not be empty"` // The error, if any occurred
	Data  *Building `json:"data"`                                                // The resource
}

type BuildingQueryFilter struct {
	Name string `form:"name" filterField:"false"` // By name
}

type Unit struct {
	models.Model
	BuildingID uint64 `json:"buildingId" example:"17"`
	Number     uint   `json:"number" example:"3"` // Position of the unit within the building, starting at 1
}

func newUnit(model models.Unit) Unit {
	return Unit{
		Model:      model.Model,
		BuildingID: model.BuildingID,
		Number:     model.Number,
	}
}

type UnitListResponse struct {
	Data  []Unit  `json:"data"`  // List of resources
	Error *string `json:"error"` // The error, if any occurred
}
