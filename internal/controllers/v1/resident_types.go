package v1

import (
	"github.com/condoboard/backend/internal/models"
	"github.com/condoboard/backend/internal/types"
)

type ResidentEditable struct {
	UnitID    uint64     `json:"unitId" example:"4"`                               // The unit the resident lives in or owns
	FirstName string     `json:"firstName" example:"Maria" default:""`             // First name
	LastName  string     `json:"lastName" example:"Rossi" default:""`              // Last name
	Email     string     `json:"email" example:"maria.rossi@example.com" default:""` // Contact email, optional
	Role      types.Role `json:"role" example:"owner"`                             // One of "owner", "tenant", "owner-tenant"
}

// model returns the database resource for the API representation of the editable fields
func (editable ResidentEditable) model() models.Resident {
	return models.Resident{
		UnitID:    editable.UnitID,
		FirstName: editable.FirstName,
		LastName:  editable.LastName,
		Email:     editable.Email,
		Role:      editable.Role,
	}
}

type ResidentRecord struct {
	models.Model
	ResidentEditable
	BuildingID uint64 `json:"buildingId" example:"17"`
}

// newResident returns the API representation of the resource
func newResident(model models.Resident) ResidentRecord {
	return ResidentRecord{
		Model: model.Model,
		ResidentEditable: ResidentEditable{
			UnitID:    model.UnitID,
			FirstName: model.FirstName,
			LastName:  model.LastName,
			Email:     model.Email,
			Role:      model.Role,
		},
		BuildingID: model.BuildingID,
	}
}

type ResidentListResponse struct {
	Data  []ResidentRecord `json:"data"`  // List of resources
	Error *string          `json:"error"` // The error, if any occurred
}

type ResidentResponse struct {
	Error *string         `json:"error"` // The error, if any occurred
	Data  *ResidentRecord `json:"data"`  // The resource
}

type ResidentQueryFilter struct {
	UnitID uint64 `form:"unit"` // By unit ID
	Role   string `form:"role"` // By role
}
