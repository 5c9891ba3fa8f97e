package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/condoboard/backend/internal/controllers/v1"
	"github.com/condoboard/backend/test"
	"github.com/stretchr/testify/assert"
)

// TestOptions verifies that the OPTIONS requests return the correct
// allowed methods.
func (suite *TestSuiteStandard) TestOptions() {
	building := suite.createTestBuilding(v1.BuildingEditable{})

	tests := []struct {
		path  string
		allow string
	}{
		{"/v1/auth/login", "POST"},
		{"/v1/buildings", "GET, POST"},
		{fmt.Sprintf("/v1/buildings/%d", building.ID), "GET, PATCH, DELETE"},
		{fmt.Sprintf("/v1/buildings/%d/units", building.ID), "GET"},
		{fmt.Sprintf("/v1/buildings/%d/shares/A", building.ID), "GET, PUT"},
		{fmt.Sprintf("/v1/buildings/%d/allocation/recompute", building.ID), "POST"},
		{fmt.Sprintf("/v1/buildings/%d/budgets/2027/generate", building.ID), "POST"},
		{"/v1/residents/1", "PATCH, DELETE"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com"+tt.path, "", suite.authHeaders())
			test.AssertHTTPStatus(t, http.StatusNoContent, &r)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}
