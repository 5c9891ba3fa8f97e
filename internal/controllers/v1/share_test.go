package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/condoboard/backend/internal/controllers/v1"
	"github.com/condoboard/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSharePut() {
	building := suite.createTestBuilding(v1.BuildingEditable{UnitCount: 2})

	table := suite.putTestShares(building.ID, "A", []int64{600, 400})
	assert.Equal(suite.T(), int64(1000), table.Sum)
	require.Len(suite.T(), table.Entries, 2)
	assert.Equal(suite.T(), int64(600), table.Entries[0].Value)
}

// TestSharePutLowercase verifies that the table code in the URI is not
// case sensitive.
func (suite *TestSuiteStandard) TestSharePutLowercase() {
	building := suite.createTestBuilding(v1.BuildingEditable{UnitCount: 2})

	url := fmt.Sprintf("http://example.com/v1/buildings/%d/shares/a", building.ID)
	r := suite.authRequest(http.MethodPut, url, v1.ShareEditable{Values: []int64{500, 500}})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)
}

func (suite *TestSuiteStandard) TestSharePutInvalid() {
	building := suite.createTestBuilding(v1.BuildingEditable{UnitCount: 2})

	tests := []struct {
		name   string
		table  string
		values []int64
	}{
		{"unknown table", "K", []int64{600, 400}},
		{"wrong number of values", "A", []int64{1000}},
		{"sum below 1000", "A", []int64{600, 300}},
		{"negative value", "A", []int64{1100, -100}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			url := fmt.Sprintf("http://example.com/v1/buildings/%d/shares/%s", building.ID, tt.table)
			r := test.Request(t, http.MethodPut, url, marshal(t, v1.ShareEditable{Values: tt.values}), suite.authHeaders())
			test.AssertHTTPStatus(t, http.StatusBadRequest, &r)
		})
	}
}

func (suite *TestSuiteStandard) TestSharesGet() {
	building := suite.createTestBuilding(v1.BuildingEditable{UnitCount: 2})
	suite.putTestShares(building.ID, "B", []int64{700, 300})
	suite.putTestShares(building.ID, "A", []int64{600, 400})

	url := fmt.Sprintf("http://example.com/v1/buildings/%d/shares", building.ID)
	r := suite.authRequest(http.MethodGet, url, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.ShareListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 2)
	assert.EqualValues(suite.T(), "A", response.Data[0].Table, "tables have to be returned in code order")
	assert.EqualValues(suite.T(), "B", response.Data[1].Table)
}

func (suite *TestSuiteStandard) TestShareValidation() {
	building := suite.createTestBuilding(v1.BuildingEditable{UnitCount: 2})
	suite.putTestShares(building.ID, "A", []int64{600, 400})

	url := fmt.Sprintf("http://example.com/v1/buildings/%d/shares/validation", building.ID)
	r := suite.authRequest(http.MethodGet, url, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.ShareValidationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 10)

	assert.True(suite.T(), response.Data[0].Valid, "table A should be valid")
	assert.False(suite.T(), response.Data[1].Valid, "table B has no entries")
}
