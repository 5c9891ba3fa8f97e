package models_test

import (
	"testing"

	"github.com/condoboard/backend/internal/models"
	"github.com/condoboard/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestShareEntryValidation() {
	user := suite.createTestUser(models.User{})
	building := suite.createTestBuilding(models.Building{UserID: user.ID})
	units := suite.units(building)

	tests := []struct {
		name  string
		entry models.ShareEntry
		err   error
	}{
		{"invalid table", models.ShareEntry{BuildingID: building.ID, UnitID: units[0].ID, Table: "Z", Value: 500}, models.ErrTableInvalid},
		{"negative value", models.ShareEntry{BuildingID: building.ID, UnitID: units[0].ID, Table: types.TableA, Value: -1}, models.ErrShareValueNegative},
		{"value too large", models.ShareEntry{BuildingID: building.ID, UnitID: units[0].ID, Table: types.TableA, Value: 1001}, models.ErrShareValueTooLarge},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.entry).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestShareEntryUnique() {
	user := suite.createTestUser(models.User{})
	building := suite.createTestBuilding(models.Building{UserID: user.ID})
	units := suite.units(building)

	entry := models.ShareEntry{BuildingID: building.ID, UnitID: units[0].ID, Table: types.TableA, Value: 500}
	require.NoError(suite.T(), models.DB.Create(&entry).Error)

	duplicate := models.ShareEntry{BuildingID: building.ID, UnitID: units[0].ID, Table: types.TableA, Value: 300}
	err := models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrShareNotUnique)
}

func (suite *TestSuiteStandard) TestReplaceShares() {
	user := suite.createTestUser(models.User{})
	building := suite.createTestBuilding(models.Building{UserID: user.ID, UnitCount: 3})
	units := suite.units(building)

	err := models.ReplaceShares(models.DB, building, "Z", []int64{500, 300, 200})
	assert.ErrorIs(suite.T(), err, models.ErrTableInvalid)

	err = models.ReplaceShares(models.DB, building, types.TableA, []int64{500, 500})
	assert.ErrorIs(suite.T(), err, models.ErrShareCountMismatch)

	err = models.ReplaceShares(models.DB, building, types.TableA, []int64{500, 300, 300})
	assert.ErrorIs(suite.T(), err, models.ErrShareSumInvalid)

	err = models.ReplaceShares(models.DB, building, types.TableA, []int64{500, 300, 200})
	require.NoError(suite.T(), err)

	var entries []models.ShareEntry
	err = models.DB.Where(&models.ShareEntry{BuildingID: building.ID, Table: types.TableA}).Order("unit_id ASC").Find(&entries).Error
	require.NoError(suite.T(), err)
	require.Len(suite.T(), entries, 3)
	assert.Equal(suite.T(), units[0].ID, entries[0].UnitID)
	assert.Equal(suite.T(), int64(500), entries[0].Value)

	// Replacing again overwrites, it does not accumulate.
	err = models.ReplaceShares(models.DB, building, types.TableA, []int64{400, 400, 200})
	require.NoError(suite.T(), err)

	err = models.DB.Where(&models.ShareEntry{BuildingID: building.ID, Table: types.TableA}).Order("unit_id ASC").Find(&entries).Error
	require.NoError(suite.T(), err)
	require.Len(suite.T(), entries, 3)
	assert.Equal(suite.T(), int64(400), entries[0].Value)
}

func (suite *TestSuiteStandard) TestShareValidation() {
	user := suite.createTestUser(models.User{})
	building := suite.createTestBuilding(models.Building{UserID: user.ID})
	units := suite.units(building)

	suite.setShares(building, types.TableA, []int64{600, 400})

	// Table B is left with a single inconsistent entry.
	entry := models.ShareEntry{BuildingID: building.ID, UnitID: units[0].ID, Table: types.TableB, Value: 300}
	require.NoError(suite.T(), models.DB.Create(&entry).Error)

	statuses, err := models.ShareValidation(models.DB, building)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), statuses, len(types.Tables), "every table has to appear in the report")

	byTable := make(map[types.Table]models.ShareTableStatus)
	for _, status := range statuses {
		byTable[status.Table] = status
	}

	assert.True(suite.T(), byTable[types.TableA].Valid)
	assert.Equal(suite.T(), int64(1000), byTable[types.TableA].Sum)

	assert.False(suite.T(), byTable[types.TableB].Complete)
	assert.False(suite.T(), byTable[types.TableB].Valid)
	assert.Equal(suite.T(), 1, byTable[types.TableB].Entries)

	assert.False(suite.T(), byTable[types.TableC].Valid)
	assert.Zero(suite.T(), byTable[types.TableC].Entries)
}
