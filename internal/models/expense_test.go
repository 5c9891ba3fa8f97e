package models_test

import (
	"testing"
	"time"

	"github.com/condoboard/backend/internal/models"
	"github.com/condoboard/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExpenseCreateInvalid() {
	user := suite.createTestUser(models.User{})
	building := suite.createTestBuilding(models.Building{UserID: user.ID})

	tests := []struct {
		name    string
		expense models.Expense
		err     error
	}{
		{
			"zero amount",
			models.Expense{BuildingID: building.ID, Table: types.TableA, Policy: types.PolicyOwner},
			models.ErrExpenseAmountNotPositive,
		},
		{
			"negative amount",
			models.Expense{BuildingID: building.ID, Amount: decimal.NewFromInt(-10), Table: types.TableA, Policy: types.PolicyOwner},
			models.ErrExpenseAmountNotPositive,
		},
		{
			"invalid table",
			models.Expense{BuildingID: building.ID, Amount: decimal.NewFromInt(10), Table: "K", Policy: types.PolicyOwner},
			models.ErrTableInvalid,
		},
		{
			"invalid policy",
			models.Expense{BuildingID: building.ID, Amount: decimal.NewFromInt(10), Table: types.TableA, Policy: "split"},
			models.ErrPolicyInvalid,
		},
		{
			"custom percentages missing",
			models.Expense{BuildingID: building.ID, Amount: decimal.NewFromInt(10), Table: types.TableA, Policy: types.PolicyCustom},
			models.ErrCustomPercentagesInvalid,
		},
		{
			"custom percentages not summing to 100",
			models.Expense{BuildingID: building.ID, Amount: decimal.NewFromInt(10), Table: types.TableA, Policy: types.PolicyCustom, OwnerPct: decimal.NewFromInt(70), TenantPct: decimal.NewFromInt(40)},
			models.ErrCustomPercentagesInvalid,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.expense).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseDateDefault() {
	user := suite.createTestUser(models.User{})
	building := suite.createTestBuilding(models.Building{UserID: user.ID})

	expense := suite.createTestExpense(models.Expense{BuildingID: building.ID})
	assert.False(suite.T(), expense.Date.IsZero(), "the date should default to the current time")
	assert.Equal(suite.T(), time.UTC, expense.Date.Location())
}

func (suite *TestSuiteStandard) TestExpenseCustomPolicy() {
	user := suite.createTestUser(models.User{})
	building := suite.createTestBuilding(models.Building{UserID: user.ID})

	expense := suite.createTestExpense(models.Expense{
		BuildingID: building.ID,
		Policy:     types.PolicyCustom,
		OwnerPct:   decimal.NewFromInt(70),
		TenantPct:  decimal.NewFromInt(30),
	})
	assert.NotZero(suite.T(), expense.ID)
}

// TestExpenseUpdatePolicy verifies that switching the policy to custom
// is validated together with the percentages of the same update.
func (suite *TestSuiteStandard) TestExpenseUpdatePolicy() {
	user := suite.createTestUser(models.User{})
	building := suite.createTestBuilding(models.Building{UserID: user.ID})
	expense := suite.createTestExpense(models.Expense{BuildingID: building.ID})

	err := models.DB.Model(&expense).Select("", "Policy").Updates(models.Expense{Policy: types.PolicyCustom}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCustomPercentagesInvalid)

	err = models.DB.Model(&expense).Select("", "Policy", "OwnerPct", "TenantPct").Updates(models.Expense{
		Policy:    types.PolicyCustom,
		OwnerPct:  decimal.NewFromInt(60),
		TenantPct: decimal.NewFromInt(40),
	}).Error
	require.NoError(suite.T(), err)

	err = models.DB.Model(&expense).Select("", "Amount").Updates(models.Expense{Amount: decimal.NewFromInt(-5)}).Error
	assert.ErrorIs(suite.T(), err, models.ErrExpenseAmountNotPositive)
}
