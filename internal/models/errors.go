package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Validation errors raised by model hooks at write time.
var (
	ErrUsernameRequired           = errors.New("the username must not be empty")
	ErrPasswordTooShort           = errors.New("the password needs to be at least 8 characters long")
	ErrBuildingUnitCountInvalid   = errors.New("a building needs at least one unit")
	ErrBuildingUnitCountImmutable = errors.New("the number of units cannot be changed after the building has been created")
	ErrBuildingNameRequired       = errors.New("the building name must not be empty")
	ErrResidentNameRequired       = errors.New("residents need both a first and a last name")
	ErrResidentRoleInvalid        = errors.New("the role must be one of 'owner', 'tenant' or 'owner-tenant'")
	ErrResidentUnitMismatch       = errors.New("the unit does not belong to the resident's building")
	ErrTableInvalid               = errors.New("the share table code must be one of A, B, C, D, E, F, G, H, I, L")
	ErrPolicyInvalid              = errors.New("the policy must be one of 'owner', 'tenant', '50/50' or 'custom'")
	ErrShareValueNegative         = errors.New("share values must not be negative")
	ErrShareValueTooLarge         = errors.New("share values must not exceed 1000")
	ErrShareCountMismatch         = errors.New("a share table needs exactly one value per unit")
	ErrShareSumInvalid            = errors.New("the values of a share table must sum to 1000")
	ErrExpenseAmountNotPositive   = errors.New("expense amounts must be larger than zero")
	ErrCustomPercentagesInvalid   = errors.New("custom allocation percentages must be between 0 and 100 and sum to 100")
	ErrForecastMonthInvalid       = errors.New("the forecast month must be between 1 and 12")
	ErrBudgetYearInvalid          = errors.New("the budget year must be 1900 or later")
	ErrBudgetYearNotUnique        = errors.New("a budget already exists for this building and year")
	ErrShareNotUnique             = errors.New("a share value already exists for this unit and table")
	ErrUsernameTaken              = errors.New("the username is already taken")
)
