package types

import (
	"errors"
	"fmt"
)

// Policy selects how an expense is split between owners and tenants.
type Policy string

const (
	// PolicyOwner charges owner-role residents only.
	PolicyOwner Policy = "owner"
	// PolicyTenant charges tenant-role residents only.
	PolicyTenant Policy = "tenant"
	// PolicyFiftyFifty charges owners and tenants half each. A role that is
	// alone in its unit bears the full amount.
	PolicyFiftyFifty Policy = "50/50"
	// PolicyCustom charges explicit owner and tenant percentages carried on
	// the expense itself.
	PolicyCustom Policy = "custom"
)

var ErrInvalidPolicy = errors.New("the allocation policy must be one of owner, tenant, 50/50, custom")

// Valid reports whether p is a defined policy.
func (p Policy) Valid() bool {
	switch p {
	case PolicyOwner, PolicyTenant, PolicyFiftyFifty, PolicyCustom:
		return true
	}

	return false
}

// ParsePolicy parses a policy string.
func ParsePolicy(s string) (Policy, error) {
	p := Policy(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w, got %q", ErrInvalidPolicy, s)
	}

	return p, nil
}

func (p Policy) String() string {
	return string(p)
}
