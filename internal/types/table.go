// Package types implements special types for the condoboard backend.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// Table identifies one of the ten ownership-share schedules of a building.
// The set of codes is fixed: A through I plus L, following the Italian
// convention of skipping J.
type Table string

const (
	TableA Table = "A"
	TableB Table = "B"
	TableC Table = "C"
	TableD Table = "D"
	TableE Table = "E"
	TableF Table = "F"
	TableG Table = "G"
	TableH Table = "H"
	TableI Table = "I"
	TableL Table = "L"
)

// Tables lists all valid share table codes in order.
var Tables = []Table{TableA, TableB, TableC, TableD, TableE, TableF, TableG, TableH, TableI, TableL}

var ErrInvalidTable = errors.New("the share table code must be one of A, B, C, D, E, F, G, H, I, L")

// Valid reports whether t is one of the ten defined table codes.
func (t Table) Valid() bool {
	switch t {
	case TableA, TableB, TableC, TableD, TableE, TableF, TableG, TableH, TableI, TableL:
		return true
	}

	return false
}

// ParseTable parses a table code. Lower case input is accepted.
func ParseTable(s string) (Table, error) {
	t := Table(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w, got %q", ErrInvalidTable, s)
	}

	return t, nil
}

// UnmarshalParam implements binding for URI and query parameters.
func (t *Table) UnmarshalParam(p string) error {
	if p == "" {
		*t = ""
		return nil
	}

	parsed, err := ParseTable(p)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

func (t Table) String() string {
	return string(t)
}

// GormDataType defines the data type used by gorm for the type.
func (Table) GormDataType() string {
	return "varchar(1)"
}
