package user

import (
	"errors"
	"strings"
)

// RoleCode is the fixed set of staff roles on a register. There are no
// user-defined roles; the set matches what the dashboard exposes.
type RoleCode string

const (
	RoleCodeAdmin   RoleCode = "ADMIN"
	RoleCodeManager RoleCode = "MANAGER"
	RoleCodeCashier RoleCode = "CASHIER"
)

func (c RoleCode) IsValid() bool {
	switch c {
	case RoleCodeAdmin, RoleCodeManager, RoleCodeCashier:
		return true
	default:
		return false
	}
}

func (c RoleCode) IsAdmin() bool {
	return c == RoleCodeAdmin
}

var ErrInvalidRoleCode = errors.New("invalid role code")

func ParseRoleCode(s string) (RoleCode, error) {
	c := RoleCode(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", ErrInvalidRoleCode
	}
	return c, nil
}
