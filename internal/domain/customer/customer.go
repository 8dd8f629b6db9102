package customer

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeRetail    Type = "RETAIL"
	TypeWholesale Type = "WHOLESALE"
	TypeOnline    Type = "ONLINE"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeRetail, TypeWholesale, TypeOnline:
		return true
	default:
		return false
	}
}

type Customer struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	Address      string
	Type         Type
	TotalSpent   decimal.Decimal
	LastPurchase time.Time
}

type ListFilter struct {
	Type   *Type
	Search string
}
