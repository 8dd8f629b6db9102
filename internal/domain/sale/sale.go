package sale

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentCard PaymentMethod = "CARD"
)

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCash, PaymentCard:
		return true
	default:
		return false
	}
}

type Sale struct {
	ID         string
	RegisterID string
	CustomerID string
	CashierID  int64
	Lines      []Line
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	Total      decimal.Decimal
	TaxRate    decimal.Decimal
	Payment    PaymentMethod
	CreatedAt  time.Time
}

type Line struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int64
}

type ListFilter struct {
	RegisterID string
	From       time.Time
	To         time.Time
}
