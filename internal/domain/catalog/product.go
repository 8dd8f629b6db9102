package catalog

import "github.com/shopspring/decimal"

type Product struct {
	ID       string
	Name     string
	SKU      string
	Price    decimal.Decimal
	Cost     decimal.Decimal
	Category string
	Stock    int64
	IsActive bool
}

type ListFilter struct {
	Category   string
	Search     string
	OnlyActive bool
}
