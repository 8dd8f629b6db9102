package settings

import "github.com/shopspring/decimal"

// TaxRule is one named tax line, with Rate in percent (7.5 means 7.5%).
type TaxRule struct {
	ID               string
	Name             string
	Rate             decimal.Decimal
	AppliesTo        string
	IncludedInPrices bool
	Enabled          bool
}

type StoreProfile struct {
	Name     string
	Address  string
	Phone    string
	Currency string
}

type ReceiptConfig struct {
	HeaderText   string
	FooterText   string
	PrintReceipt bool
	EmailReceipt bool
}
