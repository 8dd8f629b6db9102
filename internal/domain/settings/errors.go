package settings

import "errors"

var (
	ErrTaxRuleNotFound = errors.New("tax rule not found")
	ErrInvalidTaxRate  = errors.New("tax rate must be between 0 and 100")
	ErrInvalidTaxName  = errors.New("tax name is required")
)
