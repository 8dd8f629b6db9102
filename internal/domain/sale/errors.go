package sale

import "errors"

var (
	ErrSaleNotFound   = errors.New("sale not found")
	ErrEmptySale      = errors.New("no items to check out")
	ErrInvalidPayment = errors.New("invalid payment method")
	ErrCheckoutFailed = errors.New("checkout failed")
)
