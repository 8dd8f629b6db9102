package customer

import "errors"

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvalidType      = errors.New("invalid customer type")
	ErrEmailAlreadyUsed = errors.New("customer email already used")
)
