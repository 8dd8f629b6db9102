package cart

import "errors"

var (
	// ErrStockExceeded reports a quantity request above the available stock.
	// The cart never goes past the clamp; callers surface the condition and
	// re-read the cart.
	ErrStockExceeded = errors.New("requested quantity exceeds available stock")

	ErrLineNotFound = errors.New("cart line not found")
)
