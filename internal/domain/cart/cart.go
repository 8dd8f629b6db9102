package cart

import (
	"github.com/shopspring/decimal"

	domcatalog "example.com/flowpos/internal/domain/catalog"
)

// Line is one item-and-quantity entry in a register cart. UnitPrice is
// snapshotted when the line is created: a later catalog price change never
// alters an open sale.
type Line struct {
	ItemID    string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int64
}

// Cart holds the line items for one in-progress sale. Lines keep insertion
// order and are unique per item; a repeated add increments the existing line.
// A Cart has exactly one writer (the register session), so it does no locking
// of its own.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add puts one unit of item into the cart. An existing line grows by one,
// capped at item.Stock: going past the cap mutates nothing and returns
// ErrStockExceeded.
func (c *Cart) Add(item *domcatalog.Product) error {
	if i := c.index(item.ID); i >= 0 {
		if c.lines[i].Quantity >= item.Stock {
			return ErrStockExceeded
		}
		c.lines[i].Quantity++
		return nil
	}

	if item.Stock < 1 {
		return ErrStockExceeded
	}
	c.lines = append(c.lines, Line{
		ItemID:    item.ID,
		Name:      item.Name,
		UnitPrice: item.Price,
		Quantity:  1,
	})
	return nil
}

// SetQuantity sets the line for item to quantity exactly. A quantity below one
// removes the line. A quantity above item.Stock clamps to stock and returns
// ErrStockExceeded; the clamped value is kept.
func (c *Cart) SetQuantity(item *domcatalog.Product, quantity int64) error {
	i := c.index(item.ID)
	if i < 0 {
		return ErrLineNotFound
	}

	if quantity < 1 {
		c.removeAt(i)
		return nil
	}
	if quantity > item.Stock {
		if item.Stock < 1 {
			c.removeAt(i)
			return ErrStockExceeded
		}
		c.lines[i].Quantity = item.Stock
		return ErrStockExceeded
	}

	c.lines[i].Quantity = quantity
	return nil
}

// Remove deletes the line for itemID. Removing an absent line is a no-op.
func (c *Cart) Remove(itemID string) {
	if i := c.index(itemID); i >= 0 {
		c.removeAt(i)
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines returns a copy so callers cannot mutate the cart behind its back.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Subtotal is the exact sum of unitPrice*quantity over all lines, rounded to
// the cent once at the end.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity)))
	}
	return sum.Round(2)
}

// Tax is round2(subtotal * rate), half-up.
func (c *Cart) Tax(rate decimal.Decimal) decimal.Decimal {
	return c.Subtotal().Mul(rate).Round(2)
}

// Total is subtotal + tax, both already at cent precision, so the identity
// Total(r) == Subtotal() + Tax(r) holds exactly.
func (c *Cart) Total(rate decimal.Decimal) decimal.Decimal {
	return c.Subtotal().Add(c.Tax(rate))
}

func (c *Cart) index(itemID string) int {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}
