package domain

import (
	"fmt"

	"github.com/light-bringer/aptmart-service/internal/pkg/money"
)

// MaxLineQuantity bounds the quantity of one product in an order.
const MaxLineQuantity = 10000

// Line is one product in an order.
type Line struct {
	ProductID string       `json:"product_id"`
	Name      string       `json:"name"`
	UnitPrice *money.Money `json:"unit_price"`
	Quantity  int64        `json:"quantity"`
}

// Subtotal is unit price times quantity.
func (l Line) Subtotal() *money.Money {
	return l.UnitPrice.MulInt(l.Quantity)
}

// Cart collects order lines. Adding a product twice sums the quantities.
type Cart struct {
	lines []Line
	index map[string]int
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{index: make(map[string]int)}
}

// Add merges l into the cart. Negative quantities reduce an existing line.
// A line whose quantity leaves [-MaxLineQuantity, MaxLineQuantity] is rejected.
func (c *Cart) Add(l Line) error {
	if l.Quantity > MaxLineQuantity || l.Quantity < -MaxLineQuantity {
		return fmt.Errorf("%w: %s", ErrQuantityTooLarge, l.ProductID)
	}
	if i, ok := c.index[l.ProductID]; ok {
		merged := c.lines[i].Quantity + l.Quantity
		if merged > MaxLineQuantity {
			return fmt.Errorf("%w: %s", ErrQuantityTooLarge, l.ProductID)
		}
		c.lines[i].Quantity = merged
		return nil
	}
	c.index[l.ProductID] = len(c.lines)
	c.lines = append(c.lines, l)
	return nil
}

// Lines returns lines with a positive quantity in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.lines))
	for _, l := range c.lines {
		if l.Quantity > 0 {
			out = append(out, l)
		}
	}
	return out
}

// Total sums the subtotals of Lines.
func (c *Cart) Total() *money.Money {
	return Total(c.Lines())
}

// IsEmpty reports whether no line has a positive quantity.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines()) == 0
}

// Total sums line subtotals.
func Total(lines []Line) *money.Money {
	total := money.Zero()
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
