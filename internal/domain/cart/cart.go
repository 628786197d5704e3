package cart

import (
	"errors"

	"storefront-checkout/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativeBasePrice = errors.New("base price cannot be negative")
	ErrMissingProductID  = errors.New("product id is required")
)

// Product is the add-time view of a catalogue product. Discount is the
// automatic storewide or targeted discount resolved when the product was added.
type Product struct {
	ID                   uuid.UUID
	Name                 string
	Price                decimal.Decimal
	OriginalPrice        *decimal.Decimal
	RequiresPrescription bool
	Discount             *pricing.Discount
}

// Line is one product entry. The JSON shape is the persisted record format.
type Line struct {
	ProductID            uuid.UUID         `json:"product_id"`
	Name                 string            `json:"name"`
	BasePrice            decimal.Decimal   `json:"base_price"`
	Quantity             int               `json:"quantity"`
	Discount             *pricing.Discount `json:"discount,omitempty"`
	LockedOriginalPrice  *decimal.Decimal  `json:"locked_original_price,omitempty"`
	RequiresPrescription bool              `json:"requires_prescription,omitempty"`
}

func (l Line) Item() pricing.Item {
	return pricing.Item{ProductID: l.ProductID, BasePrice: l.BasePrice, Quantity: l.Quantity}
}

func (l Line) EffectivePrice() decimal.Decimal {
	return pricing.EffectivePrice(l.Item(), l.Discount)
}

func (l Line) Total() decimal.Decimal {
	return pricing.LineTotal(l.Item(), l.Discount)
}

// Cart keeps lines in insertion order. The zero value is an empty cart.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Reconstruct rebuilds a cart from persisted lines, dropping records that
// could never have been produced by the mutators.
func Reconstruct(lines []Line) *Cart {
	c := &Cart{}
	for _, l := range lines {
		if l.ProductID == uuid.Nil || l.Quantity < 1 || l.BasePrice.IsNegative() {
			continue
		}
		if c.indexOf(l.ProductID) >= 0 {
			continue
		}
		c.lines = append(c.lines, l)
	}
	return c
}

// Add increments an existing line by one or inserts a new line with quantity 1.
// An existing line keeps the discount it was added with.
func (c *Cart) Add(p Product) error {
	if p.ID == uuid.Nil {
		return ErrMissingProductID
	}
	if p.Price.IsNegative() {
		return ErrNegativeBasePrice
	}

	if i := c.indexOf(p.ID); i >= 0 {
		c.lines[i].Quantity++
		return nil
	}

	c.lines = append(c.lines, Line{
		ProductID:            p.ID,
		Name:                 p.Name,
		BasePrice:            p.Price,
		Quantity:             1,
		Discount:             p.Discount,
		LockedOriginalPrice:  p.OriginalPrice,
		RequiresPrescription: p.RequiresPrescription,
	})
	return nil
}

// Remove is a no-op for absent products.
func (c *Cart) Remove(productID uuid.UUID) {
	if i := c.indexOf(productID); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// SetQuantity removes the line when qty < 1. It reports whether the product was present.
func (c *Cart) SetQuantity(productID uuid.UUID, qty int) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	if qty < 1 {
		c.Remove(productID)
		return true
	}
	c.lines[i].Quantity = qty
	return true
}

func (c *Cart) Clear() {
	c.lines = nil
}

// ApplyDiscount replaces the discount of every line in d's scope. Replacing
// rather than stacking keeps repeated application idempotent. It returns the
// number of lines touched.
func (c *Cart) ApplyDiscount(d pricing.Discount) int {
	touched := 0
	for i := range c.lines {
		if !d.AppliesTo(c.lines[i].ProductID) {
			continue
		}
		applied := d
		c.lines[i].Discount = &applied
		touched++
	}
	return touched
}

// CouponCode returns the code of the first line discount that carries one.
func (c *Cart) CouponCode() string {
	for _, l := range c.lines {
		if l.Discount != nil && l.Discount.Code != "" {
			return l.Discount.Code
		}
	}
	return ""
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Total())
	}
	return total
}

// Subtotal is the undiscounted sum.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.BasePrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Line(productID uuid.UUID) (Line, bool) {
	if i := c.indexOf(productID); i >= 0 {
		return c.lines[i], true
	}
	return Line{}, false
}

// Lines returns a copy; mutating it does not affect the cart.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) indexOf(productID uuid.UUID) int {
	for i, l := range c.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}
