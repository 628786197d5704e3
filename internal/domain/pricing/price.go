package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Item is what the engine needs to know about a cart line.
type Item struct {
	ProductID uuid.UUID
	BasePrice decimal.Decimal
	Quantity  int
}

// EffectivePrice returns the unit price of item after d. It never returns a
// value below zero and never panics: every case that cannot be priced falls
// back to the base price.
func EffectivePrice(item Item, d *Discount) decimal.Decimal {
	base := item.BasePrice
	if d == nil {
		return base
	}
	if !d.AppliesTo(item.ProductID) {
		return base
	}
	if !d.ThresholdMet(item.Quantity) {
		return base
	}

	var price decimal.Decimal
	switch d.Kind {
	case KindPercentage:
		price = base.Sub(base.Mul(d.Value).Div(hundred))
	case KindFixedAmount:
		price = base.Sub(d.Value)
	default:
		// Unknown kinds fail open to the base price.
		return base
	}

	if price.IsNegative() {
		return decimal.Zero
	}
	return price
}

// LineTotal is the effective unit price times quantity.
func LineTotal(item Item, d *Discount) decimal.Decimal {
	return EffectivePrice(item, d).Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// Saving is how much d takes off one unit of item.
func Saving(item Item, d *Discount) decimal.Decimal {
	return item.BasePrice.Sub(EffectivePrice(item, d))
}

// BestDiscount picks the candidate with the largest unit saving for item at
// its current quantity. Only when nothing applies yet does it fall back to
// the best bulk discount judged at its own threshold, which stays inert until
// the line reaches it. Ties keep the earliest candidate. Returns nil when
// nothing saves anything.
func BestDiscount(item Item, candidates []Discount) *Discount {
	if best := pickLargestSaving(candidates, func(Discount) Item { return item }); best != nil {
		return best
	}
	return pickLargestSaving(candidates, func(d Discount) Item {
		probe := item
		if probe.Quantity < d.MinQuantity {
			probe.Quantity = d.MinQuantity
		}
		return probe
	})
}

func pickLargestSaving(candidates []Discount, at func(Discount) Item) *Discount {
	var (
		best       *Discount
		bestSaving = decimal.Zero
	)
	for i := range candidates {
		saving := Saving(at(candidates[i]), &candidates[i])
		if saving.GreaterThan(bestSaving) {
			picked := candidates[i]
			best = &picked
			bestSaving = saving
		}
	}
	return best
}
