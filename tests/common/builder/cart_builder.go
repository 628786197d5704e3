//go:build unit || e2e

package builder

import (
	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/domain/pricing"
	reqdto "storefront-checkout/internal/handler/dto/request"
	"storefront-checkout/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	ID                   uuid.UUID
	Name                 string
	Price                decimal.Decimal
	Quantity             int
	Discount             *pricing.Discount
	RequiresPrescription bool
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:       uuid.New(),
		Name:     "Vitamin D3 1000IU",
		Price:    decimal.RequireFromString("12.50"),
		Quantity: 1,
	}
}

func (p *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(p)
	return p
}

func (p *ProductBuilder) WithID(id uuid.UUID) *ProductBuilder {
	p.ID = id
	return p
}

func (p *ProductBuilder) WithName(name string) *ProductBuilder {
	p.Name = name
	return p
}

func (p *ProductBuilder) WithPrice(price string) *ProductBuilder {
	p.Price = decimal.RequireFromString(price)
	return p
}

func (p *ProductBuilder) WithQuantity(qty int) *ProductBuilder {
	p.Quantity = qty
	return p
}

func (p *ProductBuilder) WithPercentOff(percent int64) *ProductBuilder {
	d, err := pricing.NewPercentageDiscount(uuid.New(), pricing.SpecificProducts(p.ID), decimal.NewFromInt(percent), 0)
	if err != nil {
		panic(err)
	}
	p.Discount = &d
	return p
}

func (p *ProductBuilder) AsPrescription() *ProductBuilder {
	p.RequiresPrescription = true
	return p
}

func (p *ProductBuilder) BuildDomain() cart.Product {
	return cart.Product{
		ID:                   p.ID,
		Name:                 p.Name,
		Price:                p.Price,
		RequiresPrescription: p.RequiresPrescription,
		Discount:             p.Discount,
	}
}

func (p *ProductBuilder) BuildAddItemRequestDTO() reqdto.AddItemRequest {
	return reqdto.AddItemRequest{ProductID: p.ID}
}

type CartBuilder struct {
	products []*ProductBuilder
	coupon   *pricing.Discount
}

func NewCartBuilder() *CartBuilder {
	return &CartBuilder{}
}

func (b *CartBuilder) WithProduct(p *ProductBuilder) *CartBuilder {
	b.products = append(b.products, p)
	return b
}

func (b *CartBuilder) WithCoupon(code string, percent int64) *CartBuilder {
	d, err := pricing.ReconstructDiscount(uuid.New(), code, pricing.AllProducts(), pricing.KindPercentage, decimal.NewFromInt(percent), 0)
	if err != nil {
		panic(err)
	}
	b.coupon = &d
	return b
}

func (b *CartBuilder) BuildDomain() *cart.Cart {
	c := cart.New()
	for _, p := range b.products {
		product := p.BuildDomain()
		for i := 0; i < p.Quantity; i++ {
			if err := c.Add(product); err != nil {
				panic(err)
			}
		}
	}
	if b.coupon != nil {
		c.ApplyDiscount(*b.coupon)
	}
	return c
}

func (b *CartBuilder) BuildView() *queries.CartView {
	return queries.NewCartView(b.BuildDomain())
}
