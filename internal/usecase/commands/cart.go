package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/cart.go -package=mock_commands

import (
	"context"
	"log/slog"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/domain/pricing"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type ApplyCouponResult struct {
	Cart          *cart.Cart
	Discount      pricing.Discount
	LinesAffected int
}

type CartCommands interface {
	AddItem(ctx context.Context, shopperID, productID uuid.UUID) (*cart.Cart, error)
	SetQuantity(ctx context.Context, shopperID, productID uuid.UUID, qty int) (*cart.Cart, error)
	RemoveItem(ctx context.Context, shopperID, productID uuid.UUID) (*cart.Cart, error)
	Clear(ctx context.Context, shopperID uuid.UUID) error
	ApplyCoupon(ctx context.Context, shopperID uuid.UUID, code string) (*ApplyCouponResult, error)
}

// CartObserver is told about every persisted cart change. Notifications may
// arrive out of order, so observers read the current cart from the store.
type CartObserver interface {
	CartChanged(ctx context.Context, shopperID uuid.UUID)
}

type cartUseCaseImpl struct {
	uow      shared.UnitOfWork
	store    shared.CartStore
	coupons  CouponResolver
	locks    *ShopperLocks
	observer CartObserver
	clock    clock.Clock
	logger   *slog.Logger
}

func NewCartUseCase(
	uow shared.UnitOfWork,
	store shared.CartStore,
	coupons CouponResolver,
	locks *ShopperLocks,
	observer CartObserver,
	clk clock.Clock,
	logger *slog.Logger,
) CartCommands {
	return &cartUseCaseImpl{
		uow:      uow,
		store:    store,
		coupons:  coupons,
		locks:    locks,
		observer: observer,
		clock:    clk,
		logger:   logger,
	}
}

func (uc *cartUseCaseImpl) AddItem(ctx context.Context, shopperID, productID uuid.UUID) (*cart.Cart, error) {
	product, err := uc.productForCart(ctx, productID)
	if err != nil {
		return nil, err
	}

	return uc.mutate(ctx, shopperID, func(c *cart.Cart) error {
		return c.Add(*product)
	})
}

func (uc *cartUseCaseImpl) SetQuantity(ctx context.Context, shopperID, productID uuid.UUID, qty int) (*cart.Cart, error) {
	return uc.mutate(ctx, shopperID, func(c *cart.Cart) error {
		if !c.SetQuantity(productID, qty) && qty >= 1 {
			return errs.ErrCartItemNotFound
		}
		return nil
	})
}

func (uc *cartUseCaseImpl) RemoveItem(ctx context.Context, shopperID, productID uuid.UUID) (*cart.Cart, error) {
	return uc.mutate(ctx, shopperID, func(c *cart.Cart) error {
		c.Remove(productID)
		return nil
	})
}

func (uc *cartUseCaseImpl) Clear(ctx context.Context, shopperID uuid.UUID) error {
	_, err := uc.mutate(ctx, shopperID, func(c *cart.Cart) error {
		c.Clear()
		return nil
	})
	return err
}

// ApplyCoupon replaces the discount of every in-scope line with the coupon's.
// Reapplying the same code therefore recomputes instead of stacking.
func (uc *cartUseCaseImpl) ApplyCoupon(ctx context.Context, shopperID uuid.UUID, code string) (*ApplyCouponResult, error) {
	discount, err := uc.coupons.Resolve(ctx, code)
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, errs.ErrInvalidCoupon
	}

	var touched int
	c, err := uc.mutate(ctx, shopperID, func(c *cart.Cart) error {
		touched = c.ApplyDiscount(*discount)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ApplyCouponResult{Cart: c, Discount: *discount, LinesAffected: touched}, nil
}

// mutate runs fn against the shopper's stored cart under the shopper lock and
// persists the result. The observer is notified after the lock is released.
func (uc *cartUseCaseImpl) mutate(ctx context.Context, shopperID uuid.UUID, fn func(c *cart.Cart) error) (*cart.Cart, error) {
	unlock := uc.locks.Lock(shopperID)

	c, err := uc.store.Load(ctx, shopperID)
	if err != nil {
		unlock()
		return nil, errs.Mark(errs.Wrap(err, "loading cart"), errs.ErrCartPersistence)
	}

	if err = fn(c); err != nil {
		unlock()
		return nil, err
	}

	if err = uc.store.Save(ctx, shopperID, c); err != nil {
		unlock()
		return nil, errs.Mark(errs.Wrap(err, "saving cart"), errs.ErrCartPersistence)
	}
	unlock()

	if uc.observer != nil {
		uc.observer.CartChanged(ctx, shopperID)
	}
	return c, nil
}

// productForCart loads the product and attaches the best automatic discount
// that is active right now.
func (uc *cartUseCaseImpl) productForCart(ctx context.Context, productID uuid.UUID) (*cart.Product, error) {
	reads := uc.uow.CommandReads()

	snap, err := reads.ProductByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrProductNotFound
		}
		return nil, errs.Mark(errs.Wrap(err, "loading product"), errs.ErrDatabaseOperationFailed)
	}

	product := &cart.Product{
		ID:                   snap.ID,
		Name:                 snap.Name,
		Price:                snap.Price,
		OriginalPrice:        snap.OriginalPrice,
		RequiresPrescription: snap.RequiresPrescription,
	}

	discounts, err := reads.ActiveDiscountsForProduct(ctx, productID, uc.clock.Now())
	if err != nil {
		// Pricing falls back to the base price rather than blocking the add.
		uc.logger.Warn("loading automatic discounts failed",
			"product_id", productID,
			"error", err.Error())
		return product, nil
	}

	item := pricing.Item{ProductID: snap.ID, BasePrice: snap.Price, Quantity: 1}
	product.Discount = pricing.BestDiscount(item, discounts)
	return product, nil
}
