// Package session owns the per-session carts and drives checkout.
// It is the single place where cart, pricing, ledger and catalog meet,
// and the only layer that locks: the packages underneath stay pure and
// single-threaded.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/ryo-harano/coffee-app/internal/cart"
	"github.com/ryo-harano/coffee-app/internal/menu"
	"github.com/ryo-harano/coffee-app/internal/order"
	"github.com/ryo-harano/coffee-app/internal/pricing"
)

var (
	ErrSizeUnavailable        = errors.New("item is not offered in that size")
	ErrTemperatureUnavailable = errors.New("item is not offered at that temperature")
)

type Controller struct {
	mu    sync.Mutex
	carts map[string]*cart.Cart

	menuSvc  menu.Service
	orderSvc order.Service
}

func NewController(menuSvc menu.Service, orderSvc order.Service) *Controller {
	return &Controller{
		carts:    make(map[string]*cart.Cart),
		menuSvc:  menuSvc,
		orderSvc: orderSvc,
	}
}

// cartOf returns the session's cart, creating it on first use.
// Callers hold the lock.
func (c *Controller) cartOf(sid string) *cart.Cart {
	ct, ok := c.carts[sid]
	if !ok {
		ct = cart.New()
		c.carts[sid] = ct
	}
	return ct
}

// AddToCart resolves the item from the catalog and adds a line to the
// session's cart, snapshotting the current price.
func (c *Controller) AddToCart(ctx context.Context, sid, itemID string, size menu.Size, quantity int, temp menu.Temperature) error {
	item, err := c.menuSvc.Get(ctx, itemID)
	if err != nil {
		return err
	}
	if !item.HasSize(size) {
		return ErrSizeUnavailable
	}
	if !item.HasTemperature(temp) {
		return ErrTemperatureUnavailable
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cartOf(sid).Add(*item, size, quantity, temp)
	return nil
}

func (c *Controller) RemoveFromCart(sid string, key cart.Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cartOf(sid).Remove(key)
}

func (c *Controller) ClearCart(sid string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cartOf(sid).Clear()
}

// QuoteCart prices the session's current cart for display.
func (c *Controller) QuoteCart(sid string) pricing.Receipt {
	c.mu.Lock()
	lines := c.cartOf(sid).Lines()
	c.mu.Unlock()

	return pricing.Quote(lines)
}

// Checkout freezes the session's cart into an order and clears the
// cart on success. An empty cart returns order.ErrEmptyOrder and
// changes nothing.
func (c *Controller) Checkout(ctx context.Context, sid string, customer *order.CustomerInfo) (*order.Order, error) {
	c.mu.Lock()
	lines := c.cartOf(sid).Lines()
	c.mu.Unlock()

	o, err := c.orderSvc.Place(ctx, lines, customer)
	if err != nil {
		return nil, err
	}

	c.ClearCart(sid)
	return o, nil
}
