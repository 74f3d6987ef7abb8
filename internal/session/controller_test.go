package session

import (
	"context"
	"testing"

	"github.com/ryo-harano/coffee-app/internal/cart"
	"github.com/ryo-harano/coffee-app/internal/menu"
	"github.com/ryo-harano/coffee-app/internal/order"
	"github.com/ryo-harano/coffee-app/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type nopNotifier struct{}

func (nopNotifier) MenuChanged(menu.Item, menu.SyncAction) {}
func (nopNotifier) OrderPlaced(order.Order)                {}

// newTestController wires a controller over the in-memory store with
// the default seeded catalog.
func newTestController(t *testing.T) *Controller {
	t.Helper()
	ctx := context.Background()

	menuRepo, err := menu.NewRepository(ctx, store.NewMemory())
	require.NoError(t, err)
	menuSvc := menu.NewService(menuRepo, nopNotifier{})

	orderRepo, err := order.NewRepository(ctx, store.NewMemory())
	require.NoError(t, err)
	orderSvc := order.NewService(orderRepo, nopNotifier{})

	return NewController(menuSvc, orderSvc)
}

func TestController_AddToCart(t *testing.T) {
	c := newTestController(t)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Latte (seed id 2), M, Hot.
		err := c.AddToCart(ctx, "sid-1", "2", menu.SizeM, 1, menu.TemperatureHot)
		require.NoError(t, err)

		r := c.QuoteCart("sid-1")
		require.Len(t, r.Lines, 1)
		assert.Equal(t, 450, r.Lines[0].Subtotal)
	})

	t.Run("Unknown item", func(t *testing.T) {
		err := c.AddToCart(ctx, "sid-1", "nope", menu.SizeM, 1, menu.TemperatureHot)
		assert.ErrorIs(t, err, menu.ErrItemNotFound)
	})

	t.Run("Size not offered", func(t *testing.T) {
		// Croissant (seed id 8) only comes in M.
		err := c.AddToCart(ctx, "sid-1", "8", menu.SizeL, 1, "")
		assert.ErrorIs(t, err, ErrSizeUnavailable)
	})

	t.Run("Temperature not offered", func(t *testing.T) {
		// Drip Coffee (seed id 1) is hot only.
		err := c.AddToCart(ctx, "sid-1", "1", menu.SizeS, 1, menu.TemperatureIce)
		assert.ErrorIs(t, err, ErrTemperatureUnavailable)
	})

	t.Run("Sessions are isolated", func(t *testing.T) {
		require.NoError(t, c.AddToCart(ctx, "sid-2", "1", menu.SizeS, 2, menu.TemperatureHot))

		assert.Len(t, c.QuoteCart("sid-2").Lines, 1)
		assert.Len(t, c.QuoteCart("sid-1").Lines, 1)
	})
}

func TestController_QuoteCart_ComboDiscount(t *testing.T) {
	c := newTestController(t)
	ctx := context.Background()

	// Latte M ¥450 + Croissant ¥350.
	require.NoError(t, c.AddToCart(ctx, "sid", "2", menu.SizeM, 1, menu.TemperatureHot))
	require.NoError(t, c.AddToCart(ctx, "sid", "8", menu.SizeM, 1, ""))

	r := c.QuoteCart("sid")
	assert.True(t, r.DiscountApplied)
	assert.Equal(t, 755, r.Total)
}

func TestController_Checkout(t *testing.T) {
	t.Run("Places order and clears cart", func(t *testing.T) {
		c := newTestController(t)
		ctx := context.Background()

		require.NoError(t, c.AddToCart(ctx, "sid", "2", menu.SizeM, 1, menu.TemperatureHot))
		require.NoError(t, c.AddToCart(ctx, "sid", "8", menu.SizeM, 1, ""))

		o, err := c.Checkout(ctx, "sid", nil)
		require.NoError(t, err)
		assert.Equal(t, 755, o.Total)

		assert.Empty(t, c.QuoteCart("sid").Lines)
	})

	t.Run("Empty cart is a no-op", func(t *testing.T) {
		c := newTestController(t)

		o, err := c.Checkout(context.Background(), "sid", nil)
		assert.ErrorIs(t, err, order.ErrEmptyOrder)
		assert.Nil(t, o)
	})

	t.Run("Cart survives a failed placement", func(t *testing.T) {
		menuRepo, err := menu.NewRepository(context.Background(), store.NewMemory())
		require.NoError(t, err)
		menuSvc := menu.NewService(menuRepo, nopNotifier{})

		orderSvc := new(mockOrderService)
		orderSvc.On("Place", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, assert.AnError)

		c := NewController(menuSvc, orderSvc)
		ctx := context.Background()
		require.NoError(t, c.AddToCart(ctx, "sid", "2", menu.SizeM, 1, menu.TemperatureHot))

		_, err = c.Checkout(ctx, "sid", nil)
		assert.Error(t, err)
		assert.Len(t, c.QuoteCart("sid").Lines, 1)
	})
}

func TestController_RemoveFromCart(t *testing.T) {
	c := newTestController(t)
	ctx := context.Background()

	require.NoError(t, c.AddToCart(ctx, "sid", "2", menu.SizeM, 3, menu.TemperatureHot))
	c.RemoveFromCart("sid", cart.Key{ItemID: "2", Size: menu.SizeM, Temperature: menu.TemperatureHot})

	assert.Empty(t, c.QuoteCart("sid").Lines)
}

// --- Mocks ---

type mockOrderService struct {
	mock.Mock
}

func (m *mockOrderService) Place(ctx context.Context, lines []cart.Line, customer *order.CustomerInfo) (*order.Order, error) {
	args := m.Called(ctx, lines, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *mockOrderService) Orders(ctx context.Context) ([]order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *mockOrderService) MarkAllViewed(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockOrderService) UnviewedCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
