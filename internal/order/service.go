package order

import (
	"context"
	"strconv"
	"time"

	"github.com/ryo-harano/coffee-app/internal/cart"
	"github.com/ryo-harano/coffee-app/internal/logger"
	"github.com/ryo-harano/coffee-app/internal/pricing"

	"go.uber.org/zap"
)

// Notifier receives placed orders for best-effort mirroring.
// Implementations must not block the caller.
type Notifier interface {
	OrderPlaced(o Order)
}

// Service defines the ledger operations.
type Service interface {
	// Place freezes the given cart lines into a new order. Empty
	// lines return ErrEmptyOrder and leave the ledger untouched.
	Place(ctx context.Context, lines []cart.Line, customer *CustomerInfo) (*Order, error)
	Orders(ctx context.Context) ([]Order, error)
	MarkAllViewed(ctx context.Context) error
	UnviewedCount(ctx context.Context) (int, error)
}

type service struct {
	repo     Repository
	notifier Notifier
	now      func() time.Time
}

func NewService(repo Repository, notifier Notifier) Service {
	return &service{repo: repo, notifier: notifier, now: time.Now}
}

func (s *service) Place(ctx context.Context, lines []cart.Line, customer *CustomerInfo) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	receipt := pricing.Quote(lines)

	items := make([]cart.Line, len(lines))
	copy(items, lines)

	o := Order{
		ID:       s.nextID(ctx),
		Items:    items,
		Total:    receipt.Total,
		Date:     s.now(),
		Customer: customer,
	}

	if err := s.repo.Prepend(ctx, o); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("order placed",
		zap.String("order_id", o.ID),
		zap.Int("total", o.Total),
		zap.Int("lines", len(o.Items)),
		zap.Bool("discount", receipt.DiscountApplied),
	)

	s.notifier.OrderPlaced(o)
	return &o, nil
}

func (s *service) Orders(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

func (s *service) MarkAllViewed(ctx context.Context) error {
	return s.repo.MarkAllViewed(ctx)
}

func (s *service) UnviewedCount(ctx context.Context) (int, error) {
	return s.repo.UnviewedCount(ctx)
}

// nextID derives a unique order id from the current time, bumping by
// a millisecond while the id is already taken. Two checkouts in the
// same millisecond are the only way to collide.
func (s *service) nextID(ctx context.Context) string {
	ms := s.now().UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		taken, err := s.repo.HasID(ctx, id)
		if err != nil || !taken {
			return id
		}
		ms++
	}
}
