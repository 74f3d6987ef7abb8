// Package sheets mirrors menu changes and placed orders to an external
// spreadsheet. The mirror is best effort: callers fire events through
// the outbox and every failure ends here, logged and swallowed.
package sheets

import (
	"context"

	"github.com/ryo-harano/coffee-app/internal/logger"
	"github.com/ryo-harano/coffee-app/internal/menu"
	"github.com/ryo-harano/coffee-app/internal/order"

	"go.uber.org/zap"
)

// Syncer pushes catalog and ledger changes to the spreadsheet.
type Syncer interface {
	SyncMenuItem(ctx context.Context, item menu.Item, action menu.SyncAction) error
	SyncOrder(ctx context.Context, o order.Order) error
}

// Nop is used when spreadsheet credentials are not configured. The
// app behaves identically, it just keeps no external mirror.
type Nop struct{}

func (Nop) SyncMenuItem(ctx context.Context, item menu.Item, action menu.SyncAction) error {
	logger.FromCtx(ctx).Debug("sheet sync disabled, skipping menu item",
		zap.String("item_id", item.ID),
		zap.String("action", string(action)),
	)
	return nil
}

func (Nop) SyncOrder(ctx context.Context, o order.Order) error {
	logger.FromCtx(ctx).Debug("sheet sync disabled, skipping order",
		zap.String("order_id", o.ID),
	)
	return nil
}
