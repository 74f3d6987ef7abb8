// Package outbox decouples mutations from their spreadsheet side
// effects. Services hand events to the outbox and move on; a single
// worker drains the queue and calls the syncer. Failures are logged
// and dropped, never retried, never surfaced to the user.
package outbox

import (
	"context"
	"time"

	"github.com/ryo-harano/coffee-app/internal/logger"
	"github.com/ryo-harano/coffee-app/internal/menu"
	"github.com/ryo-harano/coffee-app/internal/metrics"
	"github.com/ryo-harano/coffee-app/internal/order"
	"github.com/ryo-harano/coffee-app/internal/sheets"

	"go.uber.org/zap"
)

const (
	defaultQueueSize   = 64
	defaultSyncTimeout = 15 * time.Second
)

type event struct {
	item   *menu.Item
	action menu.SyncAction
	order  *order.Order
}

// Outbox implements menu.Notifier and order.Notifier over a buffered
// channel.
type Outbox struct {
	syncer  sheets.Syncer
	events  chan event
	done    chan struct{}
	timeout time.Duration

	synced  metrics.Counter
	failed  metrics.Counter
	dropped metrics.Counter
}

// Stats is a point-in-time snapshot of the sync pipeline.
type Stats struct {
	Synced  uint64
	Failed  uint64
	Dropped uint64
}

func New(syncer sheets.Syncer) *Outbox {
	o := &Outbox{
		syncer:  syncer,
		events:  make(chan event, defaultQueueSize),
		done:    make(chan struct{}),
		timeout: defaultSyncTimeout,
	}
	go o.run()
	return o
}

// MenuChanged queues a menu sync event. Never blocks: when the queue
// is full the event is dropped with a warning.
func (o *Outbox) MenuChanged(item menu.Item, action menu.SyncAction) {
	o.enqueue(event{item: &item, action: action})
}

// OrderPlaced queues an order sync event.
func (o *Outbox) OrderPlaced(ord order.Order) {
	o.enqueue(event{order: &ord})
}

func (o *Outbox) enqueue(ev event) {
	select {
	case o.events <- ev:
	default:
		o.dropped.Inc()
		logger.L().Warn("sync queue full, dropping event")
	}
}

func (o *Outbox) Stats() Stats {
	return Stats{
		Synced:  o.synced.Load(),
		Failed:  o.failed.Load(),
		Dropped: o.dropped.Load(),
	}
}

// Close drains remaining events and stops the worker.
func (o *Outbox) Close() {
	close(o.events)
	<-o.done

	s := o.Stats()
	logger.L().Info("sync pipeline stopped",
		zap.Uint64("synced", s.Synced),
		zap.Uint64("failed", s.Failed),
		zap.Uint64("dropped", s.Dropped))
}

func (o *Outbox) run() {
	defer close(o.done)

	for ev := range o.events {
		ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
		timer := metrics.StartTimer()

		var err error
		switch {
		case ev.order != nil:
			err = o.syncer.SyncOrder(ctx, *ev.order)
		case ev.item != nil:
			err = o.syncer.SyncMenuItem(ctx, *ev.item, ev.action)
		}
		cancel()

		if err != nil {
			// Best effort only; the local state change already
			// committed and must not be affected.
			o.failed.Inc()
			logger.L().Warn("sheet sync failed",
				zap.Duration("took", timer.Duration()), zap.Error(err))
			continue
		}
		o.synced.Inc()
	}
}
