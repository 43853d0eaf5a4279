// Package inventory implements the item lifecycle and pricing engine: the
// status state machine, shelf-time derived metrics, discounting, similarity
// grouping, filtering/sorting and the earnings split. Everything here is
// pure in-memory computation; callers pass now explicitly and handle
// persistence themselves.
package inventory

import (
	"fmt"
	"time"

	"github.com/rackline/consign-backend/internal/model"
)

// Transition validates and applies a status change in place, stamping the
// lifecycle timestamp for the target status. Timestamps are stamped at most
// once, so replaying a transition never moves an existing timestamp forward.
// On error the item is left unchanged.
func Transition(item *model.Item, target model.Status, now time.Time) error {
	if !model.CanTransition(item.Status, target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, item.Status, target)
	}
	if target == model.StatusSold {
		if item.SoldPrice == nil {
			return fmt.Errorf("%w: sold price not set", ErrIncompleteSaleData)
		}
		if item.SaleType == model.SaleTypeOnline && item.BuyerInfo.Empty() {
			return fmt.Errorf("%w: buyer info required for online sale", ErrIncompleteSaleData)
		}
	}

	item.Status = target
	switch target {
	case model.StatusApproved:
		stampOnce(&item.ApprovedAt, now)
	case model.StatusLive:
		stampOnce(&item.LiveAt, now)
	case model.StatusSold:
		stampOnce(&item.SoldAt, now)
	case model.StatusArchived:
		stampOnce(&item.ArchivedAt, now)
	}
	return nil
}

// TransitionResult reports the outcome of one item within a batch.
type TransitionResult struct {
	ID  string
	OK  bool
	Err error
}

// TransitionMany applies Transition to each item independently. A failing
// item is left unchanged and does not abort the batch; callers get a
// per-item result list to report partial failure.
func TransitionMany(items []*model.Item, target model.Status, now time.Time) []TransitionResult {
	results := make([]TransitionResult, 0, len(items))
	for _, item := range items {
		err := Transition(item, target, now)
		results = append(results, TransitionResult{ID: item.ID, OK: err == nil, Err: err})
	}
	return results
}

// MarkShipped stamps shippedAt on a sold shipping-fulfilled item. Shipped and
// delivered are sub-state timestamps within sold, not status changes.
func MarkShipped(item *model.Item, now time.Time) error {
	if item.Status != model.StatusSold {
		return fmt.Errorf("%w: cannot ship item with status %s", ErrInvalidTransition, item.Status)
	}
	if item.FulfillmentMethod != model.FulfillmentShipping {
		return fmt.Errorf("%w: fulfillment method is %s, not shipping", ErrInvalidTransition, item.FulfillmentMethod)
	}
	stampOnce(&item.ShippedAt, now)
	return nil
}

// MarkDelivered stamps deliveredAt on a sold item.
func MarkDelivered(item *model.Item, now time.Time) error {
	if item.Status != model.StatusSold {
		return fmt.Errorf("%w: cannot deliver item with status %s", ErrInvalidTransition, item.Status)
	}
	stampOnce(&item.DeliveredAt, now)
	return nil
}

func stampOnce(ts **time.Time, now time.Time) {
	if *ts == nil {
		t := now
		*ts = &t
	}
}
