package inventory

import (
	"fmt"
	"math"
	"time"

	"github.com/rackline/consign-backend/internal/model"
)

// Discount percentage bounds. The upper bound guards against fat-finger
// destructive pricing; anything deeper needs a manual price edit.
const (
	MinDiscountPercent = 1
	MaxDiscountPercent = 50
)

// Round2 rounds a currency amount half-up to two decimal places.
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// ApplyDiscount applies a manual percentage discount to a live item.
// Repeated discounts always recompute off the original pre-discount price,
// never off an already-discounted one.
func ApplyDiscount(item *model.Item, percentage float64, reason string, now time.Time) error {
	if item.Status != model.StatusLive {
		return fmt.Errorf("%w: status is %s", ErrItemNotEligible, item.Status)
	}
	if percentage < MinDiscountPercent || percentage > MaxDiscountPercent {
		return fmt.Errorf("%w: %.2f%% (allowed %d-%d)", ErrInvalidDiscount, percentage, MinDiscountPercent, MaxDiscountPercent)
	}
	recomputeDiscountedPrice(item, percentage, reason, now)
	return nil
}

// ApplyShelfDiscount discounts every live item whose shelf time has reached
// thresholdDays. Eligibility and pricing are computed against the single now
// passed in, so results cannot shift mid-batch. Returns the ids of the items
// actually modified.
func ApplyShelfDiscount(items []*model.Item, thresholdDays int, percentage float64, now time.Time) ([]string, error) {
	if percentage < MinDiscountPercent || percentage > MaxDiscountPercent {
		return nil, fmt.Errorf("%w: %.2f%% (allowed %d-%d)", ErrInvalidDiscount, percentage, MinDiscountPercent, MaxDiscountPercent)
	}
	reason := fmt.Sprintf("Shelf-time discount: %d+ days on shelf", thresholdDays)

	var modified []string
	for _, item := range items {
		if item.Status != model.StatusLive || ShelfDays(item, now) < thresholdDays {
			continue
		}
		recomputeDiscountedPrice(item, percentage, reason, now)
		modified = append(modified, item.ID)
	}
	return modified, nil
}

// recomputeDiscountedPrice is the single pricing primitive shared by manual
// and bulk discounts. The pre-discount baseline is captured in OriginalPrice
// exactly once.
func recomputeDiscountedPrice(item *model.Item, percentage float64, reason string, now time.Time) {
	if item.OriginalPrice == nil {
		base := item.Price
		item.OriginalPrice = &base
	}
	item.Price = Round2(*item.OriginalPrice * (1 - percentage/100))
	pct := percentage
	item.DiscountPercentage = &pct
	item.DiscountReason = reason
	applied := now
	item.DiscountAppliedAt = &applied
}
