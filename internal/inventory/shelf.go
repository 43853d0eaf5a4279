package inventory

import (
	"time"

	"github.com/rackline/consign-backend/internal/model"
)

// ShelfDays returns the whole days an item has spent on the shelf as of now,
// measured from liveAt (or createdAt for items that never went live).
// Never negative; never persisted, always re-derived.
func ShelfDays(item *model.Item, now time.Time) int {
	d := now.Sub(item.ShelfAnchor())
	if d < 0 {
		return 0
	}
	return int(d / (24 * time.Hour))
}
