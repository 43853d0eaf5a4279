package inventory

import (
	"slices"
	"strings"

	"github.com/rackline/consign-backend/internal/model"
)

// ShippingState is a derived predicate over sold items' fulfillment fields.
type ShippingState string

const (
	ShippingStateAll       ShippingState = ""
	ShippingStateShipped   ShippingState = "shipped"
	ShippingStateUnshipped ShippingState = "unshipped"
	ShippingStatePickup    ShippingState = "pickup"
)

type SortKey string

const (
	SortNewest          SortKey = "newest"
	SortOldest          SortKey = "oldest"
	SortPriceHigh       SortKey = "price-high"
	SortPriceLow        SortKey = "price-low"
	SortShelfTime       SortKey = "shelf-time"
	SortShelfTimeNewest SortKey = "shelf-time-newest"
)

// Criteria are independent predicates ANDed together. The zero value (or the
// literal "all") for any field means that predicate is skipped.
type Criteria struct {
	Status    model.Status
	Category  string
	Brand     string
	Condition string
	Gender    string
	Search    string
	Shipping  ShippingState
}

func active(v string) bool {
	return v != "" && !strings.EqualFold(v, "all")
}

// Matches reports whether an item satisfies every active criterion.
func (c Criteria) Matches(item *model.Item) bool {
	if active(string(c.Status)) && item.Status != c.Status {
		return false
	}
	if active(c.Category) && !strings.EqualFold(item.Category, c.Category) {
		return false
	}
	if active(c.Brand) && !strings.EqualFold(item.Brand, c.Brand) {
		return false
	}
	if active(c.Condition) && !strings.EqualFold(item.Condition, c.Condition) {
		return false
	}
	if active(c.Gender) && !strings.EqualFold(item.Gender, c.Gender) {
		return false
	}
	if active(c.Search) && !matchesSearch(item, c.Search) {
		return false
	}
	switch c.Shipping {
	case ShippingStateShipped:
		if !(item.Status == model.StatusSold &&
			item.FulfillmentMethod == model.FulfillmentShipping &&
			item.TrackingNumber != "" && item.ShippingLabelGenerated) {
			return false
		}
	case ShippingStateUnshipped:
		if !(item.Status == model.StatusSold &&
			item.FulfillmentMethod == model.FulfillmentShipping &&
			(item.TrackingNumber == "" || !item.ShippingLabelGenerated)) {
			return false
		}
	case ShippingStatePickup:
		if !(item.Status == model.StatusSold &&
			item.FulfillmentMethod == model.FulfillmentPickup) {
			return false
		}
	}
	return true
}

func matchesSearch(item *model.Item, q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	for _, field := range []string{
		item.Title, item.Description, item.Brand, item.Category,
		item.SellerName, item.Material, item.ID, item.SaleTransactionID,
	} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// FilterAndSort returns a new slice of the items matching every active
// criterion, ordered by key. The sort is stable (ties keep input order) and
// the input slice is never reordered or mutated.
func FilterAndSort(items []model.Item, c Criteria, key SortKey) []model.Item {
	out := make([]model.Item, 0, len(items))
	for i := range items {
		if c.Matches(&items[i]) {
			out = append(out, items[i])
		}
	}

	switch key {
	case SortNewest:
		slices.SortStableFunc(out, func(a, b model.Item) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case SortOldest:
		slices.SortStableFunc(out, func(a, b model.Item) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	case SortPriceHigh:
		slices.SortStableFunc(out, func(a, b model.Item) int {
			return compareFloat(b.Price, a.Price)
		})
	case SortPriceLow:
		slices.SortStableFunc(out, func(a, b model.Item) int {
			return compareFloat(a.Price, b.Price)
		})
	case SortShelfTime:
		// Oldest on shelf first.
		slices.SortStableFunc(out, func(a, b model.Item) int {
			return a.ShelfAnchor().Compare(b.ShelfAnchor())
		})
	case SortShelfTimeNewest:
		slices.SortStableFunc(out, func(a, b model.Item) int {
			return b.ShelfAnchor().Compare(a.ShelfAnchor())
		})
	}
	return out
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
