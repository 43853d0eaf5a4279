package inventory

import (
	"fmt"
	"strings"

	"github.com/rackline/consign-backend/internal/model"
)

// Group collapses near-duplicate listings sharing (title, category, brand,
// condition), case-insensitively. The representative is the first item
// encountered; groups preserve input order.
type Group struct {
	Representative model.Item
	Quantity       int
	MinPrice       float64
	MaxPrice       float64
	Statuses       []model.Status
	SellerNames    []string
}

// GroupBySimilarity partitions items into similarity groups. It never
// mutates its input. Items with a missing key field group under an explicit
// empty placeholder for that field, so they still collapse with each other.
func GroupBySimilarity(items []model.Item) ([]Group, error) {
	groups := make([]Group, 0)
	index := make(map[string]int)
	statusSeen := make(map[string]map[model.Status]bool)
	sellerSeen := make(map[string]map[string]bool)

	for i := range items {
		item := items[i]
		if item.ID == "" || item.Title == "" {
			return nil, fmt.Errorf("%w: id=%q title=%q", ErrGroupingInput, item.ID, item.Title)
		}
		key := groupKey(item)

		gi, ok := index[key]
		if !ok {
			index[key] = len(groups)
			groups = append(groups, Group{
				Representative: item,
				Quantity:       1,
				MinPrice:       item.Price,
				MaxPrice:       item.Price,
				Statuses:       []model.Status{item.Status},
				SellerNames:    distinctSeed(item.SellerName),
			})
			statusSeen[key] = map[model.Status]bool{item.Status: true}
			sellerSeen[key] = map[string]bool{item.SellerName: true}
			continue
		}

		g := &groups[gi]
		g.Quantity++
		if item.Price < g.MinPrice {
			g.MinPrice = item.Price
		}
		if item.Price > g.MaxPrice {
			g.MaxPrice = item.Price
		}
		if !statusSeen[key][item.Status] {
			statusSeen[key][item.Status] = true
			g.Statuses = append(g.Statuses, item.Status)
		}
		if item.SellerName != "" && !sellerSeen[key][item.SellerName] {
			sellerSeen[key][item.SellerName] = true
			g.SellerNames = append(g.SellerNames, item.SellerName)
		}
	}
	return groups, nil
}

func groupKey(item model.Item) string {
	parts := []string{item.Title, item.Category, item.Brand, item.Condition}
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return strings.Join(parts, "\x1f")
}

func distinctSeed(seller string) []string {
	if seller == "" {
		return nil
	}
	return []string{seller}
}
