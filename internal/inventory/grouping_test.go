package inventory

import (
	"errors"
	"testing"

	"github.com/rackline/consign-backend/internal/model"
)

func groupInput() []model.Item {
	mk := func(id, title, brand, condition string, price float64, status model.Status, seller string) model.Item {
		return model.Item{
			ID: id, Title: title, Category: "Outerwear", Brand: brand,
			Condition: condition, Price: price, Status: status,
			SellerID: "s-" + seller, SellerName: seller,
		}
	}
	return []model.Item{
		mk("g-1", "Denim Jacket", "Levi's", "Good", 40, model.StatusLive, "Ana"),
		mk("g-2", "denim jacket", "levi's", "good", 55, model.StatusPending, "Ben"),
		mk("g-3", "Denim Jacket", "Levi's", "Good", 45, model.StatusLive, "Ana"),
		mk("g-4", "Wool Scarf", "", "Fair", 12, model.StatusLive, "Cleo"),
	}
}

func TestGroupBySimilarity(t *testing.T) {
	groups, err := GroupBySimilarity(groupInput())
	if err != nil {
		t.Fatalf("grouping: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("want 2 groups, got %d", len(groups))
	}

	jackets := groups[0]
	if jackets.Representative.ID != "g-1" {
		t.Errorf("representative should be first encountered, got %s", jackets.Representative.ID)
	}
	if jackets.Quantity != 3 {
		t.Errorf("jacket quantity: want 3, got %d", jackets.Quantity)
	}
	if jackets.MinPrice != 40 || jackets.MaxPrice != 55 {
		t.Errorf("jacket price range: want [40 55], got [%v %v]", jackets.MinPrice, jackets.MaxPrice)
	}
	if len(jackets.Statuses) != 2 {
		t.Errorf("jacket status set: want 2 distinct, got %v", jackets.Statuses)
	}
	if len(jackets.SellerNames) != 2 {
		t.Errorf("jacket seller set: want 2 distinct, got %v", jackets.SellerNames)
	}

	scarf := groups[1]
	if scarf.Quantity != 1 {
		t.Errorf("scarf quantity: want 1, got %d", scarf.Quantity)
	}
	if scarf.MinPrice != 12 || scarf.MaxPrice != 12 {
		t.Errorf("size-1 group must report degenerate range, got [%v %v]", scarf.MinPrice, scarf.MaxPrice)
	}
}

func TestGroupBySimilarityPermutationStable(t *testing.T) {
	base, err := GroupBySimilarity(groupInput())
	if err != nil {
		t.Fatal(err)
	}

	reversed := groupInput()
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	perm, err := GroupBySimilarity(reversed)
	if err != nil {
		t.Fatal(err)
	}

	if len(perm) != len(base) {
		t.Fatalf("group count differs across permutations: %d vs %d", len(perm), len(base))
	}
	// Same partition: quantities and ranges must match regardless of order.
	type sig struct {
		qty      int
		min, max float64
	}
	count := func(gs []Group) map[sig]int {
		m := make(map[sig]int)
		for _, g := range gs {
			m[sig{g.Quantity, g.MinPrice, g.MaxPrice}]++
		}
		return m
	}
	b, p := count(base), count(perm)
	for k, v := range b {
		if p[k] != v {
			t.Errorf("group %+v: count %d vs %d", k, v, p[k])
		}
	}
}

func TestGroupBySimilarityDoesNotMutateInput(t *testing.T) {
	in := groupInput()
	before := make([]model.Item, len(in))
	copy(before, in)

	if _, err := GroupBySimilarity(in); err != nil {
		t.Fatal(err)
	}
	for i := range in {
		if in[i].ID != before[i].ID || in[i].Price != before[i].Price || in[i].Status != before[i].Status {
			t.Fatalf("input item %d mutated", i)
		}
	}
}

func TestGroupBySimilarityMissingFieldsUsePlaceholder(t *testing.T) {
	items := []model.Item{
		{ID: "g-5", Title: "Mystery Box", Price: 10, Status: model.StatusLive},
		{ID: "g-6", Title: "Mystery Box", Price: 15, Status: model.StatusLive},
	}
	groups, err := GroupBySimilarity(items)
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 1 || groups[0].Quantity != 2 {
		t.Fatalf("items with missing key fields must still group together: %+v", groups)
	}
}

func TestGroupBySimilarityRejectsMalformedItem(t *testing.T) {
	items := []model.Item{{ID: "g-7", Title: ""}}
	if _, err := GroupBySimilarity(items); !errors.Is(err, ErrGroupingInput) {
		t.Fatalf("want ErrGroupingInput, got %v", err)
	}
}
