package inventory

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/rackline/consign-backend/internal/model"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func liveItem(id string) *model.Item {
	created := testNow.Add(-48 * time.Hour)
	approved := testNow.Add(-36 * time.Hour)
	live := testNow.Add(-24 * time.Hour)
	return &model.Item{
		ID:         id,
		Title:      "Vintage denim jacket",
		SellerID:   "seller-1",
		SellerName: "Ana",
		Status:     model.StatusLive,
		Price:      50,
		CreatedAt:  created,
		ApprovedAt: &approved,
		LiveAt:     &live,
	}
}

func TestTransitionLegality(t *testing.T) {
	all := []model.Status{
		model.StatusPending, model.StatusApproved, model.StatusLive,
		model.StatusSold, model.StatusArchived,
	}
	allowed := map[model.Status][]model.Status{
		model.StatusPending:  {model.StatusApproved, model.StatusArchived},
		model.StatusApproved: {model.StatusLive, model.StatusArchived},
		model.StatusLive:     {model.StatusSold, model.StatusArchived},
		model.StatusSold:     {},
		model.StatusArchived: {},
	}

	for _, from := range all {
		for _, to := range all {
			legal := false
			for _, a := range allowed[from] {
				if a == to {
					legal = true
				}
			}

			item := liveItem("it-1")
			item.Status = from
			price := 10.0
			item.SoldPrice = &price // satisfy sale data so only legality is under test
			before := *item

			err := Transition(item, to, testNow)
			if legal && err != nil {
				t.Errorf("%s -> %s: unexpected error %v", from, to, err)
			}
			if !legal {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Errorf("%s -> %s: want ErrInvalidTransition, got %v", from, to, err)
				}
				if !reflect.DeepEqual(*item, before) {
					t.Errorf("%s -> %s: item mutated on failed transition", from, to)
				}
			}
		}
	}
}

func TestTransitionStampsTimestampOnce(t *testing.T) {
	item := liveItem("it-2")
	item.Status = model.StatusApproved
	item.LiveAt = nil

	if err := Transition(item, model.StatusLive, testNow); err != nil {
		t.Fatalf("transition to live: %v", err)
	}
	if item.LiveAt == nil || !item.LiveAt.Equal(testNow) {
		t.Fatalf("liveAt not stamped: %v", item.LiveAt)
	}

	// Replaying must not move the timestamp forward.
	item.Status = model.StatusApproved
	later := testNow.Add(time.Hour)
	if err := Transition(item, model.StatusLive, later); err != nil {
		t.Fatalf("replayed transition: %v", err)
	}
	if !item.LiveAt.Equal(testNow) {
		t.Errorf("liveAt overwritten on replay: %v", item.LiveAt)
	}
}

func TestTransitionSoldRequiresSaleData(t *testing.T) {
	item := liveItem("it-3")
	if err := Transition(item, model.StatusSold, testNow); !errors.Is(err, ErrIncompleteSaleData) {
		t.Fatalf("want ErrIncompleteSaleData without sold price, got %v", err)
	}
	if item.Status != model.StatusLive || item.SoldAt != nil {
		t.Fatal("item mutated by failed sold transition")
	}

	price := 42.0
	item.SoldPrice = &price
	item.SaleType = model.SaleTypeOnline
	if err := Transition(item, model.StatusSold, testNow); !errors.Is(err, ErrIncompleteSaleData) {
		t.Fatalf("want ErrIncompleteSaleData without buyer info on online sale, got %v", err)
	}

	item.BuyerInfo = model.BuyerInfo{Name: "Ben", Email: "ben@example.com"}
	if err := Transition(item, model.StatusSold, testNow); err != nil {
		t.Fatalf("sold with complete data: %v", err)
	}
	if item.SoldAt == nil {
		t.Error("soldAt not stamped")
	}
}

func TestFullLifecycleStampsAllTimestamps(t *testing.T) {
	item := &model.Item{
		ID:        "it-4",
		Title:     "Wool coat",
		SellerID:  "seller-2",
		Status:    model.StatusPending,
		Price:     120,
		CreatedAt: testNow.Add(-72 * time.Hour),
	}

	if err := Transition(item, model.StatusSold, testNow); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("pending -> sold directly must fail, got %v", err)
	}

	steps := []model.Status{model.StatusApproved, model.StatusLive}
	for _, s := range steps {
		if err := Transition(item, s, testNow); err != nil {
			t.Fatalf("transition to %s: %v", s, err)
		}
	}
	price := 120.0
	item.SoldPrice = &price
	item.SaleType = model.SaleTypeInStore
	if err := Transition(item, model.StatusSold, testNow); err != nil {
		t.Fatalf("transition to sold: %v", err)
	}

	if item.ApprovedAt == nil || item.LiveAt == nil || item.SoldAt == nil {
		t.Errorf("missing lifecycle timestamps: approved=%v live=%v sold=%v",
			item.ApprovedAt, item.LiveAt, item.SoldAt)
	}
}

func TestTransitionManyContinuesOnFailure(t *testing.T) {
	good := liveItem("it-5")
	bad := liveItem("it-6")
	bad.Status = model.StatusSold // terminal, cannot archive

	results := TransitionMany([]*model.Item{good, bad}, model.StatusArchived, testNow)
	if len(results) != 2 {
		t.Fatalf("want 2 results, got %d", len(results))
	}
	if !results[0].OK || results[0].ID != "it-5" {
		t.Errorf("good item failed: %+v", results[0])
	}
	if results[1].OK || !errors.Is(results[1].Err, ErrInvalidTransition) {
		t.Errorf("bad item should fail with ErrInvalidTransition: %+v", results[1])
	}
	if good.Status != model.StatusArchived {
		t.Error("good item not archived")
	}
	if bad.Status != model.StatusSold || bad.ArchivedAt != nil {
		t.Error("bad item mutated despite failed transition")
	}
}

func TestMarkShippedAndDelivered(t *testing.T) {
	item := liveItem("it-7")
	if err := MarkShipped(item, testNow); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("shipping a live item must fail, got %v", err)
	}

	price := 50.0
	item.SoldPrice = &price
	item.SaleType = model.SaleTypeInStore
	item.FulfillmentMethod = model.FulfillmentPickup
	if err := Transition(item, model.StatusSold, testNow); err != nil {
		t.Fatalf("sell: %v", err)
	}

	if err := MarkShipped(item, testNow); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("shipping a pickup item must fail, got %v", err)
	}

	item.FulfillmentMethod = model.FulfillmentShipping
	if err := MarkShipped(item, testNow); err != nil {
		t.Fatalf("ship: %v", err)
	}
	first := *item.ShippedAt

	if err := MarkShipped(item, testNow.Add(time.Hour)); err != nil {
		t.Fatalf("re-ship: %v", err)
	}
	if !item.ShippedAt.Equal(first) {
		t.Error("shippedAt overwritten on replay")
	}

	if err := MarkDelivered(item, testNow.Add(2*time.Hour)); err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if item.DeliveredAt == nil {
		t.Error("deliveredAt not stamped")
	}
	if item.Status != model.StatusSold {
		t.Errorf("shipping sub-states must not change status, got %s", item.Status)
	}
}
