package inventory

import (
	"testing"
	"time"
)

func TestShelfDays(t *testing.T) {
	item := liveItem("s-1")
	live := testNow.Add(-10*24*time.Hour - 6*time.Hour)
	item.LiveAt = &live

	if got := ShelfDays(item, testNow); got != 10 {
		t.Errorf("want 10 whole days, got %d", got)
	}
}

func TestShelfDaysFallsBackToCreatedAt(t *testing.T) {
	item := liveItem("s-2")
	item.LiveAt = nil
	item.CreatedAt = testNow.Add(-3 * 24 * time.Hour)

	if got := ShelfDays(item, testNow); got != 3 {
		t.Errorf("want 3 days from createdAt fallback, got %d", got)
	}
}

func TestShelfDaysClampedAtZero(t *testing.T) {
	item := liveItem("s-3")
	future := testNow.Add(24 * time.Hour)
	item.LiveAt = &future

	if got := ShelfDays(item, testNow); got != 0 {
		t.Errorf("want 0 for future anchor, got %d", got)
	}
}

func TestShelfDaysMonotonic(t *testing.T) {
	item := liveItem("s-4")
	prev := -1
	for h := 0; h <= 96; h += 7 {
		got := ShelfDays(item, testNow.Add(time.Duration(h)*time.Hour))
		if got < prev {
			t.Fatalf("shelf days decreased: %d after %d at +%dh", got, prev, h)
		}
		prev = got
	}
}
