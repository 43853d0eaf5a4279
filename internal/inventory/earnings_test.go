package inventory

import (
	"math"
	"testing"
)

func TestSplitRatio(t *testing.T) {
	e := Split(100)
	if e.SellerEarnings != 75 || e.AdminEarnings != 25 {
		t.Fatalf("split of 100: got seller=%v admin=%v", e.SellerEarnings, e.AdminEarnings)
	}
}

func TestSplitAlwaysSumsToSoldPrice(t *testing.T) {
	prices := []float64{0, 0.01, 0.03, 9.99, 33.33, 50, 37.50, 123.45, 9999.99}
	for _, p := range prices {
		e := Split(p)
		sum := e.SellerEarnings + e.AdminEarnings
		if math.Abs(sum-Round2(p)) > 0.01 {
			t.Errorf("split of %v: %v + %v = %v", p, e.SellerEarnings, e.AdminEarnings, sum)
		}
		if e.SellerEarnings < 0 || e.AdminEarnings < 0 {
			t.Errorf("split of %v produced negative share: %+v", p, e)
		}
	}
}
