package inventory

// Fixed consignment revenue split. Not configurable per item.
const (
	SellerShareRatio = 0.75
	AdminShareRatio  = 0.25
)

type Earnings struct {
	SellerEarnings float64
	AdminEarnings  float64
}

// Split divides a realized sale price 75/25 between seller and admin.
// The seller share is rounded to cents and the admin share takes the
// remainder, so the two always sum to exactly the sold price.
func Split(soldPrice float64) Earnings {
	seller := Round2(soldPrice * SellerShareRatio)
	return Earnings{
		SellerEarnings: seller,
		AdminEarnings:  Round2(soldPrice - seller),
	}
}
