package model

import "time"

type SaleType string

const (
	SaleTypeInStore SaleType = "in-store"
	SaleTypeOnline  SaleType = "online"
)

type FulfillmentMethod string

const (
	FulfillmentShipping FulfillmentMethod = "shipping"
	FulfillmentPickup   FulfillmentMethod = "pickup"
)

// BuyerInfo is attached to an item when it sells. Required for online sales.
type BuyerInfo struct {
	Name    string `gorm:"column:buyer_name;size:120"`
	Email   string `gorm:"column:buyer_email;size:255"`
	Phone   string `gorm:"column:buyer_phone;size:32"`
	Address string `gorm:"column:buyer_address;size:512"`
}

func (b BuyerInfo) Empty() bool {
	return b.Name == "" && b.Email == "" && b.Phone == "" && b.Address == ""
}

type Item struct {
	ID          string `gorm:"primaryKey;size:36"`
	Title       string `gorm:"size:120;not null"`
	Description string `gorm:"type:text"`
	Category    string `gorm:"size:100;index"`
	Brand       string `gorm:"size:100;index"`
	Condition   string `gorm:"size:60"`
	Size        string `gorm:"size:40"`
	Color       string `gorm:"size:60"`
	Material    string `gorm:"size:100"`
	Gender      string `gorm:"size:20"`

	Price              float64    `gorm:"type:decimal(12,2);not null"`
	OriginalPrice      *float64   `gorm:"column:original_price;type:decimal(12,2)"`
	DiscountPercentage *float64   `gorm:"column:discount_percentage;type:decimal(5,2)"`
	DiscountReason     string     `gorm:"column:discount_reason;size:255"`
	DiscountAppliedAt  *time.Time `gorm:"column:discount_applied_at"`

	SellerID    string `gorm:"column:seller_id;size:128;index;not null"`
	SellerName  string `gorm:"column:seller_name;size:120"`
	SellerEmail string `gorm:"column:seller_email;size:255"`

	Status Status `gorm:"size:32;index;not null"`

	ApprovedAt  *time.Time `gorm:"column:approved_at"`
	LiveAt      *time.Time `gorm:"column:live_at"`
	SoldAt      *time.Time `gorm:"column:sold_at"`
	ShippedAt   *time.Time `gorm:"column:shipped_at"`
	DeliveredAt *time.Time `gorm:"column:delivered_at"`
	ArchivedAt  *time.Time `gorm:"column:archived_at"`

	SoldPrice              *float64          `gorm:"column:sold_price;type:decimal(12,2)"`
	SaleType               SaleType          `gorm:"column:sale_type;size:16"`
	FulfillmentMethod      FulfillmentMethod `gorm:"column:fulfillment_method;size:16"`
	BuyerInfo              BuyerInfo         `gorm:"embedded"`
	SaleTransactionID      string            `gorm:"column:sale_transaction_id;size:36;index"`
	TrackingNumber         string            `gorm:"column:tracking_number;size:64"`
	ShippingLabelGenerated bool              `gorm:"column:shipping_label_generated"`

	Images []ItemImage `gorm:"foreignKey:ItemID"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Item) TableName() string {
	return "items"
}

// ShelfAnchor is the timestamp shelf time is measured from. Items that never
// went live fall back to their creation time; they can still be sorted by
// shelf time but cannot become discount-eligible (that requires live status).
func (i *Item) ShelfAnchor() time.Time {
	if i.LiveAt != nil {
		return *i.LiveAt
	}
	return i.CreatedAt
}

type ItemImage struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	ItemID    string    `gorm:"column:item_id;size:36;not null;index:idx_item_images_item_id"`
	ImageURL  string    `gorm:"column:image_url;size:512;not null"`
	Position  int       `gorm:"column:position;not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ItemImage) TableName() string {
	return "item_images"
}
