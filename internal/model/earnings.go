package model

import "time"

// AdminAccountID is the ledger row that accrues the house share of every sale.
const AdminAccountID = "__admin__"

// AccountEarnings accrues realized earnings per account (sellers plus the
// single admin row). Amounts are kept in cents to avoid float drift in the
// running total.
type AccountEarnings struct {
	AccountID   string    `gorm:"column:account_id;primaryKey;size:128"`
	AmountCents int64     `gorm:"column:amount_cents;not null;default:0"`
	SalesCount  int64     `gorm:"column:sales_count;not null;default:0"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (AccountEarnings) TableName() string {
	return "account_earnings"
}
