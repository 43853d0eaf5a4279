package model

import "time"

// AuditEntry records one mutating inventory operation in human-readable form.
type AuditEntry struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	ItemID    string    `gorm:"column:item_id;size:36;index;not null"`
	ItemTitle string    `gorm:"column:item_title;size:120"`
	Action    string    `gorm:"column:action;size:64;not null"`
	Detail    string    `gorm:"column:detail;type:text"`
	Actor     string    `gorm:"column:actor;size:128"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (AuditEntry) TableName() string {
	return "audit_entries"
}
