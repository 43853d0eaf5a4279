package repository

import (
	"context"

	"github.com/rackline/consign-backend/internal/model"
	"gorm.io/gorm"
)

type AuditRepository interface {
	Create(ctx context.Context, e *model.AuditEntry) error
	ListRecent(ctx context.Context, limit int) ([]model.AuditEntry, error)
	ListByItem(ctx context.Context, itemID string, limit int) ([]model.AuditEntry, error)
	SetDB(db *gorm.DB)
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(ctx context.Context, e *model.AuditEntry) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *auditRepository) ListRecent(ctx context.Context, limit int) ([]model.AuditEntry, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var list []model.AuditEntry
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *auditRepository) ListByItem(ctx context.Context, itemID string, limit int) ([]model.AuditEntry, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var list []model.AuditEntry
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *auditRepository) SetDB(db *gorm.DB) {
	r.db = db
}
