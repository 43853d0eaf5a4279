package repository

import (
	"context"
	"errors"

	"github.com/rackline/consign-backend/internal/inventory"
	"github.com/rackline/consign-backend/internal/model"
	"gorm.io/gorm"
)

var (
	ErrDBNotReady = errors.New("database not initialized")

	// ErrStaleItem means the row's status changed between snapshot read and
	// save; the caller's update was not applied.
	ErrStaleItem = errors.New("item changed concurrently")
)

// SaveResult reports the outcome of one item within a batch save.
type SaveResult struct {
	ID  string
	OK  bool
	Err error
}

type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	FindByID(ctx context.Context, id string) (*model.Item, error)
	// Snapshot loads the full item set matching the pushed-down hints.
	// Only equality criteria are pushed down; callers run the complete
	// in-memory pipeline on the result regardless.
	Snapshot(ctx context.Context, hints inventory.Criteria) ([]model.Item, error)
	// SaveWithStatusCheck persists an item only if its stored status still
	// equals expectedStatus. Returns ErrStaleItem otherwise.
	SaveWithStatusCheck(ctx context.Context, item *model.Item, expectedStatus model.Status) error
	SaveMany(ctx context.Context, items []*model.Item, expected map[string]model.Status) []SaveResult
	Facets(ctx context.Context) (categories, brands, conditions []string, err error)
	SetDB(db *gorm.DB)
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *model.Item) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) FindByID(ctx context.Context, id string) (*model.Item, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var item model.Item
	if err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) Snapshot(ctx context.Context, hints inventory.Criteria) ([]model.Item, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	q := r.db.WithContext(ctx).Model(&model.Item{}).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") })
	if hints.Status != "" && hints.Status != "all" {
		q = q.Where("status = ?", hints.Status)
	}
	if hints.Category != "" && hints.Category != "all" {
		q = q.Where("category = ?", hints.Category)
	}
	if hints.Brand != "" && hints.Brand != "all" {
		q = q.Where("brand = ?", hints.Brand)
	}

	var items []model.Item
	if err := q.Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) SaveWithStatusCheck(ctx context.Context, item *model.Item, expectedStatus model.Status) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	res := r.db.WithContext(ctx).
		Model(&model.Item{}).
		Where("id = ? AND status = ?", item.ID, expectedStatus).
		Select("*").
		Omit("id", "created_at", "seller_id", "seller_name", "seller_email", "Images").
		Updates(item)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleItem
	}
	return nil
}

func (r *itemRepository) SaveMany(ctx context.Context, items []*model.Item, expected map[string]model.Status) []SaveResult {
	results := make([]SaveResult, 0, len(items))
	for _, item := range items {
		err := r.SaveWithStatusCheck(ctx, item, expected[item.ID])
		results = append(results, SaveResult{ID: item.ID, OK: err == nil, Err: err})
	}
	return results
}

func (r *itemRepository) Facets(ctx context.Context) (categories, brands, conditions []string, err error) {
	if r.db == nil {
		return nil, nil, nil, ErrDBNotReady
	}
	pluck := func(column string) ([]string, error) {
		var vals []string
		err := r.db.WithContext(ctx).
			Model(&model.Item{}).
			Distinct(column).
			Where(column+" <> ''").
			Order(column + " ASC").
			Pluck(column, &vals).Error
		return vals, err
	}
	if categories, err = pluck("category"); err != nil {
		return nil, nil, nil, err
	}
	if brands, err = pluck("brand"); err != nil {
		return nil, nil, nil, err
	}
	if conditions, err = pluck("`condition`"); err != nil {
		return nil, nil, nil, err
	}
	return categories, brands, conditions, nil
}

func (r *itemRepository) SetDB(db *gorm.DB) {
	r.db = db
}
