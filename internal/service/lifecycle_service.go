package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rackline/consign-backend/internal/inventory"
	"github.com/rackline/consign-backend/internal/model"
	"github.com/rackline/consign-backend/internal/repository"
	"gorm.io/gorm"
)

// SaleData must be attached before an item can move to sold.
type SaleData struct {
	SoldPrice         float64
	SaleType          model.SaleType
	FulfillmentMethod model.FulfillmentMethod
	Buyer             model.BuyerInfo
	TransactionID     string
}

// BatchResult reports one item's outcome within a bulk operation.
type BatchResult struct {
	ID    string `json:"id"`
	OK    bool   `json:"success"`
	Error string `json:"error,omitempty"`
}

type LifecycleService interface {
	Transition(ctx context.Context, itemID string, target model.Status) (*model.Item, error)
	TransitionMany(ctx context.Context, itemIDs []string, target model.Status) []BatchResult
	Sell(ctx context.Context, itemID string, sale SaleData) (*model.Item, error)
	MarkShipped(ctx context.Context, itemID, trackingNumber string, labelGenerated bool) (*model.Item, error)
	MarkDelivered(ctx context.Context, itemID string) (*model.Item, error)
	ApplyDiscount(ctx context.Context, itemID string, percentage float64, reason string) (*model.Item, error)
	ApplyShelfDiscount(ctx context.Context, thresholdDays int, percentage float64) ([]BatchResult, error)
}

type lifecycleService struct {
	items    repository.ItemRepository
	earnings EarningsService
	audit    AuditService
	now      func() time.Time
}

func NewLifecycleService(items repository.ItemRepository, earnings EarningsService, audit AuditService) LifecycleService {
	return &lifecycleService{items: items, earnings: earnings, audit: audit, now: time.Now}
}

func (s *lifecycleService) load(ctx context.Context, itemID string) (*model.Item, error) {
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *lifecycleService) Transition(ctx context.Context, itemID string, target model.Status) (*model.Item, error) {
	item, err := s.load(ctx, itemID)
	if err != nil {
		return nil, err
	}

	prev := item.Status
	updated := *item
	if err := inventory.Transition(&updated, target, s.now()); err != nil {
		return nil, err
	}
	if err := s.items.SaveWithStatusCheck(ctx, &updated, prev); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "transition", &updated, fmt.Sprintf("status %s -> %s", prev, target))
	return &updated, nil
}

func (s *lifecycleService) TransitionMany(ctx context.Context, itemIDs []string, target model.Status) []BatchResult {
	now := s.now()
	results := make([]BatchResult, 0, len(itemIDs))
	for _, id := range itemIDs {
		item, err := s.load(ctx, id)
		if err != nil {
			results = append(results, BatchResult{ID: id, Error: err.Error()})
			continue
		}

		prev := item.Status
		updated := *item
		if err := inventory.Transition(&updated, target, now); err != nil {
			results = append(results, BatchResult{ID: id, Error: err.Error()})
			continue
		}
		if err := s.items.SaveWithStatusCheck(ctx, &updated, prev); err != nil {
			results = append(results, BatchResult{ID: id, Error: err.Error()})
			continue
		}
		s.audit.Record(ctx, "transition", &updated, fmt.Sprintf("status %s -> %s", prev, target))
		results = append(results, BatchResult{ID: id, OK: true})
	}
	return results
}

func (s *lifecycleService) Sell(ctx context.Context, itemID string, sale SaleData) (*model.Item, error) {
	item, err := s.load(ctx, itemID)
	if err != nil {
		return nil, err
	}

	prev := item.Status
	updated := *item
	price := sale.SoldPrice
	updated.SoldPrice = &price
	updated.SaleType = sale.SaleType
	updated.FulfillmentMethod = sale.FulfillmentMethod
	updated.BuyerInfo = sale.Buyer
	updated.SaleTransactionID = sale.TransactionID
	if updated.SaleTransactionID == "" {
		updated.SaleTransactionID = uuid.NewString()
	}

	if err := inventory.Transition(&updated, model.StatusSold, s.now()); err != nil {
		return nil, err
	}
	if err := s.items.SaveWithStatusCheck(ctx, &updated, prev); err != nil {
		return nil, err
	}

	split, err := s.earnings.CreditSale(ctx, updated.SellerID, sale.SoldPrice)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "sold", &updated, fmt.Sprintf(
		"sold for %.2f (%s, %s); seller %.2f / admin %.2f",
		sale.SoldPrice, updated.SaleType, updated.FulfillmentMethod,
		split.SellerEarnings, split.AdminEarnings))
	return &updated, nil
}

func (s *lifecycleService) MarkShipped(ctx context.Context, itemID, trackingNumber string, labelGenerated bool) (*model.Item, error) {
	item, err := s.load(ctx, itemID)
	if err != nil {
		return nil, err
	}

	updated := *item
	if trackingNumber != "" {
		updated.TrackingNumber = trackingNumber
	}
	if labelGenerated {
		updated.ShippingLabelGenerated = true
	}
	if err := inventory.MarkShipped(&updated, s.now()); err != nil {
		return nil, err
	}
	if err := s.items.SaveWithStatusCheck(ctx, &updated, model.StatusSold); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "shipped", &updated, fmt.Sprintf("marked shipped, tracking %q", updated.TrackingNumber))
	return &updated, nil
}

func (s *lifecycleService) MarkDelivered(ctx context.Context, itemID string) (*model.Item, error) {
	item, err := s.load(ctx, itemID)
	if err != nil {
		return nil, err
	}

	updated := *item
	if err := inventory.MarkDelivered(&updated, s.now()); err != nil {
		return nil, err
	}
	if err := s.items.SaveWithStatusCheck(ctx, &updated, model.StatusSold); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "delivered", &updated, "marked delivered")
	return &updated, nil
}

func (s *lifecycleService) ApplyDiscount(ctx context.Context, itemID string, percentage float64, reason string) (*model.Item, error) {
	item, err := s.load(ctx, itemID)
	if err != nil {
		return nil, err
	}

	prev := item.Status
	before := item.Price
	updated := *item
	if err := inventory.ApplyDiscount(&updated, percentage, reason, s.now()); err != nil {
		return nil, err
	}
	if err := s.items.SaveWithStatusCheck(ctx, &updated, prev); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "discount", &updated, fmt.Sprintf(
		"%.0f%% off: price %.2f -> %.2f (%s)", percentage, before, updated.Price, reason))
	return &updated, nil
}

func (s *lifecycleService) ApplyShelfDiscount(ctx context.Context, thresholdDays int, percentage float64) ([]BatchResult, error) {
	// One snapshot and one now for the whole batch, so eligibility cannot
	// shift while the batch runs.
	now := s.now()
	snapshot, err := s.items.Snapshot(ctx, inventory.Criteria{Status: model.StatusLive})
	if err != nil {
		return nil, err
	}

	ptrs := make([]*model.Item, len(snapshot))
	prices := make(map[string]float64, len(snapshot))
	expected := make(map[string]model.Status, len(snapshot))
	for i := range snapshot {
		ptrs[i] = &snapshot[i]
		prices[snapshot[i].ID] = snapshot[i].Price
		expected[snapshot[i].ID] = snapshot[i].Status
	}

	modifiedIDs, err := inventory.ApplyShelfDiscount(ptrs, thresholdDays, percentage, now)
	if err != nil {
		return nil, err
	}

	modified := make([]*model.Item, 0, len(modifiedIDs))
	byID := make(map[string]*model.Item, len(snapshot))
	for _, p := range ptrs {
		byID[p.ID] = p
	}
	for _, id := range modifiedIDs {
		modified = append(modified, byID[id])
	}

	results := make([]BatchResult, 0, len(modified))
	for _, r := range s.items.SaveMany(ctx, modified, expected) {
		br := BatchResult{ID: r.ID, OK: r.OK}
		if r.Err != nil {
			br.Error = r.Err.Error()
			results = append(results, br)
			continue
		}
		item := byID[r.ID]
		s.audit.Record(ctx, "shelf-discount", item, fmt.Sprintf(
			"%.0f%% off after %d+ days on shelf: price %.2f -> %.2f",
			percentage, thresholdDays, prices[r.ID], item.Price))
		results = append(results, br)
	}
	return results, nil
}
