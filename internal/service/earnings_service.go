package service

import (
	"context"
	"errors"
	"math"

	"github.com/rackline/consign-backend/internal/inventory"
	"github.com/rackline/consign-backend/internal/model"
	"github.com/rackline/consign-backend/internal/repository"
)

type EarningsService interface {
	Get(ctx context.Context, accountID string) (*model.AccountEarnings, error)
	// CreditSale accrues the fixed 75/25 split of a realized sale price to
	// the seller and the admin ledger rows.
	CreditSale(ctx context.Context, sellerID string, soldPrice float64) (inventory.Earnings, error)
}

type earningsService struct {
	repo repository.EarningsRepository
}

func NewEarningsService(repo repository.EarningsRepository) EarningsService {
	return &earningsService{repo: repo}
}

func (s *earningsService) Get(ctx context.Context, accountID string) (*model.AccountEarnings, error) {
	if accountID == "" {
		return nil, errors.New("account id is required")
	}
	return s.repo.Get(ctx, accountID)
}

func (s *earningsService) CreditSale(ctx context.Context, sellerID string, soldPrice float64) (inventory.Earnings, error) {
	if sellerID == "" {
		return inventory.Earnings{}, errors.New("seller id is required")
	}
	if soldPrice < 0 {
		return inventory.Earnings{}, errors.New("sold price must not be negative")
	}
	split := inventory.Split(soldPrice)
	if err := s.repo.Accrue(ctx, sellerID, toCents(split.SellerEarnings)); err != nil {
		return split, err
	}
	if err := s.repo.Accrue(ctx, model.AdminAccountID, toCents(split.AdminEarnings)); err != nil {
		return split, err
	}
	return split, nil
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
