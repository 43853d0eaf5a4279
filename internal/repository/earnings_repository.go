package repository

import (
	"context"

	"github.com/rackline/consign-backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EarningsRepository interface {
	Accrue(ctx context.Context, accountID string, cents int64) error
	Get(ctx context.Context, accountID string) (*model.AccountEarnings, error)
	SetDB(db *gorm.DB)
}

type earningsRepository struct {
	db *gorm.DB
}

func NewEarningsRepository(db *gorm.DB) EarningsRepository {
	return &earningsRepository{db: db}
}

func (r *earningsRepository) Accrue(ctx context.Context, accountID string, cents int64) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount_cents": gorm.Expr("amount_cents + ?", cents),
			"sales_count":  gorm.Expr("sales_count + 1"),
		}),
	}).Create(&model.AccountEarnings{AccountID: accountID, AmountCents: cents, SalesCount: 1}).Error
}

func (r *earningsRepository) Get(ctx context.Context, accountID string) (*model.AccountEarnings, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var ae model.AccountEarnings
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		FirstOrCreate(&ae, &model.AccountEarnings{AccountID: accountID}).Error; err != nil {
		return nil, err
	}
	return &ae, nil
}

func (r *earningsRepository) SetDB(db *gorm.DB) {
	r.db = db
}
