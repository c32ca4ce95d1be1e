package repository

import (
	"context"
	"paymob-course-checkout/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PurchaseRepository interface {
	// Upsert stores the purchase, replacing any earlier record for the same user and course.
	Upsert(ctx context.Context, purchase *model.Purchase) error
	ListByUser(ctx context.Context, userID string) ([]*model.Purchase, error)
}

type purchaseRepoImpl struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepoImpl{
		db: db,
	}
}

func (r *purchaseRepoImpl) Upsert(ctx context.Context, purchase *model.Purchase) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"order_id", "purchased_at", "updated_at"}),
	}).Create(purchase).Error
}

func (r *purchaseRepoImpl) ListByUser(ctx context.Context, userID string) ([]*model.Purchase, error) {
	var purchases []*model.Purchase

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("purchased_at DESC").
		Find(&purchases).Error
	if err != nil {
		return nil, err
	}

	return purchases, nil
}
