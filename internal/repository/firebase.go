package repository

import (
	"context"
	"fmt"
	"paymob-course-checkout/internal/model"
	"sort"
	"time"

	"firebase.google.com/go/v4/db"
)

// isoMillis is JavaScript's Date.toISOString layout, used by existing records.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// firebasePurchase is the node stored at students/{uid}/purchased/{courseId}.
type firebasePurchase struct {
	PurchasedAt string `json:"purchasedAt"`
	OrderID     string `json:"orderId"`
}

type firebasePurchaseRepoImpl struct {
	client *db.Client
}

func NewFirebasePurchaseRepository(client *db.Client) PurchaseRepository {
	return &firebasePurchaseRepoImpl{
		client: client,
	}
}

func purchasedPath(userID string) string {
	return fmt.Sprintf("students/%s/purchased", userID)
}

func (r *firebasePurchaseRepoImpl) Upsert(ctx context.Context, purchase *model.Purchase) error {
	ref := r.client.NewRef(purchasedPath(purchase.UserID)).Child(purchase.CourseID)

	return ref.Set(ctx, &firebasePurchase{
		PurchasedAt: purchase.PurchasedAt.UTC().Format(isoMillis),
		OrderID:     purchase.OrderID,
	})
}

func (r *firebasePurchaseRepoImpl) ListByUser(ctx context.Context, userID string) ([]*model.Purchase, error) {
	var nodes map[string]firebasePurchase
	if err := r.client.NewRef(purchasedPath(userID)).Get(ctx, &nodes); err != nil {
		return nil, err
	}

	purchases := make([]*model.Purchase, 0, len(nodes))
	for courseID, node := range nodes {
		purchasedAt, err := time.Parse(time.RFC3339Nano, node.PurchasedAt)
		if err != nil {
			return nil, fmt.Errorf("parse purchasedAt of course %s: %w", courseID, err)
		}
		purchases = append(purchases, &model.Purchase{
			UserID:      userID,
			CourseID:    courseID,
			OrderID:     node.OrderID,
			PurchasedAt: purchasedAt,
		})
	}

	sort.Slice(purchases, func(i, j int) bool {
		return purchases[i].PurchasedAt.After(purchases[j].PurchasedAt)
	})

	return purchases, nil
}
