package service

import (
	"context"
	"fmt"
	"paymob-course-checkout/internal/model"
	"paymob-course-checkout/internal/repository"
)

type UserService interface {
	GetPurchases(ctx context.Context, userID string) ([]*model.Purchase, error)
}

type userServiceImpl struct {
	purchaseRepo repository.PurchaseRepository
}

func NewUserService(
	purchaseRepo repository.PurchaseRepository,
) UserService {
	return &userServiceImpl{
		purchaseRepo: purchaseRepo,
	}
}

func (s *userServiceImpl) GetPurchases(ctx context.Context, userID string) ([]*model.Purchase, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: uid required", ErrInvalidRequest)
	}

	purchases, err := s.purchaseRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	if purchases == nil {
		purchases = []*model.Purchase{}
	}

	return purchases, nil
}
