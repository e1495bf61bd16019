package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adelacruz/campus-api/internal/shop/models"
	"github.com/adelacruz/campus-api/internal/shop/repo"
	"github.com/adelacruz/campus-api/internal/shop/transport"
	"github.com/adelacruz/campus-api/internal/validate"
	"github.com/adelacruz/campus-api/pkg/logging"
	"gorm.io/gorm"
)

type OrderService struct {
	Repo *repo.GormRepo
}

// CreateOrder runs the guard-then-write sequence for a purchase. The
// stock guard is a conditional UPDATE, so the quantity check and the
// decrement commit together; the order insert follows, and a failed
// insert gives the stock back.
func (s *OrderService) CreateOrder(ctx context.Context, req transport.CreateOrderRequest) (*models.OrderTransaction, error) {
	if req.TransactionID == "" || req.ProductID == "" || req.Email == "" {
		return nil, fmt.Errorf("%w: transactionID, productID and email are required", ErrValidation)
	}
	if req.OrderQuantity < 1 {
		return nil, fmt.Errorf("%w: orderQuantity must be at least 1", ErrValidation)
	}
	if err := validate.MaxLen(req.ProductDescription, 500); err != nil {
		return nil, fmt.Errorf("%w: productDescription exceeds 500 characters", ErrValidation)
	}

	status := models.OrderStatusPending
	if req.OrderStatus != nil {
		if err := validate.Enum(*req.OrderStatus, 0, 1, 2); err != nil {
			return nil, ErrInvalidStatus
		}
		status = *req.OrderStatus
	}

	// distinguishes "no such product" (404) from "not enough stock" (400)
	if _, err := s.Repo.GetProduct(ctx, req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, req.ProductID)
		}
		return nil, err
	}

	ok, err := s.Repo.DecrementQuantity(ctx, req.ProductID, req.OrderQuantity)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInsufficientStock
	}

	dateOrdered := time.Now().UTC()
	if req.DateOrdered != nil {
		dateOrdered = *req.DateOrdered
	}

	order := &models.OrderTransaction{
		TransactionID:      req.TransactionID,
		ProductID:          req.ProductID,
		OrderQuantity:      req.OrderQuantity,
		ProductDescription: req.ProductDescription,
		OrderStatus:        status,
		Email:              req.Email,
		DateOrdered:        dateOrdered,
	}

	if err := s.Repo.CreateOrder(ctx, order); err != nil {
		// compensating write: the stock was already taken above
		if rbErr := s.Repo.IncrementQuantity(ctx, req.ProductID, req.OrderQuantity); rbErr != nil {
			logging.FromContext(ctx).Error("stock rollback failed",
				"product_id", req.ProductID, "quantity", req.OrderQuantity, "error", rbErr)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: transaction %s already exists", ErrConflict, req.TransactionID)
		}
		return nil, err
	}

	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, transactionID string) (*models.OrderTransaction, error) {
	order, err := s.Repo.GetOrder(ctx, transactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: transaction %s", ErrNotFound, transactionID)
		}
		return nil, err
	}
	return order, nil
}

// UpdateStatus sets orderStatus to any of {0,1,2}. The legacy surface
// never enforced forward-only transitions and neither does this one.
func (s *OrderService) UpdateStatus(ctx context.Context, transactionID string, req transport.UpdateOrderRequest) (*models.OrderTransaction, error) {
	if req.OrderStatus == nil {
		return nil, ErrInvalidStatus
	}
	if err := validate.Enum(*req.OrderStatus, 0, 1, 2); err != nil {
		return nil, ErrInvalidStatus
	}

	order, err := s.Repo.GetOrder(ctx, transactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: transaction %s", ErrNotFound, transactionID)
		}
		return nil, err
	}

	order.OrderStatus = *req.OrderStatus
	if err := s.Repo.SaveOrder(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, transactionID string) (string, error) {
	if err := s.Repo.DeleteOrder(ctx, transactionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: transaction %s", ErrNotFound, transactionID)
		}
		return "", err
	}
	return transactionID, nil
}
