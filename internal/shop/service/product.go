package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/adelacruz/campus-api/internal/shop/models"
	"github.com/adelacruz/campus-api/internal/shop/repo"
	"github.com/adelacruz/campus-api/internal/shop/transport"
	"github.com/adelacruz/campus-api/internal/validate"
	"gorm.io/gorm"
)

type ProductService struct {
	Repo *repo.GormRepo
}

func (s *ProductService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if req.ProductID == "" || req.ProductName == "" || req.ProductDescription == "" {
		return nil, fmt.Errorf("%w: productID, productName and productDescription are required", ErrValidation)
	}
	if err := validate.MaxLen(req.ProductDescription, 500); err != nil {
		return nil, fmt.Errorf("%w: productDescription exceeds 500 characters", ErrValidation)
	}
	if err := validate.Enum(req.ProductType, 1, 2, 3, 4, 5); err != nil {
		return nil, fmt.Errorf("%w: productType must be between 1 and 5", ErrValidation)
	}
	if req.ProductQuantity == nil {
		return nil, ErrInvalidQuantity
	}
	if err := validate.NonNegative(*req.ProductQuantity); err != nil {
		return nil, ErrInvalidQuantity
	}

	prod := &models.Product{
		ProductID:          req.ProductID,
		ProductName:        req.ProductName,
		ProductDescription: req.ProductDescription,
		ProductType:        req.ProductType,
		ProductQuantity:    *req.ProductQuantity,
	}

	if err := s.Repo.CreateProduct(ctx, prod); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: product %s already exists", ErrConflict, req.ProductID)
		}
		return nil, err
	}

	return prod, nil
}

func (s *ProductService) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	prod, err := s.Repo.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, productID)
		}
		return nil, err
	}
	return prod, nil
}

// UpdateQuantity replaces the stock level outright. Only productQuantity
// is updatable on this surface.
func (s *ProductService) UpdateQuantity(ctx context.Context, productID string, req transport.UpdateProductRequest) (*models.Product, error) {
	if req.ProductQuantity == nil {
		return nil, ErrInvalidQuantity
	}
	if err := validate.NonNegative(*req.ProductQuantity); err != nil {
		return nil, ErrInvalidQuantity
	}

	prod, err := s.Repo.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, productID)
		}
		return nil, err
	}

	prod.ProductQuantity = *req.ProductQuantity
	if err := s.Repo.SaveProduct(ctx, prod); err != nil {
		return nil, err
	}

	return prod, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, productID string) (string, error) {
	if err := s.Repo.DeleteProduct(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: product %s", ErrNotFound, productID)
		}
		return "", err
	}
	return productID, nil
}
