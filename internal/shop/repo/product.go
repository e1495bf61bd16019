package repo

import (
	"context"

	"github.com/adelacruz/campus-api/internal/shop/models"
	"gorm.io/gorm"
)

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) error {
	return r.DB.WithContext(ctx).Create(prod).Error
}

func (r *GormRepo) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	prod := models.Product{}
	if err := r.DB.WithContext(ctx).Where("product_id = ?", productID).First(&prod).Error; err != nil {
		return nil, err
	}
	return &prod, nil
}

func (r *GormRepo) SaveProduct(ctx context.Context, prod *models.Product) error {
	return r.DB.WithContext(ctx).Save(prod).Error
}

func (r *GormRepo) DeleteProduct(ctx context.Context, productID string) error {
	res := r.DB.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DecrementQuantity takes qty units of stock in a single conditional
// UPDATE. The quantity guard lives in the WHERE clause, so two requests
// cannot both pass it and oversell; zero rows affected means the stock
// was insufficient (or the product vanished).
func (r *GormRepo) DecrementQuantity(ctx context.Context, productID string, qty int) (bool, error) {
	res := r.DB.WithContext(ctx).Model(&models.Product{}).
		Where("product_id = ? AND product_quantity >= ?", productID, qty).
		UpdateColumn("product_quantity", gorm.Expr("product_quantity - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// IncrementQuantity returns stock taken by DecrementQuantity when the
// order insert that followed it failed.
func (r *GormRepo) IncrementQuantity(ctx context.Context, productID string, qty int) error {
	return r.DB.WithContext(ctx).Model(&models.Product{}).
		Where("product_id = ?", productID).
		UpdateColumn("product_quantity", gorm.Expr("product_quantity + ?", qty)).Error
}
