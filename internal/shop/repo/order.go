package repo

import (
	"context"

	"github.com/adelacruz/campus-api/internal/shop/models"
	"gorm.io/gorm"
)

func (r *GormRepo) CreateOrder(ctx context.Context, order *models.OrderTransaction) error {
	return r.DB.WithContext(ctx).Create(order).Error
}

func (r *GormRepo) GetOrder(ctx context.Context, transactionID string) (*models.OrderTransaction, error) {
	order := models.OrderTransaction{}
	if err := r.DB.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) SaveOrder(ctx context.Context, order *models.OrderTransaction) error {
	return r.DB.WithContext(ctx).Save(order).Error
}

func (r *GormRepo) DeleteOrder(ctx context.Context, transactionID string) error {
	res := r.DB.WithContext(ctx).Where("transaction_id = ?", transactionID).Delete(&models.OrderTransaction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
