package repo

import (
	"context"

	"github.com/adelacruz/campus-api/internal/orgs/models"
)

func (r *GormRepo) CreateOrganization(ctx context.Context, org *models.Organization) error {
	return r.DB.WithContext(ctx).Create(org).Error
}

func (r *GormRepo) GetOrganization(ctx context.Context, name string) (*models.Organization, error) {
	org := models.Organization{}
	if err := r.DB.WithContext(ctx).Where("organization_name = ?", name).First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}
