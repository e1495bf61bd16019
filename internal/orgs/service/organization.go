package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/adelacruz/campus-api/internal/orgs/models"
	"github.com/adelacruz/campus-api/internal/orgs/repo"
	"github.com/adelacruz/campus-api/internal/orgs/transport"
	"gorm.io/gorm"
)

type OrganizationService struct {
	Repo *repo.GormRepo
}

func (s *OrganizationService) CreateOrganization(ctx context.Context, req transport.CreateOrganizationRequest) (*models.Organization, error) {
	if req.OrganizationName == "" {
		return nil, fmt.Errorf("%w: organization_name is required", ErrValidation)
	}

	org := &models.Organization{
		OrganizationName: req.OrganizationName,
		Classification:   req.Classification,
	}

	if err := s.Repo.CreateOrganization(ctx, org); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: organization %s already exists", ErrConflict, req.OrganizationName)
		}
		return nil, err
	}

	return org, nil
}

func (s *OrganizationService) FindOrganization(ctx context.Context, name string) (*models.Organization, error) {
	return requireOrganization(ctx, s.Repo, name)
}
