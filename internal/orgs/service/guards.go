package service

import (
	"context"
	"errors"

	"github.com/adelacruz/campus-api/internal/orgs/models"
	"github.com/adelacruz/campus-api/internal/orgs/repo"
	"gorm.io/gorm"
)

// Existence guards shared by the membership and fee flows. Both entities
// must exist before a referencing row may be written.

func requireStudent(ctx context.Context, r *repo.GormRepo, studentNumber string) (*models.Student, error) {
	student, err := r.GetStudent(ctx, studentNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return student, nil
}

func requireOrganization(ctx context.Context, r *repo.GormRepo, name string) (*models.Organization, error) {
	org, err := r.GetOrganization(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, err
	}
	return org, nil
}
