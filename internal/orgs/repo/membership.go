package repo

import (
	"context"

	"github.com/adelacruz/campus-api/internal/orgs/models"
)

func (r *GormRepo) CreateMembership(ctx context.Context, m *models.Membership) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

// MembershipExists reports whether the student already belongs to the
// organization, in any academic year.
func (r *GormRepo) MembershipExists(ctx context.Context, studentNumber, organizationName string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Membership{}).
		Where("student_number = ? AND organization_name = ?", studentNumber, organizationName).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepo) GetMemberships(ctx context.Context, studentNumber string) ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.DB.WithContext(ctx).
		Where("student_number = ?", studentNumber).
		Order("organization_name ASC").
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}
