package repo

import (
	"context"

	"github.com/adelacruz/campus-api/internal/orgs/models"
)

func (r *GormRepo) CreateFee(ctx context.Context, fee *models.Fee) error {
	return r.DB.WithContext(ctx).Create(fee).Error
}

// FeeExists checks for a fee with the same (student, organization,
// academic year, semester, type) — the duplicate-issue guard.
func (r *GormRepo) FeeExists(ctx context.Context, fee *models.Fee) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Fee{}).
		Where("student_number = ? AND organization_name = ? AND academic_year = ? AND semester = ? AND type = ?",
			fee.StudentNumber, fee.OrganizationName, fee.AcademicYear, fee.Semester, fee.Type).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
