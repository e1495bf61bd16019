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

type FeeService struct {
	Repo *repo.GormRepo
}

// CreateFee guards in order: the student must exist, the organization
// must exist, and no fee may already cover the same (student,
// organization, academic year, semester, type). Returns the
// store-generated transaction id.
func (s *FeeService) CreateFee(ctx context.Context, req transport.CreateFeeRequest) (uint, error) {
	if req.StudentNumber == "" || req.OrganizationName == "" {
		return 0, fmt.Errorf("%w: student_number and organization_name are required", ErrValidation)
	}
	if req.Amount < 0 {
		return 0, fmt.Errorf("%w: amount cannot be negative", ErrValidation)
	}

	if _, err := requireStudent(ctx, s.Repo, req.StudentNumber); err != nil {
		return 0, err
	}
	if _, err := requireOrganization(ctx, s.Repo, req.OrganizationName); err != nil {
		return 0, err
	}

	fee := &models.Fee{
		Amount:           req.Amount,
		AcademicYear:     req.AcademicYear,
		Semester:         req.Semester,
		DatePaid:         req.DatePaid,
		DueDate:          req.DueDate,
		Type:             req.Type,
		DateIssued:       req.DateIssued,
		Status:           req.Status,
		StudentNumber:    req.StudentNumber,
		OrganizationName: req.OrganizationName,
	}

	exists, err := s.Repo.FeeExists(ctx, fee)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, fmt.Errorf("%w: fee already exists", ErrConflict)
	}

	if err := s.Repo.CreateFee(ctx, fee); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, fmt.Errorf("%w: fee already exists", ErrConflict)
		}
		return 0, err
	}

	return fee.TransactionID, nil
}
