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

type MembershipService struct {
	Repo *repo.GormRepo
}

// CreateMembership guards in order: the student must exist, the
// organization must exist, and the (student, organization) pair must not
// already hold a membership. The unique index on the pair backs the last
// guard, so a concurrent duplicate loses at the store instead of
// slipping through.
func (s *MembershipService) CreateMembership(ctx context.Context, req transport.CreateMembershipRequest) (*models.Membership, error) {
	if req.StudentNumber == "" || req.OrganizationName == "" {
		return nil, fmt.Errorf("%w: student_number and organization_name are required", ErrValidation)
	}

	if _, err := requireStudent(ctx, s.Repo, req.StudentNumber); err != nil {
		return nil, err
	}
	if _, err := requireOrganization(ctx, s.Repo, req.OrganizationName); err != nil {
		return nil, err
	}

	exists, err := s.Repo.MembershipExists(ctx, req.StudentNumber, req.OrganizationName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: membership already exists", ErrConflict)
	}

	m := &models.Membership{
		StudentNumber:    req.StudentNumber,
		OrganizationName: req.OrganizationName,
		AcademicYear:     req.AcademicYear,
		Semester:         req.Semester,
		Status:           req.Status,
		Committee:        req.Committee,
		SemesterJoined:   req.SemesterJoined,
		Role:             req.Role,
	}

	if err := s.Repo.CreateMembership(ctx, m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: membership already exists", ErrConflict)
		}
		return nil, err
	}

	return m, nil
}

func (s *MembershipService) GetMemberships(ctx context.Context, studentNumber string) ([]models.Membership, error) {
	if _, err := requireStudent(ctx, s.Repo, studentNumber); err != nil {
		return nil, err
	}
	return s.Repo.GetMemberships(ctx, studentNumber)
}
