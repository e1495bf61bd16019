package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/adelacruz/campus-api/internal/hash"
	"github.com/adelacruz/campus-api/internal/orgs/models"
	"github.com/adelacruz/campus-api/internal/orgs/repo"
	"github.com/adelacruz/campus-api/internal/orgs/transport"
	"gorm.io/gorm"
)

type StudentService struct {
	Repo *repo.GormRepo
}

func (s *StudentService) CreateStudent(ctx context.Context, req transport.CreateStudentRequest) (*models.Student, error) {
	if req.StudentNumber == "" || req.FirstName == "" || req.LastName == "" {
		return nil, fmt.Errorf("%w: student_number, first_name and last_name are required", ErrValidation)
	}

	pwHash := ""
	if req.Password != "" {
		var err error
		pwHash, err = hash.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
	}

	student := &models.Student{
		StudentNumber: req.StudentNumber,
		FirstName:     req.FirstName,
		MiddleName:    req.MiddleName,
		LastName:      req.LastName,
		DegreeProgram: req.DegreeProgram,
		Gender:        req.Gender,
		Birthdate:     req.Birthdate,
		Username:      req.Username,
		Password:      pwHash,
	}

	if err := s.Repo.CreateStudent(ctx, student); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: student %s already exists", ErrConflict, req.StudentNumber)
		}
		return nil, err
	}

	return student, nil
}

func (s *StudentService) GetStudent(ctx context.Context, studentNumber string) (*models.Student, error) {
	return requireStudent(ctx, s.Repo, studentNumber)
}

func (s *StudentService) UpdateStudent(ctx context.Context, studentNumber string, req transport.UpdateStudentRequest) (*models.Student, error) {
	student, err := requireStudent(ctx, s.Repo, studentNumber)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.MiddleName != nil {
		student.MiddleName = *req.MiddleName
	}
	if req.LastName != nil {
		student.LastName = *req.LastName
	}
	if req.DegreeProgram != nil {
		student.DegreeProgram = *req.DegreeProgram
	}
	if req.Gender != nil {
		student.Gender = *req.Gender
	}
	if req.Birthdate != nil {
		student.Birthdate = *req.Birthdate
	}
	if req.Username != nil {
		student.Username = *req.Username
	}

	if err := s.Repo.SaveStudent(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

func (s *StudentService) DeleteStudent(ctx context.Context, studentNumber string) (string, error) {
	if err := s.Repo.DeleteStudent(ctx, studentNumber); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrStudentNotFound
		}
		return "", err
	}
	return studentNumber, nil
}
