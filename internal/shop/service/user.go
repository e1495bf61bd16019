package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/adelacruz/campus-api/internal/hash"
	"github.com/adelacruz/campus-api/internal/shop/models"
	"github.com/adelacruz/campus-api/internal/shop/repo"
	"github.com/adelacruz/campus-api/internal/shop/transport"
	"github.com/adelacruz/campus-api/internal/validate"
	"gorm.io/gorm"
)

type UserService struct {
	Repo *repo.GormRepo
}

func (s *UserService) CreateUser(ctx context.Context, req transport.CreateUserRequest) (*models.User, error) {
	email, err := validate.Email(req.Email)
	if err != nil {
		return nil, ErrInvalidEmail
	}

	if req.FirstName == "" || req.LastName == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: firstName, lastName and password are required", ErrValidation)
	}

	userType := req.UserType
	if userType == "" {
		userType = "customer"
	}
	if userType != "customer" && userType != "merchant" {
		return nil, fmt.Errorf("%w: userType must be customer or merchant", ErrValidation)
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:      email,
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
		UserType:   userType,
		Password:   pwHash,
	}

	if err := s.Repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: user already exists", ErrConflict)
		}
		return nil, err
	}

	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, email string) (*models.User, error) {
	user, err := s.Repo.GetUser(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetUsers(ctx)
}

// UpdateUser keeps the legacy form contract: firstName and lastName are
// written unconditionally, middleName only when present in the request.
// Email and password are never touched here.
func (s *UserService) UpdateUser(ctx context.Context, rawEmail string, req transport.UpdateUserRequest) (*models.User, error) {
	email, err := validate.Email(rawEmail)
	if err != nil {
		return nil, ErrInvalidEmail
	}

	user, err := s.Repo.GetUser(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
		}
		return nil, err
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	if req.MiddleName != nil {
		user.MiddleName = *req.MiddleName
	}

	if err := s.Repo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, rawEmail string) (string, error) {
	email, err := validate.Email(rawEmail)
	if err != nil {
		return "", ErrInvalidEmail
	}

	if err := s.Repo.DeleteUser(ctx, email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: user %s", ErrNotFound, email)
		}
		return "", err
	}

	return email, nil
}
