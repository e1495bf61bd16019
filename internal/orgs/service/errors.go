package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation") // 400
	ErrNotFound   = errors.New("not found")  // 404
	ErrConflict   = errors.New("conflict")   // 400 for memberships, 409 for fees

	ErrStudentNotFound      = fmt.Errorf("%w: student", ErrNotFound)
	ErrOrganizationNotFound = fmt.Errorf("%w: organization", ErrNotFound)
)
