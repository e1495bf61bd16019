package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation") // 400
	ErrNotFound   = errors.New("not found")  // 404
	ErrConflict   = errors.New("conflict")   // 400 on this surface

	ErrInvalidEmail      = fmt.Errorf("%w: invalid email format", ErrValidation)
	ErrInvalidStatus     = fmt.Errorf("%w: invalid orderStatus value", ErrValidation)
	ErrInvalidQuantity   = fmt.Errorf("%w: invalid or missing productQuantity", ErrValidation)
	ErrInsufficientStock = fmt.Errorf("%w: insufficient product quantity", ErrValidation)
)
