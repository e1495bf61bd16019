package repo

import "gorm.io/gorm"

// GormRepo is the entity store for the student-organization backend.
type GormRepo struct {
	DB *gorm.DB
}
