package repo

import "gorm.io/gorm"

// GormRepo is the entity store for the shop backend. One instance is
// built around the storage handle opened in main and shared by the
// services.
type GormRepo struct {
	DB *gorm.DB
}
