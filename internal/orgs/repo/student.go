package repo

import (
	"context"

	"github.com/adelacruz/campus-api/internal/orgs/models"
	"gorm.io/gorm"
)

func (r *GormRepo) CreateStudent(ctx context.Context, student *models.Student) error {
	return r.DB.WithContext(ctx).Create(student).Error
}

func (r *GormRepo) GetStudent(ctx context.Context, studentNumber string) (*models.Student, error) {
	student := models.Student{}
	if err := r.DB.WithContext(ctx).Where("student_number = ?", studentNumber).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *GormRepo) SaveStudent(ctx context.Context, student *models.Student) error {
	return r.DB.WithContext(ctx).Save(student).Error
}

func (r *GormRepo) DeleteStudent(ctx context.Context, studentNumber string) error {
	res := r.DB.WithContext(ctx).Where("student_number = ?", studentNumber).Delete(&models.Student{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
