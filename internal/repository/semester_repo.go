package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/P3chys/catalogo-disciplinas/internal/models"
)

type SemesterRepository interface {
	FindByName(ctx context.Context, name string) (*models.Semester, error)
	List(ctx context.Context) ([]models.Semester, error)
}

type semesterRepo struct {
	db *gorm.DB
}

func NewSemesterRepo(db *gorm.DB) SemesterRepository {
	return &semesterRepo{db: db}
}

func (r *semesterRepo) FindByName(ctx context.Context, name string) (*models.Semester, error) {
	var semester models.Semester
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&semester).Error
	if err != nil {
		return nil, translate(err)
	}
	return &semester, nil
}

func (r *semesterRepo) List(ctx context.Context) ([]models.Semester, error) {
	var semesters []models.Semester
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&semesters).Error
	return semesters, translate(err)
}
