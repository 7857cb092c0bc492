package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/P3chys/catalogo-disciplinas/internal/models"
)

type DisciplineRepository interface {
	FindByName(ctx context.Context, name string) (*models.Discipline, error)
	Create(ctx context.Context, discipline *models.Discipline) error
	List(ctx context.Context) ([]models.Discipline, error)
	ListBySemester(ctx context.Context, semesterID uuid.UUID) ([]models.Discipline, error)
	Count(ctx context.Context) (int64, error)
}

type disciplineRepo struct {
	db *gorm.DB
}

func NewDisciplineRepo(db *gorm.DB) DisciplineRepository {
	return &disciplineRepo{db: db}
}

// FindByName is an exact, case-sensitive match.
func (r *disciplineRepo) FindByName(ctx context.Context, name string) (*models.Discipline, error) {
	var discipline models.Discipline
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&discipline).Error
	if err != nil {
		return nil, translate(err)
	}
	return &discipline, nil
}

// Create returns apperrors.ErrConstraintViolation when the name is already taken.
func (r *disciplineRepo) Create(ctx context.Context, discipline *models.Discipline) error {
	return translate(r.db.WithContext(ctx).Create(discipline).Error)
}

func (r *disciplineRepo) List(ctx context.Context) ([]models.Discipline, error) {
	var disciplines []models.Discipline
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&disciplines).Error
	return disciplines, translate(err)
}

func (r *disciplineRepo) ListBySemester(ctx context.Context, semesterID uuid.UUID) ([]models.Discipline, error) {
	var disciplines []models.Discipline
	err := r.db.WithContext(ctx).
		Where("semester_id = ?", semesterID).
		Order("created_at ASC").
		Find(&disciplines).Error
	return disciplines, translate(err)
}

func (r *disciplineRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Discipline{}).
		Count(&count).Error
	return count, translate(err)
}
