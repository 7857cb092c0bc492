package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/P3chys/catalogo-disciplinas/internal/apperrors"
)

// Repository groups the data access interfaces.
type Repository struct {
	Semester   SemesterRepository
	Discipline DisciplineRepository
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Semester:   NewSemesterRepo(db),
		Discipline: NewDisciplineRepo(db),
	}
}

// translate maps gorm errors onto the application error kinds.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrRecordNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.ErrConstraintViolation
	default:
		return err
	}
}
