package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/P3chys/catalogo-disciplinas/internal/apperrors"
	"github.com/P3chys/catalogo-disciplinas/internal/models"
	"github.com/P3chys/catalogo-disciplinas/internal/repository"
)

// ErrSemesterNotFound is returned when a submission names a semester that is
// not in the store. Creating the discipline anyway would leave it orphaned.
var ErrSemesterNotFound = fmt.Errorf("semester not found: %w", apperrors.ErrValidation)

// RegisterResult reports what Register did with a submission.
type RegisterResult struct {
	Discipline *models.Discipline
	// Known is true when the name was already stored, either before the
	// call or by a concurrent insert that won the unique index.
	Known bool
}

type SemesterView struct {
	Name        string
	Disciplines []string
}

type DisciplineView struct {
	Name     string
	Semester string
}

// Overview is everything the disciplines page lists.
type Overview struct {
	Disciplines []DisciplineView
	Semesters   []SemesterView
}

type CatalogService interface {
	Register(ctx context.Context, name, semesterLabel string) (*RegisterResult, error)
	Overview(ctx context.Context) (*Overview, error)
}

type catalogService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewCatalogService(repo *repository.Repository, logger *zap.Logger) CatalogService {
	return &catalogService{repo: repo, logger: logger}
}

func (s *catalogService) Register(ctx context.Context, name, semesterLabel string) (*RegisterResult, error) {
	existing, err := s.repo.Discipline.FindByName(ctx, name)
	if err == nil {
		return &RegisterResult{Discipline: existing, Known: true}, nil
	}
	if !errors.Is(err, apperrors.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up discipline: %w", err)
	}

	semester, err := s.repo.Semester.FindByName(ctx, semesterLabel)
	if err != nil {
		if errors.Is(err, apperrors.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		return nil, fmt.Errorf("failed to look up semester: %w", err)
	}

	discipline := &models.Discipline{
		Name:       name,
		SemesterID: &semester.ID,
	}
	if err := s.repo.Discipline.Create(ctx, discipline); err != nil {
		if !errors.Is(err, apperrors.ErrConstraintViolation) {
			return nil, fmt.Errorf("failed to create discipline: %w", err)
		}

		s.logger.Info("Discipline inserted concurrently, treating as existing", zap.String("name", name))
		winner, findErr := s.repo.Discipline.FindByName(ctx, name)
		if findErr != nil {
			s.logger.Warn("Could not load concurrently inserted discipline",
				zap.String("name", name),
				zap.Error(findErr),
			)
			winner = nil
		}
		return &RegisterResult{Discipline: winner, Known: true}, nil
	}

	s.logger.Info("Discipline created",
		zap.String("name", name),
		zap.String("semester", semester.Name),
		zap.String("id", discipline.ID.String()),
	)
	return &RegisterResult{Discipline: discipline, Known: false}, nil
}

func (s *catalogService) Overview(ctx context.Context) (*Overview, error) {
	semesters, err := s.repo.Semester.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list semesters: %w", err)
	}

	disciplines, err := s.repo.Discipline.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list disciplines: %w", err)
	}

	names := make(map[string]string, len(semesters))
	out := &Overview{
		Disciplines: make([]DisciplineView, 0, len(disciplines)),
		Semesters:   make([]SemesterView, 0, len(semesters)),
	}

	for _, sem := range semesters {
		names[sem.ID.String()] = sem.Name

		owned, err := s.repo.Discipline.ListBySemester(ctx, sem.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list disciplines of %s: %w", sem.Name, err)
		}
		view := SemesterView{Name: sem.Name, Disciplines: make([]string, 0, len(owned))}
		for _, d := range owned {
			view.Disciplines = append(view.Disciplines, d.Name)
		}
		out.Semesters = append(out.Semesters, view)
	}

	for _, d := range disciplines {
		view := DisciplineView{Name: d.Name}
		if d.SemesterID != nil {
			view.Semester = names[d.SemesterID.String()]
		}
		out.Disciplines = append(out.Disciplines, view)
	}

	return out, nil
}
