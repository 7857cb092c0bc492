package services

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/P3chys/catalogo-disciplinas/internal/apperrors"
	"github.com/P3chys/catalogo-disciplinas/internal/models"
	"github.com/P3chys/catalogo-disciplinas/internal/repository"
)

// ── Mock SemesterRepository ──

type mockSemesterRepo struct {
	semesters map[string]*models.Semester
	listErr   error
}

func newMockSemesterRepo(labels ...string) *mockSemesterRepo {
	m := &mockSemesterRepo{semesters: make(map[string]*models.Semester)}
	for _, l := range labels {
		m.semesters[l] = &models.Semester{ID: uuid.New(), Name: l}
	}
	return m
}

func (m *mockSemesterRepo) FindByName(_ context.Context, name string) (*models.Semester, error) {
	if s, ok := m.semesters[name]; ok {
		return s, nil
	}
	return nil, apperrors.ErrRecordNotFound
}

func (m *mockSemesterRepo) List(_ context.Context) ([]models.Semester, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []models.Semester
	for _, s := range m.semesters {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// ── Mock DisciplineRepository ──

type mockDisciplineRepo struct {
	disciplines []*models.Discipline
	findErr     error
	createErr   error
	// raceOnCreate simulates a concurrent insert of the same name that
	// lands between FindByName and Create.
	raceOnCreate bool
	// findErrAfterCreate fails lookups once Create has been called.
	findErrAfterCreate error
	creates            int
}

func newMockDisciplineRepo() *mockDisciplineRepo {
	return &mockDisciplineRepo{}
}

func (m *mockDisciplineRepo) FindByName(_ context.Context, name string) (*models.Discipline, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	if m.findErrAfterCreate != nil && m.creates > 0 {
		return nil, m.findErrAfterCreate
	}
	for _, d := range m.disciplines {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, apperrors.ErrRecordNotFound
}

func (m *mockDisciplineRepo) Create(_ context.Context, d *models.Discipline) error {
	m.creates++
	if m.createErr != nil {
		return m.createErr
	}
	if m.raceOnCreate {
		m.raceOnCreate = false
		m.disciplines = append(m.disciplines, &models.Discipline{ID: uuid.New(), Name: d.Name, SemesterID: d.SemesterID})
	}
	for _, existing := range m.disciplines {
		if existing.Name == d.Name {
			return apperrors.ErrConstraintViolation
		}
	}
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	m.disciplines = append(m.disciplines, d)
	return nil
}

func (m *mockDisciplineRepo) List(_ context.Context) ([]models.Discipline, error) {
	result := make([]models.Discipline, 0, len(m.disciplines))
	for _, d := range m.disciplines {
		result = append(result, *d)
	}
	return result, nil
}

func (m *mockDisciplineRepo) ListBySemester(_ context.Context, semesterID uuid.UUID) ([]models.Discipline, error) {
	var result []models.Discipline
	for _, d := range m.disciplines {
		if d.SemesterID != nil && *d.SemesterID == semesterID {
			result = append(result, *d)
		}
	}
	return result, nil
}

func (m *mockDisciplineRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.disciplines)), nil
}

var errStoreDown = errors.New("store unavailable")

func newMockRepository(sem *mockSemesterRepo, disc *mockDisciplineRepo) *repository.Repository {
	return &repository.Repository{
		Semester:   sem,
		Discipline: disc,
	}
}
