package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SemesterLabels are the fixed semester names offered by the discipline form
// and seeded into the semesters table.
var SemesterLabels = []string{
	"1º semestre",
	"2º semestre",
	"3º semestre",
	"4º semestre",
	"5º semestre",
	"6º semestre",
}

// IsSemesterLabel reports whether label is one of SemesterLabels.
func IsSemesterLabel(label string) bool {
	for _, l := range SemesterLabels {
		if l == label {
			return true
		}
	}
	return false
}

type Semester struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"size:64;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (Semester) TableName() string {
	return "semesters"
}

func (s *Semester) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
