package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Discipline is a course keyed by its unique name. SemesterID is set once at
// creation and never changed.
type Discipline struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name       string     `gorm:"size:64;not null;uniqueIndex" json:"name"`
	SemesterID *uuid.UUID `gorm:"type:uuid;index" json:"semester_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (Discipline) TableName() string {
	return "disciplines"
}

func (d *Discipline) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
