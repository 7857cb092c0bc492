package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/P3chys/catalogo-disciplinas/internal/models"
)

// SeedSemesters inserts whichever of the fixed semesters are missing.
func SeedSemesters(db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&models.Semester{}).Where("name IN ?", models.SemesterLabels).Count(&count).Error; err != nil {
		return err
	}

	if int(count) == len(models.SemesterLabels) {
		logger.Info("Semesters already seeded, skipping")
		return nil
	}

	semesters := make([]models.Semester, 0, len(models.SemesterLabels))
	for _, label := range models.SemesterLabels {
		semesters = append(semesters, models.Semester{Name: label})
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&semesters)
	if result.Error != nil {
		return result.Error
	}

	logger.Info("Seeded semesters", zap.Int64("created", result.RowsAffected))
	return nil
}
