package database

import (
	"tasca-menu/internal/models"

	"gorm.io/gorm"
)

// RecordActivity appends one entry to the activity log. Callers pass the
// transaction handle of the mutation being logged, so the entry commits
// and rolls back together with it.
func RecordActivity(db *gorm.DB, action string) error {
	record := models.ActivityLog{Action: action}
	return db.Create(&record).Error
}
