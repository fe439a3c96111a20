package models

import "time"

// ActivityLog is an append-only audit entry. Rows are never updated or
// deleted; the action line carries the actor and item names as written
// at the time of the mutation, so history survives later renames.
type ActivityLog struct {
	ID        uint      `gorm:"primaryKey"`
	Action    string    `gorm:"size:200;not null"`
	Timestamp time.Time `gorm:"autoCreateTime"`
}
