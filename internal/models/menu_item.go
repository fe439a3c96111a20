package models

// DefaultCategory is assigned when an item is submitted without a category.
const DefaultCategory = "Uncategorized"

type MenuItem struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"type:text"`
	Price       int    `gorm:"not null"` // smallest currency unit, whole numbers only
	Category    string `gorm:"size:50;not null;default:Uncategorized"`
}
