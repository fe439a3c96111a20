package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tasca-menu/internal/database"
	"tasca-menu/internal/models"

	"gorm.io/gorm"
)

var (
	ErrItemNotFound    = errors.New("menu item not found")
	ErrNameRequired    = errors.New("name is required")
	ErrPriceNotInteger = errors.New("price must be a whole number")
)

// ItemInput carries the raw form fields of an add/edit submission.
type ItemInput struct {
	Name        string
	Description string
	Price       string
	Category    string
}

// ParsePrice converts a submitted price string into an integer amount in the
// smallest currency unit. Thousands separators are stripped first, so
// "1,200" parses to 1200.
func ParsePrice(s string) (int, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	price, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, ErrPriceNotInteger
	}
	return price, nil
}

// AddItem validates the input and inserts a new menu item together with its
// activity entry in one transaction. Validation failures leave both tables
// untouched.
func AddItem(db *gorm.DB, in ItemInput, actor string) (models.MenuItem, error) {
	item, err := itemFromInput(in)
	if err != nil {
		return models.MenuItem{}, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		return database.RecordActivity(tx,
			fmt.Sprintf("Added new item: %s (Category: %s) by %s", item.Name, item.Category, actor))
	})
	if err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

// UpdateItem applies the same trim/default/parse rules as AddItem to an
// existing item, keeping its id.
func UpdateItem(db *gorm.DB, id uint, in ItemInput, actor string) (models.MenuItem, error) {
	item, err := GetItem(db, id)
	if err != nil {
		return models.MenuItem{}, err
	}

	updated, err := itemFromInput(in)
	if err != nil {
		return models.MenuItem{}, err
	}
	updated.ID = item.ID

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&updated).Error; err != nil {
			return err
		}
		return database.RecordActivity(tx,
			fmt.Sprintf("Updated item: %s (Category: %s) by %s", updated.Name, updated.Category, actor))
	})
	if err != nil {
		return models.MenuItem{}, err
	}
	return updated, nil
}

// DeleteItem removes the item and logs the deletion atomically. Deleting an
// id that does not exist returns ErrItemNotFound, also on a repeat delete.
func DeleteItem(db *gorm.DB, id uint, actor string) error {
	item, err := GetItem(db, id)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&item).Error; err != nil {
			return err
		}
		return database.RecordActivity(tx,
			fmt.Sprintf("Deleted item: %s (Category: %s) by %s", item.Name, item.Category, actor))
	})
}

func GetItem(db *gorm.DB, id uint) (models.MenuItem, error) {
	var item models.MenuItem
	if err := db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MenuItem{}, ErrItemNotFound
		}
		return models.MenuItem{}, err
	}
	return item, nil
}

func ListItems(db *gorm.DB) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := db.Order("name asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// RecentActivity returns the n most recent log entries, newest first.
func RecentActivity(db *gorm.DB, n int) ([]models.ActivityLog, error) {
	var logs []models.ActivityLog
	if err := db.Order("timestamp desc").Limit(n).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func itemFromInput(in ItemInput) (models.MenuItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.MenuItem{}, ErrNameRequired
	}

	price, err := ParsePrice(in.Price)
	if err != nil {
		return models.MenuItem{}, err
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = models.DefaultCategory
	}

	return models.MenuItem{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       price,
		Category:    category,
	}, nil
}
