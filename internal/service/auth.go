package service

import (
	"errors"
	"fmt"

	"tasca-menu/internal/database"
	"tasca-menu/internal/models"

	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAdminNotFound      = errors.New("admin account no longer exists")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrPasswordMismatch   = errors.New("new passwords do not match")
	ErrPasswordTooShort   = errors.New("new password must be at least 6 characters")
)

// Authenticate verifies the admin credentials. Unknown username and wrong
// password return the same error on purpose.
func Authenticate(db *gorm.DB, username, password string) (models.AdminUser, error) {
	var admin models.AdminUser
	if err := db.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.AdminUser{}, ErrInvalidCredentials
		}
		return models.AdminUser{}, err
	}
	if !admin.CheckPassword(password) {
		return models.AdminUser{}, ErrInvalidCredentials
	}
	return admin, nil
}

// ChangePassword rotates the admin password. Checks run in order: the
// session's admin must still exist, the current password must verify, the
// confirmation must match, and the new password must be at least 6
// characters. The hash update and its activity entry commit together.
func ChangePassword(db *gorm.DB, adminID uint, current, newPlain, confirm string) error {
	var admin models.AdminUser
	if err := db.First(&admin, adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAdminNotFound
		}
		return err
	}

	if !admin.CheckPassword(current) {
		return ErrWrongPassword
	}
	if newPlain != confirm {
		return ErrPasswordMismatch
	}
	if len(newPlain) < 6 {
		return ErrPasswordTooShort
	}

	if err := admin.SetPassword(newPlain); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&admin).Error; err != nil {
			return err
		}
		return database.RecordActivity(tx, fmt.Sprintf("Password changed for %s", admin.Username))
	})
}
