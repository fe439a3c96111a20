package service

import (
	"testing"

	"tasca-menu/internal/database"
	"tasca-menu/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedAdmin(t *testing.T, db *gorm.DB) models.AdminUser {
	t.Helper()
	require.NoError(t, database.SeedAdmin(db, "admin", "adminpassword"))

	var admin models.AdminUser
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	return admin
}

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	seedAdmin(t, db)

	admin, err := Authenticate(db, "admin", "adminpassword")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)

	_, err = Authenticate(db, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = Authenticate(db, "nobody", "adminpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	db := setupTestDB(t)
	admin := seedAdmin(t, db)

	err := ChangePassword(db, admin.ID, "wrong", "newsecret", "newsecret")
	assert.ErrorIs(t, err, ErrWrongPassword)

	stored := refetch(t, db, admin.ID)
	assert.True(t, stored.CheckPassword("adminpassword"))
}

func TestChangePasswordMismatch(t *testing.T) {
	db := setupTestDB(t)
	admin := seedAdmin(t, db)

	err := ChangePassword(db, admin.ID, "adminpassword", "newsecret", "other")
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestChangePasswordTooShort(t *testing.T) {
	db := setupTestDB(t)
	admin := seedAdmin(t, db)

	err := ChangePassword(db, admin.ID, "adminpassword", "five5", "five5")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	// stored hash untouched, no activity row
	stored := refetch(t, db, admin.ID)
	assert.True(t, stored.CheckPassword("adminpassword"))
	assert.Zero(t, countRows(t, db, &models.ActivityLog{}))
}

func TestChangePasswordChecksRunInOrder(t *testing.T) {
	db := setupTestDB(t)
	admin := seedAdmin(t, db)

	// wrong current and mismatched confirmation: current is reported first
	err := ChangePassword(db, admin.ID, "wrong", "newsecret", "other")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestChangePasswordSuccess(t *testing.T) {
	db := setupTestDB(t)
	admin := seedAdmin(t, db)

	require.NoError(t, ChangePassword(db, admin.ID, "adminpassword", "newsecret", "newsecret"))

	stored := refetch(t, db, admin.ID)
	assert.True(t, stored.CheckPassword("newsecret"))
	assert.False(t, stored.CheckPassword("adminpassword"))

	var logs []models.ActivityLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, "Password changed for admin", logs[0].Action)
}

func TestChangePasswordAdminGone(t *testing.T) {
	db := setupTestDB(t)
	admin := seedAdmin(t, db)
	require.NoError(t, db.Delete(&models.AdminUser{}, admin.ID).Error)

	err := ChangePassword(db, admin.ID, "adminpassword", "newsecret", "newsecret")
	assert.ErrorIs(t, err, ErrAdminNotFound)
}

func refetch(t *testing.T, db *gorm.DB, id uint) models.AdminUser {
	t.Helper()
	var admin models.AdminUser
	require.NoError(t, db.First(&admin, id).Error)
	return admin
}
