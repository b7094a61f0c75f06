package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/loopstack33/admin-panel-functional-apis/internal/domain"
	"github.com/loopstack33/admin-panel-functional-apis/pkg/common"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrator().AutoMigrate(domain.Tables...))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, password string, active bool) domain.User {
	t.Helper()
	user := domain.User{
		UserID:         common.UUIDint64(),
		Email:          email,
		PasswordHash:   common.Md5Hash(password),
		FullName:       "Test User",
		Role:           "admin",
		AvatarInitials: "TU",
		IsActive:       active,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestVerifySuccess(t *testing.T) {
	db := openTestDB(t)
	v := NewVerifier(db, Md5Digester{})
	seeded := seedUser(t, db, "jane@example.com", "s3cret", true)

	user, err := v.Verify(context.Background(), "jane@example.com", "s3cret")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, seeded.UserID, user.UserID)
	assert.Equal(t, "Test User", user.FullName)
	assert.Equal(t, "admin", user.Role)
	assert.Equal(t, "TU", user.AvatarInitials)

	// last_login persisted as a side effect
	var stored domain.User
	require.NoError(t, db.Where("user_id = ?", seeded.UserID).First(&stored).Error)
	assert.WithinDuration(t, time.Now(), stored.LastLogin, 5*time.Second)
}

func TestVerifyWrongPassword(t *testing.T) {
	db := openTestDB(t)
	v := NewVerifier(db, Md5Digester{})
	seedUser(t, db, "jane@example.com", "s3cret", true)

	user, err := v.Verify(context.Background(), "jane@example.com", "nope")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestVerifyInactiveIndistinguishableFromUnknown(t *testing.T) {
	db := openTestDB(t)
	v := NewVerifier(db, Md5Digester{})
	seedUser(t, db, "inactive@example.com", "s3cret", false)

	inactiveUser, inactiveErr := v.Verify(context.Background(), "inactive@example.com", "s3cret")
	unknownUser, unknownErr := v.Verify(context.Background(), "ghost@example.com", "s3cret")

	assert.Nil(t, inactiveUser)
	assert.Nil(t, unknownUser)
	assert.Equal(t, unknownErr, inactiveErr)
}

func TestVerifyDoesNotTouchLastLoginOnFailure(t *testing.T) {
	db := openTestDB(t)
	v := NewVerifier(db, Md5Digester{})
	seeded := seedUser(t, db, "jane@example.com", "s3cret", true)

	_, err := v.Verify(context.Background(), "jane@example.com", "nope")
	require.NoError(t, err)

	var stored domain.User
	require.NoError(t, db.Where("user_id = ?", seeded.UserID).First(&stored).Error)
	assert.True(t, stored.LastLogin.IsZero() || stored.LastLogin.Equal(seeded.LastLogin))
}
