package app

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/loopstack33/admin-panel-functional-apis/internal/domain"
	"github.com/loopstack33/admin-panel-functional-apis/pkg/common"
)

// checkAdminUser creates a default active admin account when none
// exists yet, so a fresh deployment can log in to the dashboard.
// The credentials are development defaults and must be changed.
func (a *Application) checkAdminUser() {
	const defaultEmail = "admin@crm.local"
	const defaultPassword = "admin123"

	var user domain.User
	err := a.gormDB.Where("email = ?", defaultEmail).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, herr := a.digester.Digest(defaultPassword)
		if herr != nil {
			zap.L().Error("failed to digest default admin password", zap.Error(herr))
			return
		}
		if err := a.gormDB.Create(&domain.User{
			UserID:         common.UUIDint64(),
			Email:          defaultEmail,
			PasswordHash:   hash,
			FullName:       "Administrator",
			Role:           "admin",
			AvatarInitials: common.Initials("Admin"),
			IsActive:       true,
			LastLogin:      time.Now(),
		}).Error; err != nil {
			zap.L().Error("failed to create default admin user", zap.Error(err))
		} else {
			zap.L().Info("initialized default admin account", zap.String("email", defaultEmail))
		}
	case err != nil:
		zap.L().Error("failed to query admin user", zap.Error(err))
	}
}
