package auth

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/loopstack33/admin-panel-functional-apis/internal/domain"
)

// Verifier checks dashboard credentials against stored user rows.
// It is a stateless per-request check: no sessions, no lockout, no
// rate limiting.
type Verifier struct {
	db       *gorm.DB
	digester Digester
}

func NewVerifier(db *gorm.DB, digester Digester) *Verifier {
	return &Verifier{db: db, digester: digester}
}

// Verify returns the active user matching the given email and password,
// or (nil, nil) when no such user exists. A wrong password, an inactive
// account and an unknown email are indistinguishable to the caller.
// On success the user's last_login is updated as a side effect; the
// select and the update are two sequential statements with no atomicity
// guarantee between them (last_login is advisory telemetry).
func (v *Verifier) Verify(ctx context.Context, email, password string) (*domain.User, error) {
	var user domain.User
	err := v.db.WithContext(ctx).
		Where("email = ? AND is_active = ?", email, true).
		First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	case err != nil:
		return nil, pkgerrors.Wrap(err, "query user by email")
	}

	if !v.digester.Match(password, user.PasswordHash) {
		return nil, nil
	}

	now := time.Now()
	if err := v.db.WithContext(ctx).Model(&domain.User{}).
		Where("user_id = ?", user.UserID).
		Update("last_login", now).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "update last_login")
	}
	user.LastLogin = now
	return &user, nil
}
