package domain

import "time"

// User is a dashboard operator account. Email uniquely identifies an
// active account; PasswordHash stores the configured digest scheme's
// output. LastLogin is advisory telemetry updated on successful login.
type User struct {
	UserID         int64     `gorm:"column:user_id;primaryKey" json:"user_id,string"`
	Email          string    `gorm:"column:email;uniqueIndex" json:"email"`
	PasswordHash   string    `gorm:"column:password_hash;size:128" json:"-"`
	FullName       string    `gorm:"column:full_name" json:"full_name"`
	Role           string    `gorm:"column:role;size:32" json:"role"`
	AvatarInitials string    `gorm:"column:avatar_initials;size:8" json:"avatar_initials"`
	IsActive       bool      `gorm:"column:is_active;default:true" json:"is_active"`
	LastLogin      time.Time `gorm:"column:last_login" json:"last_login"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName Specify table name
func (User) TableName() string {
	return "users"
}
