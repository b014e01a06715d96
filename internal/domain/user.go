package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex:ux_users_email;not null" json:"email"`
	Username     string    `gorm:"uniqueIndex:ux_users_username;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"isAdmin"`
	CreatedAt    time.Time `gorm:"not null" json:"createdAt"`
}

func (User) TableName() string { return "users" }

type Session struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;index;not null" json:"userId"`
	ExpiresAt time.Time  `gorm:"not null" json:"expiresAt"`
	RevokedAt *time.Time `json:"revokedAt,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"createdAt"`
}

func (Session) TableName() string { return "sessions" }

// Identity is what the transport layer gets back from resolving a session
// token. It is the only caller-facing view of the authenticated user.
type Identity struct {
	UserID   uuid.UUID
	Username string
	IsAdmin  bool
}
