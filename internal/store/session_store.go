package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stammy-cpu/Jtech/internal/domain"
)

type SessionStore struct{ db *gorm.DB }

func (s *Store) Sessions() *SessionStore { return &SessionStore{db: s.DB} }

func (ss *SessionStore) Create(ctx context.Context, sess *domain.Session) error {
	if sess.ID == uuid.Nil {
		sess.ID = uuid.New()
	}
	return ss.db.WithContext(ctx).Create(sess).Error
}

func (ss *SessionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	var sess domain.Session
	if err := ss.db.WithContext(ctx).First(&sess, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &sess, nil
}

func (ss *SessionStore) Revoke(ctx context.Context, id uuid.UUID, at time.Time) error {
	return ss.db.WithContext(ctx).
		Model(&domain.Session{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", at).Error
}
