package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stammy-cpu/Jtech/internal/domain"
)

type MessageStore struct{ db *gorm.DB }

func (s *Store) Messages() *MessageStore { return &MessageStore{db: s.DB} }

func (m *MessageStore) Create(ctx context.Context, msg *domain.Message) error {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	return m.db.WithContext(ctx).Create(msg).Error
}

// ListAll returns every message newest-first, the order the admin triage
// view wants.
func (m *MessageStore) ListAll(ctx context.Context) ([]domain.Message, error) {
	var msgs []domain.Message
	if err := m.db.WithContext(ctx).Order("created_at DESC").Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

// ListForUser returns the user's conversation oldest-first so a chat
// transcript reads top to bottom.
func (m *MessageStore) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Message, error) {
	var msgs []domain.Message
	if err := m.db.WithContext(ctx).
		Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Order("created_at ASC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}
