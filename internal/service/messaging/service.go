package messaging

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/stammy-cpu/Jtech/internal/domain"
	"github.com/stammy-cpu/Jtech/internal/observability/metrics"
)

const maxMessageLen = 5000

// MessageStore is the slice of the persistence layer this service needs.
type MessageStore interface {
	Create(ctx context.Context, msg *domain.Message) error
	ListAll(ctx context.Context) ([]domain.Message, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Message, error)
}

type Service struct {
	store MessageStore
	now   func() time.Time
}

func New(store MessageStore) *Service {
	return &Service{store: store, now: time.Now}
}

type PostInput struct {
	SenderID       uuid.UUID
	SenderUsername string
	Text           string
	IsAdminMessage bool
	RecipientID    *uuid.UUID
}

// Post appends one immutable message row. There is no delivery mechanism
// beyond the durable write; readers poll.
func (s *Service) Post(ctx context.Context, in PostInput) (*domain.Message, error) {
	if in.Text == "" {
		return nil, domain.Invalid("messageText", "cannot be empty")
	}
	if len(in.Text) > maxMessageLen {
		return nil, domain.Invalid("messageText", "exceeds 5000 characters")
	}
	msg := &domain.Message{
		ID:             uuid.New(),
		SenderID:       in.SenderID,
		SenderUsername: in.SenderUsername,
		MessageText:    in.Text,
		RecipientID:    in.RecipientID,
		IsAdminMessage: in.IsAdminMessage,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.store.Create(ctx, msg); err != nil {
		return nil, err
	}
	sender := "user"
	if in.IsAdminMessage {
		sender = "admin"
	}
	metrics.MessagesPostedTotal.WithLabelValues(sender).Inc()
	return msg, nil
}

// ListAll is the admin triage view: every message, newest-first.
func (s *Service) ListAll(ctx context.Context) ([]domain.Message, error) {
	return s.store.ListAll(ctx)
}

// ListForUser is the chat transcript view: messages the user sent or
// received, oldest-first.
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Message, error) {
	return s.store.ListForUser(ctx, userID)
}
