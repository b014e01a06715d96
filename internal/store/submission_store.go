package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stammy-cpu/Jtech/internal/domain"
)

// SubmissionStore is the kind-independent persistence surface for the three
// intake tables. One generic implementation backs all of them so ordering and
// not-found behavior cannot drift between kinds.
type SubmissionStore interface {
	Create(ctx context.Context, sub domain.Submission) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Submission, error)
	List(ctx context.Context) ([]domain.Submission, error)
	// UpdateStatus is a single store-level update; the rejection reason column
	// is only touched when setReason is true.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status, reason string, setReason bool) (domain.Submission, error)
}

func (s *Store) GiftCards() SubmissionStore {
	return &submissionTable[domain.GiftCardSubmission, *domain.GiftCardSubmission]{db: s.DB}
}

func (s *Store) CryptoTrades() SubmissionStore {
	return &submissionTable[domain.CryptoTrade, *domain.CryptoTrade]{db: s.DB}
}

func (s *Store) GadgetSubmissions() SubmissionStore {
	return &submissionTable[domain.GadgetSubmission, *domain.GadgetSubmission]{db: s.DB}
}

type submissionPtr[T any] interface {
	*T
	domain.Submission
}

type submissionTable[T any, PT submissionPtr[T]] struct{ db *gorm.DB }

func (t *submissionTable[T, PT]) Create(ctx context.Context, sub domain.Submission) error {
	return t.db.WithContext(ctx).Create(sub).Error
}

func (t *submissionTable[T, PT]) GetByID(ctx context.Context, id uuid.UUID) (domain.Submission, error) {
	var row T
	if err := t.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return PT(&row), nil
}

func (t *submissionTable[T, PT]) List(ctx context.Context) ([]domain.Submission, error) {
	var rows []T
	if err := t.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Submission, len(rows))
	for i := range rows {
		out[i] = PT(&rows[i])
	}
	return out, nil
}

func (t *submissionTable[T, PT]) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status, reason string, setReason bool) (domain.Submission, error) {
	updates := map[string]any{"status": status}
	if setReason {
		updates["rejection_reason"] = reason
	}
	tx := t.db.WithContext(ctx).Model(PT(new(T))).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return t.GetByID(ctx, id)
}
