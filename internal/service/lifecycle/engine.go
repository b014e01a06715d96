package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stammy-cpu/Jtech/internal/domain"
	"github.com/stammy-cpu/Jtech/internal/dto"
	"github.com/stammy-cpu/Jtech/internal/observability/metrics"
	"github.com/stammy-cpu/Jtech/internal/service/messaging"
)

// SubmissionStore matches the store layer's kind-independent surface. The
// engine only ever talks to this interface so tests and alternative backends
// can substitute it.
type SubmissionStore interface {
	Create(ctx context.Context, sub domain.Submission) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Submission, error)
	List(ctx context.Context) ([]domain.Submission, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status, reason string, setReason bool) (domain.Submission, error)
}

// UserDirectory resolves customer emails and admin ids for the rejection
// notice hook.
type UserDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Notifier posts the system message that accompanies a rejection.
type Notifier interface {
	Post(ctx context.Context, in messaging.PostInput) (*domain.Message, error)
}

// Engine owns the shared status state machine for all three submission kinds.
type Engine struct {
	stores   map[domain.Kind]SubmissionStore
	descs    map[domain.Kind]Descriptor
	users    UserDirectory
	notifier Notifier
	now      func() time.Time
}

func New(stores map[domain.Kind]SubmissionStore, users UserDirectory, notifier Notifier) *Engine {
	return &Engine{
		stores:   stores,
		descs:    descriptors(),
		users:    users,
		notifier: notifier,
		now:      time.Now,
	}
}

func (e *Engine) kind(kind domain.Kind) (Descriptor, SubmissionStore, error) {
	desc, ok := e.descs[kind]
	if !ok {
		return Descriptor{}, nil, domain.ErrNotFound
	}
	st, ok := e.stores[kind]
	if !ok {
		return Descriptor{}, nil, domain.ErrNotFound
	}
	return desc, st, nil
}

// Create validates the kind-specific payload and persists a new submission in
// pending state. Nothing is written when validation fails.
func (e *Engine) Create(ctx context.Context, kind domain.Kind, req dto.SubmissionRequest) (domain.Submission, error) {
	desc, st, err := e.kind(kind)
	if err != nil {
		return nil, err
	}
	if errs := desc.Validate(req); len(errs) > 0 {
		return nil, &domain.ValidationError{Fields: errs}
	}
	sub := desc.Build(req, uuid.New(), e.now().UTC())
	if err := st.Create(ctx, sub); err != nil {
		return nil, err
	}
	metrics.SubmissionsCreatedTotal.WithLabelValues(string(kind)).Inc()
	return sub, nil
}

func (e *Engine) List(ctx context.Context, kind domain.Kind) ([]domain.Submission, error) {
	_, st, err := e.kind(kind)
	if err != nil {
		return nil, err
	}
	return st.List(ctx)
}

func (e *Engine) Get(ctx context.Context, kind domain.Kind, id uuid.UUID) (domain.Submission, error) {
	_, st, err := e.kind(kind)
	if err != nil {
		return nil, err
	}
	return st.GetByID(ctx, id)
}

// UpdateStatus moves a submission to a new status. Any legal status is
// reachable from any other; the machine is deliberately permissive, matching
// how admins actually use it (re-rejecting, un-rejecting). A rejection needs a
// reason; the stored reason is sticky and only overwritten when a new one is
// supplied. When the rejection reaches a registered customer, a system message
// is posted best-effort: a notification failure never fails the update.
func (e *Engine) UpdateStatus(ctx context.Context, kind domain.Kind, id uuid.UUID, status domain.Status, reason string, actor domain.Identity) (domain.Submission, error) {
	desc, st, err := e.kind(kind)
	if err != nil {
		return nil, err
	}
	if !desc.allows(status) {
		return nil, domain.Invalid("status", fmt.Sprintf("%q is not a valid status for %s", status, desc.Noun))
	}
	if status == domain.StatusRejected && reason == "" {
		return nil, domain.Invalid("rejectionReason", "is required when status is rejected")
	}

	sub, err := st.UpdateStatus(ctx, id, status, reason, reason != "")
	if err != nil {
		return nil, err
	}
	metrics.StatusUpdatesTotal.WithLabelValues(string(kind), string(status)).Inc()

	if status == domain.StatusRejected && reason != "" {
		e.notifyRejection(ctx, desc, sub, reason, actor)
	}
	return sub, nil
}

func (e *Engine) notifyRejection(ctx context.Context, desc Descriptor, sub domain.Submission, reason string, actor domain.Identity) {
	email := sub.Customer()
	if email == "" || actor.UserID == uuid.Nil {
		metrics.RejectionNoticesTotal.WithLabelValues("skipped").Inc()
		return
	}
	customer, err := e.users.GetByEmail(ctx, email)
	if err != nil {
		metrics.RejectionNoticesTotal.WithLabelValues("skipped").Inc()
		return
	}
	admin, err := e.users.GetByID(ctx, actor.UserID)
	if err != nil {
		metrics.RejectionNoticesTotal.WithLabelValues("skipped").Inc()
		return
	}

	recipient := customer.ID
	_, err = e.notifier.Post(ctx, messaging.PostInput{
		SenderID:       admin.ID,
		SenderUsername: admin.Username,
		Text:           fmt.Sprintf("Your %s (%s) has been REJECTED: %s", desc.Noun, sub.Summary(), reason),
		IsAdminMessage: true,
		RecipientID:    &recipient,
	})
	if err != nil {
		// The status change already committed; the notice is best-effort.
		slog.Warn("rejection notice failed",
			"kind", desc.Kind,
			"submission_id", sub.SubmissionID(),
			"error", err,
		)
		metrics.RejectionNoticesTotal.WithLabelValues("failed").Inc()
		return
	}
	metrics.RejectionNoticesTotal.WithLabelValues("sent").Inc()
}
