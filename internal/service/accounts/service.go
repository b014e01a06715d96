package accounts

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stammy-cpu/Jtech/internal/domain"
	"github.com/stammy-cpu/Jtech/internal/dto"
	"github.com/stammy-cpu/Jtech/internal/observability/metrics"
)

const minPasswordLen = 8

type UserStore interface {
	Create(ctx context.Context, usr *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type SessionStore interface {
	Create(ctx context.Context, sess *domain.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Revoke(ctx context.Context, id uuid.UUID, at time.Time) error
}

type Service struct {
	users    UserStore
	sessions SessionStore
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

func New(users UserStore, sessions SessionStore, secret []byte, ttl time.Duration) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		secret:   secret,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *Service) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	var errs []domain.FieldError
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Reason: "must be a valid email address"})
	}
	if strings.TrimSpace(req.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Reason: "is required"})
	}
	if len(req.Password) < minPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Reason: "must be at least 8 characters"})
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Fields: errs}
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if _, err := s.users.GetByUsername(ctx, req.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: hash,
		IsAdmin:      false,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials, opens a session row and returns the signed
// session token alongside the user.
func (s *Service) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", domain.Invalid("email", "email and password are required")
	}
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(req.Email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !verifyPassword(req.Password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, "", domain.ErrInvalidCredentials
	}

	now := s.now().UTC()
	sess := &domain.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, "", err
	}
	token, err := signSessionToken(s.secret, sess.ID, user.ID, now, s.ttl)
	if err != nil {
		return nil, "", err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return user, token, nil
}

// Resolve turns a session token into the caller's identity. The session row
// is the source of truth: a structurally valid token whose session is
// expired, revoked or missing resolves to nothing.
func (s *Service) Resolve(ctx context.Context, token string) (domain.Identity, error) {
	sessionID, err := parseSessionToken(s.secret, token)
	if err != nil {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	now := s.now().UTC()
	if sess.RevokedAt != nil || now.After(sess.ExpiresAt) {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	user, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return domain.Identity{UserID: user.ID, Username: user.Username, IsAdmin: user.IsAdmin}, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	sessionID, err := parseSessionToken(s.secret, token)
	if err != nil {
		return nil // nothing to revoke
	}
	return s.sessions.Revoke(ctx, sessionID, s.now().UTC())
}

func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// EnsureAdmin makes sure the configured administrator account exists. Called
// once at startup.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	email = strings.TrimSpace(strings.ToLower(email))
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	admin := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     "Admin",
		PasswordHash: hash,
		IsAdmin:      true,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return err
	}
	slog.Info("admin account created", "email", email)
	return nil
}
