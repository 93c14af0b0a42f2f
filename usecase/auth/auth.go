package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/aadarsh726/smart-life/domain"
	"github.com/aadarsh726/smart-life/repository"
)

// Credentials is the issued token plus its backing session.
type Credentials struct {
	Token   string          `json:"token"`
	Session *domain.Session `json:"session"`
	User    *domain.User    `json:"user"`
}

type UseCase struct {
	users     repository.UserRepository
	sessions  repository.SessionRepository
	jwtSecret []byte
	issuer    string
	ttl       time.Duration
	logger    *zap.Logger
}

func New(users repository.UserRepository, sessions repository.SessionRepository, secret, issuer string, ttl time.Duration, logger *zap.Logger) *UseCase {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:     users,
		sessions:  sessions,
		jwtSecret: []byte(secret),
		issuer:    issuer,
		ttl:       ttl,
		logger:    logger,
	}
}

// Register creates a user at level 1 with zero XP and signs them in.
func (uc *UseCase) Register(ctx context.Context, name, email, password string) (*Credentials, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "name, email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Level:        1,
		XP:           0,
	}
	created, err := uc.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return uc.issue(ctx, created)
}

// Login verifies the password and issues a fresh token and session.
func (uc *UseCase) Login(ctx context.Context, email, password string) (*Credentials, error) {
	if email == "" || password == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "email and password are required")
	}

	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, domain.ErrBadCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrBadCredentials
	}

	return uc.issue(ctx, user)
}

// CurrentUser resolves the caller's user record.
func (uc *UseCase) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return uc.users.GetByID(ctx, userID)
}

// ExtendSession pushes the session's Redis expiry out by the full TTL again,
// so active callers keep a sliding window instead of a fixed one.
func (uc *UseCase) ExtendSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return domain.NewError(domain.ErrCodeInvalid, "session id is required")
	}
	return uc.sessions.Extend(ctx, sessionID, int(uc.ttl.Seconds()))
}

// RevokeSession drops the Redis session, invalidating refreshes. Revoking a
// session that is already gone reports NOT_FOUND rather than silently passing.
func (uc *UseCase) RevokeSession(ctx context.Context, sessionID string) error {
	if _, err := uc.sessions.Get(ctx, sessionID); err != nil {
		return err
	}
	return uc.sessions.Delete(ctx, sessionID)
}

func (uc *UseCase) issue(ctx context.Context, user *domain.User) (*Credentials, error) {
	now := time.Now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.ttl),
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	claims := jwt.MapClaims{
		"user_id":    user.ID,
		"session_id": session.ID,
		"iss":        uc.issuer,
		"iat":        now.Unix(),
		"exp":        session.ExpiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.jwtSecret)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("session issued", zap.String("user_id", user.ID))
	return &Credentials{Token: token, Session: session, User: user}, nil
}
