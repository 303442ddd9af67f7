// Package services contains the server-side application services: account
// lifecycle and session management, plus owner-scoped list and item CRUD.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mkochanov/listkeeper/internal/common"
	"github.com/mkochanov/listkeeper/internal/server/auth"
	"github.com/mkochanov/listkeeper/internal/server/config"
	"github.com/mkochanov/listkeeper/internal/server/models"
	"github.com/mkochanov/listkeeper/internal/server/repositories/repomanager"
)

// MinPasswordLength mirrors the client-side rule; the server re-checks it so
// the invariant does not depend on a well-behaved client.
const MinPasswordLength = 6

type UserService struct {
	db                      *sql.DB
	repomanager             repomanager.RepositoryManager
	jwtSecret               []byte
	sessionValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                      db,
		repomanager:             m,
		jwtSecret:               []byte(cfg.SecretKey),
		sessionValidityDuration: cfg.SessionValidityDuration,
	}
}

// Register creates a new account. All fields are required, the password must
// be at least MinPasswordLength characters and match its confirmation.
// Duplicate usernames surface as common.ErrAlreadyExists.
func (s *UserService) Register(ctx context.Context, name, username, password, confirm string) (*models.User, error) {

	name = strings.TrimSpace(name)
	username = strings.TrimSpace(username)

	if name == "" || username == "" || strings.TrimSpace(password) == "" || strings.TrimSpace(confirm) == "" {
		return nil, fmt.Errorf("%w: all fields are required", common.ErrValidation)
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, MinPasswordLength)
	}
	if password != confirm {
		return nil, fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		UserName:     username,
		PasswordHash: hash,
	}

	repo := s.repomanager.Users(s.db)

	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and issues a session token. A missing user
// and a wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUserName(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return "", common.ErrorUnauthorized
	}

	sessionID := uuid.NewString()

	sessionRepo := s.repomanager.Sessions(s.db)
	if err := sessionRepo.Create(ctx, sessionID, user.ID, s.sessionValidityDuration); err != nil {
		return "", common.ErrorInternal
	}

	token, err := auth.GenerateToken(user.ID, sessionID, s.jwtSecret, s.sessionValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// Logout revokes the session carried by the token. An already-revoked or
// malformed token is not an error: the session is gone either way.
func (s *UserService) Logout(ctx context.Context, token string) error {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil
	}

	repo := s.repomanager.Sessions(s.db)
	return repo.Delete(ctx, claims.SessionID)
}

// ValidateSession checks the token signature and expiry, then the session
// row (so logout revokes tokens that are otherwise still valid). Returns the
// session user's id.
func (s *UserService) ValidateSession(ctx context.Context, token string) (string, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return "", common.ErrAuthRequired
	}

	repo := s.repomanager.Sessions(s.db)
	session, err := repo.Find(ctx, claims.SessionID)
	if err != nil {
		return "", common.ErrAuthRequired
	}

	if session.ExpiresAt.Before(time.Now()) {
		return "", common.ErrAuthRequired
	}

	return claims.UserID, nil
}
