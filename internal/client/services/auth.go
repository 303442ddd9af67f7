// Package services contains the application services for the ListKeeper CLI:
// field validation ahead of the network, session lifecycle, and owner-scoped
// list and item operations proxied to the server.
package services

import (
	"context"
	"strings"

	"github.com/mkochanov/listkeeper/internal/client/api"
)

// MinPasswordLength is checked before registration ever reaches the server.
const MinPasswordLength = 6

// AuthService defines the session lifecycle for the CLI.
//
// Contract:
//   - Register: validate all fields locally, then create the account. A
//     subsequent Login is still required.
//   - Login: validate locally, then authenticate and establish the session.
//   - Logout: terminate the session; local credentials are dropped even when
//     the server call fails.
//
// Validation failures never reach the network layer.
type AuthService interface {
	Register(ctx context.Context, name, username, password, confirm string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context) (string, error)
}

type authService struct {
	client api.Client
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(client api.Client) AuthService {
	return &authService{client: client}
}

// Register checks the fields in a fixed order (first failing check wins):
// any empty field, then password length, then confirmation mismatch.
func (a *authService) Register(ctx context.Context, name, username, password, confirm string) (string, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(username) == "" ||
		strings.TrimSpace(password) == "" || strings.TrimSpace(confirm) == "" {
		return "", validationError("Please fill in all fields")
	}
	if len(password) < MinPasswordLength {
		return "", validationError("Password must be at least 6 characters")
	}
	if password != confirm {
		return "", validationError("Passwords do not match")
	}

	return a.client.Register(ctx, name, username, password, confirm)
}

func (a *authService) Login(ctx context.Context, username, password string) (string, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return "", validationError("Please fill in all fields")
	}

	return a.client.Login(ctx, username, password)
}

func (a *authService) Logout(ctx context.Context) (string, error) {
	return a.client.Logout(ctx)
}
