package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mkochanov/listkeeper/internal/common"
	"github.com/mkochanov/listkeeper/internal/server/config"
)

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:               "test-secret",
		SessionValidityDuration: time.Minute,
	}
}

func TestRegister_Success(t *testing.T) {
	m := newFakeRepoManager()
	svc := NewUserService(nil, m, testConfig())

	user, err := svc.Register(context.Background(), "Alice", "alice", "secret1", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "alice", user.UserName)
	require.NotEqual(t, []byte("secret1"), user.PasswordHash)
}

func TestRegister_ValidationOrder(t *testing.T) {
	m := newFakeRepoManager()
	svc := NewUserService(nil, m, testConfig())
	ctx := context.Background()

	// empty field wins over everything else
	_, err := svc.Register(ctx, "", "alice", "ab", "cd")
	require.ErrorIs(t, err, common.ErrValidation)
	require.Contains(t, err.Error(), "required")

	// short password wins over mismatch
	_, err = svc.Register(ctx, "Alice", "alice", "ab", "cd")
	require.ErrorIs(t, err, common.ErrValidation)
	require.Contains(t, err.Error(), "at least 6")

	_, err = svc.Register(ctx, "Alice", "alice", "secret1", "secret2")
	require.ErrorIs(t, err, common.ErrValidation)
	require.Contains(t, err.Error(), "do not match")
}

func TestRegister_DuplicateUserName(t *testing.T) {
	m := newFakeRepoManager()
	svc := NewUserService(nil, m, testConfig())
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "alice", "secret1", "secret1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Other Alice", "alice", "secret2", "secret2")
	require.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestLogin_IssuesValidatableToken(t *testing.T) {
	m := newFakeRepoManager()
	svc := NewUserService(nil, m, testConfig())
	ctx := context.Background()

	user, err := svc.Register(ctx, "Alice", "alice", "secret1", "secret1")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.ValidateSession(ctx, token)
	require.NoError(t, err)
	require.Equal(t, user.ID, userID)
}

func TestLogin_WrongPassword(t *testing.T) {
	m := newFakeRepoManager()
	svc := NewUserService(nil, m, testConfig())
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "alice", "secret1", "secret1")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice", "wrong")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLogin_UnknownUser(t *testing.T) {
	m := newFakeRepoManager()
	svc := NewUserService(nil, m, testConfig())

	_, err := svc.Login(context.Background(), "nobody", "whatever")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLogout_RevokesSession(t *testing.T) {
	m := newFakeRepoManager()
	svc := NewUserService(nil, m, testConfig())
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "alice", "secret1", "secret1")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "alice", "secret1")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))

	// the token is still signed and unexpired, but its session is gone
	_, err = svc.ValidateSession(ctx, token)
	require.ErrorIs(t, err, common.ErrAuthRequired)
}

func TestLogout_GarbageTokenIsNotAnError(t *testing.T) {
	m := newFakeRepoManager()
	svc := NewUserService(nil, m, testConfig())

	require.NoError(t, svc.Logout(context.Background(), "not-a-token"))
}

func TestValidateSession_GarbageToken(t *testing.T) {
	m := newFakeRepoManager()
	svc := NewUserService(nil, m, testConfig())

	_, err := svc.ValidateSession(context.Background(), "garbage")
	require.ErrorIs(t, err, common.ErrAuthRequired)
}
