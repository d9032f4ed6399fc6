package userservice

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	userauth "github.com/greenside-labs/greenside/app/modules/user/infrastructure/auth"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolveUserID_CreatesOnFirstSight(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewUserService(repo, testLogger())
	claims := &userauth.Claims{FirebaseUID: "fb-123", Email: "golfer@example.com"}

	id, err := svc.ResolveUserID(context.Background(), claims)
	require.NoError(t, err)
	require.Equal(t, int64(1), id)
	require.Len(t, repo.users, 1)
	require.Equal(t, "golfer@example.com", repo.users[0].Email)

	// Second call is a lookup, not another insert.
	again, err := svc.ResolveUserID(context.Background(), claims)
	require.NoError(t, err)
	require.Equal(t, id, again)
	require.Len(t, repo.users, 1)
}

func TestGetUser(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewUserService(repo, testLogger())

	id, err := svc.ResolveUserID(context.Background(), &userauth.Claims{FirebaseUID: "fb-123"})
	require.NoError(t, err)

	user, err := svc.GetUser(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "fb-123", user.FirebaseUID)

	_, err = svc.GetUser(context.Background(), 999)
	require.ErrorIs(t, err, ErrNotFound)
}
