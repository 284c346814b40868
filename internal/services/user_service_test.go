package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Resolve(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.register(t, "alice")

	user, err := f.userSvc.Resolve(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = f.userSvc.Resolve(ctx, Identity{UserID: id.UserID, Username: "bob"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	f.users.Delete(id.UserID)
	_, err = f.userSvc.Resolve(ctx, id)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUserService_GetSelf(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")

	user, err := f.userSvc.GetSelf(ctx, alice, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = f.userSvc.GetSelf(ctx, alice, bob.UserID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	ghost := Identity{UserID: uuid.New(), Username: "ghost"}
	_, err = f.userSvc.GetSelf(ctx, ghost, ghost.UserID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	users, err := f.userSvc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
