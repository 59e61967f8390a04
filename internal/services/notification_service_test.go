package services

import (
	"context"
	"testing"

	"github.com/pressline/pressline-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotify(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a row for an existing recipient", func(t *testing.T) {
		env := newTestEnv(t)
		user := seedUser(t, env.store, "alice", models.RoleUser)

		env.notifications.Notify(ctx, user.ID, "hi", "hello there", models.NotificationTypeGeneric, nil, nil)

		all, total, err := env.notifications.List(ctx, user.ID, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, all, 1)
		assert.Equal(t, "hi", all[0].Title)
		assert.False(t, all[0].IsRead)
	})

	t.Run("missing recipient is silently skipped", func(t *testing.T) {
		env := newTestEnv(t)
		env.notifications.Notify(ctx, 42, "hi", "hello", models.NotificationTypeGeneric, nil, nil)

		_, total, err := env.notifications.List(ctx, 42, 1, 10)
		require.NoError(t, err)
		assert.Zero(t, total)
	})
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()

	t.Run("recipient can mark read, a stranger cannot", func(t *testing.T) {
		env := newTestEnv(t)
		recipient := seedUser(t, env.store, "alice", models.RoleUser)
		stranger := seedUser(t, env.store, "bob", models.RoleUser)
		env.notifications.Notify(ctx, recipient.ID, "hi", "hello", models.NotificationTypeGeneric, nil, nil)

		all, _, err := env.notifications.List(ctx, recipient.ID, 1, 10)
		require.NoError(t, err)
		require.Len(t, all, 1)

		assert.ErrorIs(t, env.notifications.MarkRead(ctx, stranger.ID, all[0].ID), ErrForbidden)

		require.NoError(t, env.notifications.MarkRead(ctx, recipient.ID, all[0].ID))
		count, err := env.notifications.UnreadCount(ctx, recipient.ID)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("unknown notification id", func(t *testing.T) {
		env := newTestEnv(t)
		user := seedUser(t, env.store, "alice", models.RoleUser)
		assert.ErrorIs(t, env.notifications.MarkRead(ctx, user.ID, 99), ErrNotFound)
	})
}

func TestMarkAllRead(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := seedUser(t, env.store, "alice", models.RoleUser)
	for i := 0; i < 3; i++ {
		env.notifications.Notify(ctx, user.ID, "hi", "hello", models.NotificationTypeGeneric, nil, nil)
	}

	count, err := env.notifications.UnreadCount(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	require.NoError(t, env.notifications.MarkAllRead(ctx, user.ID))
	count, err = env.notifications.UnreadCount(ctx, user.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}
