package services

import (
	"context"
	"testing"

	"github.com/pressline/pressline-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoryCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("new story starts as draft", func(t *testing.T) {
		env := newTestEnv(t)
		author := seedUser(t, env.store, "alice", models.RoleWriter)

		story, err := env.stories.Create(ctx, author.ID, models.CreateStoryRequest{
			Title: "My First Story",
			Body:  "body",
		})
		require.NoError(t, err)
		assert.Equal(t, models.StoryStatusDraft, story.Status)
		assert.Equal(t, "my-first-story", story.Slug)
		assert.Nil(t, story.PublishedAt)
	})

	t.Run("slug collisions get numeric suffixes", func(t *testing.T) {
		env := newTestEnv(t)
		author := seedUser(t, env.store, "alice", models.RoleWriter)

		first, err := env.stories.Create(ctx, author.ID, models.CreateStoryRequest{Title: "Same Title", Body: "b"})
		require.NoError(t, err)
		second, err := env.stories.Create(ctx, author.ID, models.CreateStoryRequest{Title: "Same Title", Body: "b"})
		require.NoError(t, err)
		third, err := env.stories.Create(ctx, author.ID, models.CreateStoryRequest{Title: "Same Title", Body: "b"})
		require.NoError(t, err)

		assert.Equal(t, "same-title", first.Slug)
		assert.Equal(t, "same-title-1", second.Slug)
		assert.Equal(t, "same-title-2", third.Slug)
	})

	t.Run("unknown author fails", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.stories.Create(ctx, 99, models.CreateStoryRequest{Title: "T", Body: "b"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStoryPublish(t *testing.T) {
	ctx := context.Background()

	t.Run("publish from draft moves to pending review", func(t *testing.T) {
		env := newTestEnv(t)
		author := seedUser(t, env.store, "alice", models.RoleWriter)
		story, err := env.stories.Create(ctx, author.ID, models.CreateStoryRequest{Title: "T", Body: "b"})
		require.NoError(t, err)

		story, err = env.stories.Publish(ctx, author.ID, story.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StoryStatusPendingReview, story.Status)
		assert.Nil(t, story.PublishedAt, "publish must not set the published timestamp")
	})

	t.Run("publish from pending review fails", func(t *testing.T) {
		env := newTestEnv(t)
		author := seedUser(t, env.store, "alice", models.RoleWriter)
		story, err := env.stories.Create(ctx, author.ID, models.CreateStoryRequest{Title: "T", Body: "b"})
		require.NoError(t, err)
		_, err = env.stories.Publish(ctx, author.ID, story.ID)
		require.NoError(t, err)

		_, err = env.stories.Publish(ctx, author.ID, story.ID)
		var transitionErr *InvalidStateTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, models.StoryStatusPendingReview, transitionErr.Current)
		assert.Equal(t, models.StoryStatusPendingReview, transitionErr.Requested)
	})

	t.Run("publish from published fails", func(t *testing.T) {
		env := newTestEnv(t)
		author := seedUser(t, env.store, "alice", models.RoleWriter)
		admin := seedUser(t, env.store, "root", models.RoleAdmin)
		story, err := env.stories.Create(ctx, author.ID, models.CreateStoryRequest{Title: "T", Body: "b"})
		require.NoError(t, err)
		_, err = env.stories.Publish(ctx, author.ID, story.ID)
		require.NoError(t, err)
		_, err = env.stories.Approve(ctx, admin.ID, story.ID)
		require.NoError(t, err)

		_, err = env.stories.Publish(ctx, author.ID, story.ID)
		var transitionErr *InvalidStateTransitionError
		assert.ErrorAs(t, err, &transitionErr)
	})

	t.Run("publish after rejection is allowed", func(t *testing.T) {
		env := newTestEnv(t)
		author := seedUser(t, env.store, "alice", models.RoleWriter)
		admin := seedUser(t, env.store, "root", models.RoleAdmin)
		story, err := env.stories.Create(ctx, author.ID, models.CreateStoryRequest{Title: "T", Body: "b"})
		require.NoError(t, err)
		_, err = env.stories.Publish(ctx, author.ID, story.ID)
		require.NoError(t, err)
		_, err = env.stories.Reject(ctx, admin.ID, story.ID, "needs work")
		require.NoError(t, err)

		story, err = env.stories.Publish(ctx, author.ID, story.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StoryStatusPendingReview, story.Status)
	})

	t.Run("only the author may publish", func(t *testing.T) {
		env := newTestEnv(t)
		author := seedUser(t, env.store, "alice", models.RoleWriter)
		other := seedUser(t, env.store, "bob", models.RoleUser)
		story, err := env.stories.Create(ctx, author.ID, models.CreateStoryRequest{Title: "T", Body: "b"})
		require.NoError(t, err)

		_, err = env.stories.Publish(ctx, other.ID, story.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestStoryApprove(t *testing.T) {
	ctx := context.Background()

	t.Run("approve publishes and stamps publishedAt once", func(t *testing.T) {
		env := newTestEnv(t)
		author := seedUser(t, env.store, "alice", models.RoleWriter)
		admin := seedUser(t, env.store, "root", models.RoleAdmin)
		story, err := env.stories.Create(ctx, author.ID, models.CreateStoryRequest{Title: "T", Body: "b"})
		require.NoError(t, err)
		_, err = env.stories.Publish(ctx, author.ID, story.ID)
		require.NoError(t, err)

		story, err = env.stories.Approve(ctx, admin.ID, story.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StoryStatusPublished, story.Status)
		require.NotNil(t, story.PublishedAt)
		firstPublished := *story.PublishedAt

		stored, err := env.store.Stories().GetStoryByID(story.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.PublishedAt)
		assert.Equal(t, firstPublished.Unix(), stored.PublishedAt.Unix())
	})

	t.Run("approval after a rejection cycle stamps publishedAt and clears the reason", func(t *testing.T) {
		env := newTestEnv(t)
		author := seedUser(t, env.store, "alice", models.RoleWriter)
		admin := seedUser(t, env.store, "root", models.RoleAdmin)
		story, err := env.stories.Create(ctx, author.ID, models.CreateStoryRequest{Title: "T", Body: "b"})
		require.NoError(t, err)

		// First cycle: reject, resubmit, approve.
		_, err = env.stories.Publish(ctx, author.ID, story.ID)
		require.NoError(t, err)
		_, err = env.stories.Reject(ctx, admin.ID, story.ID, "typos")
		require.NoError(t, err)
		_, err = env.stories.Publish(ctx, author.ID, story.ID)
		require.NoError(t, err)
		approved, err := env.stories.Approve(ctx, admin.ID, story.ID)
		require.NoError(t, err)
		require.NotNil(t, approved.PublishedAt)
		assert.Empty(t, approved.RejectionReason)
	})

	t.Run("approve requires admin role", func(t *testing.T) {
		env := newTestEnv(t)
		author := seedUser(t, env.store, "alice", models.RoleWriter)
		story, err := env.stories.Create(ctx, author.ID, models.CreateStoryRequest{Title: "T", Body: "b"})
		require.NoError(t, err)
		_, err = env.stories.Publish(ctx, author.ID, story.ID)
		require.NoError(t, err)

		_, err = env.stories.Approve(ctx, author.ID, story.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("approve from draft fails", func(t *testing.T) {
		env := newTestEnv(t)
		author := seedUser(t, env.store, "alice", models.RoleWriter)
		admin := seedUser(t, env.store, "root", models.RoleAdmin)
		story, err := env.stories.Create(ctx, author.ID, models.CreateStoryRequest{Title: "T", Body: "b"})
		require.NoError(t, err)

		_, err = env.stories.Approve(ctx, admin.ID, story.ID)
		var transitionErr *InvalidStateTransitionError
		assert.ErrorAs(t, err, &transitionErr)
	})

	t.Run("approve notifies every follower exactly once", func(t *testing.T) {
		env := newTestEnv(t)
		author := seedUser(t, env.store, "alice", models.RoleWriter)
		admin := seedUser(t, env.store, "root", models.RoleAdmin)
		fan1 := seedUser(t, env.store, "bob", models.RoleUser)
		fan2 := seedUser(t, env.store, "carol", models.RoleUser)
		stranger := seedUser(t, env.store, "dave", models.RoleUser)

		require.NoError(t, env.interactions.Follow(ctx, fan1.ID, author.ID))
		require.NoError(t, env.interactions.Follow(ctx, fan2.ID, author.ID))

		story, err := env.stories.Create(ctx, author.ID, models.CreateStoryRequest{Title: "Big News", Body: "b"})
		require.NoError(t, err)
		_, err = env.stories.Publish(ctx, author.ID, story.ID)
		require.NoError(t, err)
		_, err = env.stories.Approve(ctx, admin.ID, story.ID)
		require.NoError(t, err)

		assert.Len(t, notificationsFor(t, env.store, fan1.ID, models.NotificationTypeStoryPublished), 1)
		assert.Len(t, notificationsFor(t, env.store, fan2.ID, models.NotificationTypeStoryPublished), 1)
		assert.Empty(t, notificationsFor(t, env.store, stranger.ID, models.NotificationTypeStoryPublished))
	})
}

func TestStoryReject(t *testing.T) {
	ctx := context.Background()

	t.Run("reject stores the reason and notifies the author", func(t *testing.T) {
		env := newTestEnv(t)
		author := seedUser(t, env.store, "alice", models.RoleWriter)
		admin := seedUser(t, env.store, "root", models.RoleAdmin)
		story, err := env.stories.Create(ctx, author.ID, models.CreateStoryRequest{Title: "T", Body: "b"})
		require.NoError(t, err)
		_, err = env.stories.Publish(ctx, author.ID, story.ID)
		require.NoError(t, err)

		story, err = env.stories.Reject(ctx, admin.ID, story.ID, "duplicate content")
		require.NoError(t, err)
		assert.Equal(t, models.StoryStatusRejected, story.Status)
		assert.Equal(t, "duplicate content", story.RejectionReason)
		assert.Len(t, notificationsFor(t, env.store, author.ID, models.NotificationTypeStoryRejected), 1)
	})

	t.Run("reject requires pending review", func(t *testing.T) {
		env := newTestEnv(t)
		author := seedUser(t, env.store, "alice", models.RoleWriter)
		admin := seedUser(t, env.store, "root", models.RoleAdmin)
		story, err := env.stories.Create(ctx, author.ID, models.CreateStoryRequest{Title: "T", Body: "b"})
		require.NoError(t, err)

		_, err = env.stories.Reject(ctx, admin.ID, story.ID, "reason")
		var transitionErr *InvalidStateTransitionError
		assert.ErrorAs(t, err, &transitionErr)
	})
}

func TestStoryDeleteAndEditorPick(t *testing.T) {
	ctx := context.Background()

	t.Run("delete soft-deactivates and hides the story", func(t *testing.T) {
		env := newTestEnv(t)
		author := seedUser(t, env.store, "alice", models.RoleWriter)
		story, err := env.stories.Create(ctx, author.ID, models.CreateStoryRequest{Title: "T", Body: "b"})
		require.NoError(t, err)

		require.NoError(t, env.stories.Delete(ctx, author.ID, story.ID))
		_, err = env.stories.Get(ctx, story.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		stories, total, err := env.stories.List(ctx, models.StoryListFilter{}, 1, 10)
		require.NoError(t, err)
		assert.Empty(t, stories)
		assert.Zero(t, total)
	})

	t.Run("delete requires ownership or admin", func(t *testing.T) {
		env := newTestEnv(t)
		author := seedUser(t, env.store, "alice", models.RoleWriter)
		other := seedUser(t, env.store, "bob", models.RoleUser)
		admin := seedUser(t, env.store, "root", models.RoleAdmin)
		story, err := env.stories.Create(ctx, author.ID, models.CreateStoryRequest{Title: "T", Body: "b"})
		require.NoError(t, err)

		assert.ErrorIs(t, env.stories.Delete(ctx, other.ID, story.ID), ErrForbidden)
		assert.NoError(t, env.stories.Delete(ctx, admin.ID, story.ID))
	})

	t.Run("editor pick toggles regardless of status", func(t *testing.T) {
		env := newTestEnv(t)
		author := seedUser(t, env.store, "alice", models.RoleWriter)
		admin := seedUser(t, env.store, "root", models.RoleAdmin)
		story, err := env.stories.Create(ctx, author.ID, models.CreateStoryRequest{Title: "T", Body: "b"})
		require.NoError(t, err)

		story, err = env.stories.ToggleEditorPick(ctx, admin.ID, story.ID)
		require.NoError(t, err)
		assert.True(t, story.IsEditorPick)
		story, err = env.stories.ToggleEditorPick(ctx, admin.ID, story.ID)
		require.NoError(t, err)
		assert.False(t, story.IsEditorPick)

		_, err = env.stories.ToggleEditorPick(ctx, author.ID, story.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestStoryView(t *testing.T) {
	ctx := context.Background()

	t.Run("view moves story and author counters together", func(t *testing.T) {
		env := newTestEnv(t)
		author := seedUser(t, env.store, "alice", models.RoleWriter)
		story, err := env.stories.Create(ctx, author.ID, models.CreateStoryRequest{Title: "T", Body: "b"})
		require.NoError(t, err)

		viewed, err := env.stories.View(ctx, story.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), viewed.ViewCount)

		owner, err := env.store.Users().GetUserByID(author.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), owner.TotalViewCount)
	})
}

func TestStoryUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("author may edit a draft", func(t *testing.T) {
		env := newTestEnv(t)
		author := seedUser(t, env.store, "alice", models.RoleWriter)
		story, err := env.stories.Create(ctx, author.ID, models.CreateStoryRequest{Title: "Old Title", Body: "b"})
		require.NoError(t, err)

		story, err = env.stories.Update(ctx, author.ID, story.ID, models.UpdateStoryRequest{Title: "New Title"})
		require.NoError(t, err)
		assert.Equal(t, "New Title", story.Title)
		assert.Equal(t, "new-title", story.Slug)
	})

	t.Run("editing outside draft or rejected fails", func(t *testing.T) {
		env := newTestEnv(t)
		author := seedUser(t, env.store, "alice", models.RoleWriter)
		story, err := env.stories.Create(ctx, author.ID, models.CreateStoryRequest{Title: "T", Body: "b"})
		require.NoError(t, err)
		_, err = env.stories.Publish(ctx, author.ID, story.ID)
		require.NoError(t, err)

		_, err = env.stories.Update(ctx, author.ID, story.ID, models.UpdateStoryRequest{Body: "new"})
		assert.ErrorIs(t, err, ErrConflict)
	})
}
