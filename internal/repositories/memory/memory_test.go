package memory

import (
	"context"
	"testing"

	"github.com/pressline/pressline-backend/internal/models"
	"github.com/pressline/pressline-backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStore(t *testing.T) (*MemoryStore, *models.User, *models.Story) {
	t.Helper()
	store := New()
	user := &models.User{Name: "alice", Email: "alice@example.com", Role: models.RoleWriter}
	require.NoError(t, store.Users().CreateUser(user))
	story := &models.Story{AuthorID: user.ID, Title: "T", Slug: "t", Body: "b", Status: models.StoryStatusDraft, IsActive: true}
	require.NoError(t, store.Stories().CreateStory(story))
	return store, user, story
}

func TestUniqueConstraints(t *testing.T) {
	t.Run("duplicate email", func(t *testing.T) {
		store, _, _ := seedStore(t)
		err := store.Users().CreateUser(&models.User{Name: "other", Email: "alice@example.com"})
		assert.ErrorIs(t, err, repositories.ErrDuplicate)
	})

	t.Run("duplicate story slug", func(t *testing.T) {
		store, user, _ := seedStore(t)
		err := store.Stories().CreateStory(&models.Story{AuthorID: user.ID, Title: "T2", Slug: "t", Body: "b", IsActive: true})
		assert.ErrorIs(t, err, repositories.ErrDuplicate)
	})

	t.Run("duplicate like edge", func(t *testing.T) {
		store, user, story := seedStore(t)
		require.NoError(t, store.Likes().CreateLike(&models.Like{UserID: user.ID, StoryID: story.ID}))
		err := store.Likes().CreateLike(&models.Like{UserID: user.ID, StoryID: story.ID})
		assert.ErrorIs(t, err, repositories.ErrDuplicate)
	})

	t.Run("duplicate follow edge", func(t *testing.T) {
		store, user, _ := seedStore(t)
		other := &models.User{Name: "bob", Email: "bob@example.com"}
		require.NoError(t, store.Users().CreateUser(other))
		require.NoError(t, store.Follows().CreateFollow(&models.Follow{FollowerID: user.ID, FollowedID: other.ID}))
		err := store.Follows().CreateFollow(&models.Follow{FollowerID: user.ID, FollowedID: other.ID})
		assert.ErrorIs(t, err, repositories.ErrDuplicate)
	})
}

func TestCounterClamp(t *testing.T) {
	store, user, story := seedStore(t)

	require.NoError(t, store.Stories().AddLikeCount(story.ID, -5))
	got, err := store.Stories().GetStoryByID(story.ID)
	require.NoError(t, err)
	assert.Zero(t, got.LikeCount)

	require.NoError(t, store.Stories().AddCommentCount(story.ID, -1))
	got, err = store.Stories().GetStoryByID(story.ID)
	require.NoError(t, err)
	assert.Zero(t, got.CommentCount)

	require.NoError(t, store.Users().AddTotalLikes(user.ID, -3))
	owner, err := store.Users().GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Zero(t, owner.TotalLikeCount)
}

func TestDeleteMissingEdge(t *testing.T) {
	store, user, story := seedStore(t)
	assert.ErrorIs(t, store.Likes().DeleteLike(user.ID, story.ID), repositories.ErrNotFound)
	assert.ErrorIs(t, store.Follows().DeleteFollow(user.ID, 99), repositories.ErrNotFound)
}

func TestReturnedCopiesAreDetached(t *testing.T) {
	store, _, story := seedStore(t)

	got, err := store.Stories().GetStoryByID(story.ID)
	require.NoError(t, err)
	got.Title = "mutated"

	again, err := store.Stories().GetStoryByID(story.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", again.Title)
}

func TestListStoriesPagination(t *testing.T) {
	store, user, _ := seedStore(t)
	for i := 0; i < 4; i++ {
		require.NoError(t, store.Stories().CreateStory(&models.Story{
			AuthorID: user.ID,
			Title:    "extra",
			Slug:     "extra-" + string(rune('a'+i)),
			Body:     "b",
			Status:   models.StoryStatusDraft,
			IsActive: true,
		}))
	}

	page1, total, err := store.Stories().ListStories(models.StoryListFilter{}, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page1, 3)

	page2, _, err := store.Stories().ListStories(models.StoryListFilter{}, 2, 3)
	require.NoError(t, err)
	assert.Len(t, page2, 2)
}

func TestAtomicallyNestsAndSerializes(t *testing.T) {
	store, _, story := seedStore(t)
	ctx := context.Background()

	err := store.Atomically(ctx, func(tx repositories.Store) error {
		if err := tx.Stories().AddLikeCount(story.ID, 1); err != nil {
			return err
		}
		// re-entrant use of the transactional handle
		return tx.Atomically(ctx, func(inner repositories.Store) error {
			return tx.Stories().AddLikeCount(story.ID, 1)
		})
	})
	require.NoError(t, err)

	got, err := store.Stories().GetStoryByID(story.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.LikeCount)
}
