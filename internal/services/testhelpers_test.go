package services

import (
	"fmt"
	"testing"

	"github.com/pressline/pressline-backend/internal/models"
	"github.com/pressline/pressline-backend/internal/repositories"
	"github.com/pressline/pressline-backend/internal/repositories/memory"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEnv struct {
	store         repositories.Store
	stories       *StoryService
	comments      *CommentService
	interactions  *InteractionService
	notifications *NotificationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := memory.New()
	logger := zap.NewNop()
	notifications := NewNotificationService(store, logger)
	return &testEnv{
		store:         store,
		stories:       NewStoryService(store, notifications, logger),
		comments:      NewCommentService(store, notifications, logger),
		interactions:  NewInteractionService(store, notifications, logger),
		notifications: notifications,
	}
}

func seedUser(t *testing.T, store repositories.Store, name, role string) *models.User {
	t.Helper()
	user := &models.User{
		Name:  name,
		Email: fmt.Sprintf("%s@example.com", name),
		Role:  role,
	}
	require.NoError(t, store.Users().CreateUser(user))
	return user
}

// notificationsFor returns every notification of the recipient with the
// given type.
func notificationsFor(t *testing.T, store repositories.Store, recipientID uint, ntype models.NotificationType) []models.Notification {
	t.Helper()
	all, _, err := store.Notifications().GetByRecipientID(recipientID, 1, 100)
	require.NoError(t, err)
	var matched []models.Notification
	for _, n := range all {
		if n.Type == ntype {
			matched = append(matched, n)
		}
	}
	return matched
}
