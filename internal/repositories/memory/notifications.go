package memory

import (
	"sort"

	"github.com/pressline/pressline-backend/internal/models"
	"github.com/pressline/pressline-backend/internal/repositories"
)

type memoryNotificationRepository MemoryStore

func (r *memoryNotificationRepository) store() *MemoryStore { return (*MemoryStore)(r) }

func (r *memoryNotificationRepository) CreateNotification(notification *models.Notification) error {
	s := r.store()
	s.lock()
	defer s.unlock()

	if notification.ID == 0 {
		notification.ID = s.allocID("notification")
	}
	cp := *notification
	s.data.notifications[notification.ID] = &cp
	return nil
}

func (r *memoryNotificationRepository) GetNotificationByID(id uint) (*models.Notification, error) {
	s := r.store()
	s.lock()
	defer s.unlock()

	notification, ok := s.data.notifications[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *notification
	return &cp, nil
}

func (r *memoryNotificationRepository) GetByRecipientID(recipientID uint, page, limit int) ([]models.Notification, int64, error) {
	s := r.store()
	s.lock()
	defer s.unlock()

	var notifications []models.Notification
	for _, n := range s.data.notifications {
		if n.RecipientID == recipientID {
			notifications = append(notifications, *n)
		}
	}
	sort.Slice(notifications, func(i, j int) bool {
		if notifications[i].CreatedAt.Equal(notifications[j].CreatedAt) {
			return notifications[i].ID > notifications[j].ID
		}
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	total := int64(len(notifications))
	return paginate(notifications, page, limit), total, nil
}

func (r *memoryNotificationRepository) GetUnreadCount(recipientID uint) (int64, error) {
	s := r.store()
	s.lock()
	defer s.unlock()

	var count int64
	for _, n := range s.data.notifications {
		if n.RecipientID == recipientID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *memoryNotificationRepository) MarkAsRead(notificationID uint) error {
	s := r.store()
	s.lock()
	defer s.unlock()

	notification, ok := s.data.notifications[notificationID]
	if !ok {
		return repositories.ErrNotFound
	}
	notification.IsRead = true
	return nil
}

func (r *memoryNotificationRepository) MarkAllAsRead(recipientID uint) error {
	s := r.store()
	s.lock()
	defer s.unlock()

	for _, n := range s.data.notifications {
		if n.RecipientID == recipientID {
			n.IsRead = true
		}
	}
	return nil
}
