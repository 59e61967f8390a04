package repositories

import (
	"github.com/pressline/pressline-backend/internal/models"
	"gorm.io/gorm"
)

// postgresNotificationRepository implements NotificationRepository for PostgreSQL
type postgresNotificationRepository struct {
	db *gorm.DB
}

func (r *postgresNotificationRepository) CreateNotification(notification *models.Notification) error {
	return translateError(r.db.Create(notification).Error)
}

func (r *postgresNotificationRepository) GetNotificationByID(id uint) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.First(&notification, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &notification, nil
}

func (r *postgresNotificationRepository) GetByRecipientID(recipientID uint, page, limit int) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	if err := r.db.Model(&models.Notification{}).Where("recipient_id = ?", recipientID).Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	offset := (page - 1) * limit
	err := r.db.Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&notifications).Error

	return notifications, total, translateError(err)
}

func (r *postgresNotificationRepository) GetUnreadCount(recipientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).Where("recipient_id = ? AND is_read = false", recipientID).Count(&count).Error
	return count, translateError(err)
}

func (r *postgresNotificationRepository) MarkAsRead(notificationID uint) error {
	return translateError(r.db.Model(&models.Notification{}).Where("id = ?", notificationID).Update("is_read", true).Error)
}

func (r *postgresNotificationRepository) MarkAllAsRead(recipientID uint) error {
	return translateError(r.db.Model(&models.Notification{}).Where("recipient_id = ? AND is_read = false", recipientID).Update("is_read", true).Error)
}
