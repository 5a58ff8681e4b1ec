package repository

import (
	"errors"
	"time"

	"github.com/dangol-v2/deal-service/internal/domain"
	"github.com/dangol-v2/deal-service/internal/infrastructure/storage/mappers"
	"github.com/dangol-v2/deal-service/internal/infrastructure/storage/models"
	"gorm.io/gorm"
)

type DefaultNotificationRepository struct {
	DB *gorm.DB
}

func NewDefaultNotificationRepository(db *gorm.DB) *DefaultNotificationRepository {
	return &DefaultNotificationRepository{DB: db}
}

func (r *DefaultNotificationRepository) CreateNotification(n *domain.Notification) error {
	notificationModel := mappers.ToGORMNotification(n)
	if err := r.DB.Create(notificationModel).Error; err != nil {
		return err
	}
	n.ID = notificationModel.ID
	n.CreatedAt = notificationModel.CreatedAt
	return nil
}

func (r *DefaultNotificationRepository) GetNotificationByID(notificationID int64) (*domain.Notification, error) {
	var notificationModel models.NotificationModel
	if err := r.DB.First(&notificationModel, "id = ?", notificationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, err
	}
	return mappers.ToDomainNotification(&notificationModel), nil
}

func (r *DefaultNotificationRepository) UpdateNotificationStatus(notificationID int64, status domain.NotificationStatus, counters *domain.NotificationCounters) error {
	updates := map[string]interface{}{"status": status}
	if status == domain.NotificationSent {
		updates["sent_at"] = time.Now()
	}
	if counters != nil {
		updates["total_recipients"] = counters.TotalRecipients
		updates["total_delivered"] = counters.TotalDelivered
	}
	return r.DB.Model(&models.NotificationModel{}).Where("id = ?", notificationID).Updates(updates).Error
}

func (r *DefaultNotificationRepository) CreateDelivery(d *domain.NotificationDelivery) error {
	deliveryModel := mappers.ToGORMDelivery(d)
	if err := r.DB.Omit("Notification").Create(deliveryModel).Error; err != nil {
		return err
	}
	d.ID = deliveryModel.ID
	return nil
}

func (r *DefaultNotificationRepository) UpdateDeliveryStatus(deliveryID int64, status domain.DeliveryStatus, errorMessage string) error {
	updates := map[string]interface{}{"status": status}
	switch status {
	case domain.DeliveryDelivered:
		updates["delivered_at"] = time.Now()
	case domain.DeliveryFailed:
		updates["failed_at"] = time.Now()
		if errorMessage != "" {
			updates["error_message"] = errorMessage
		}
	}
	return r.DB.Model(&models.NotificationDeliveryModel{}).Where("id = ?", deliveryID).Updates(updates).Error
}

func (r *DefaultNotificationRepository) GetDeliveries(notificationID int64) ([]*domain.NotificationDelivery, error) {
	var deliveryModels []models.NotificationDeliveryModel
	err := r.DB.Where("notification_id = ?", notificationID).
		Order("sent_at DESC").
		Find(&deliveryModels).Error
	if err != nil {
		return nil, err
	}

	deliveries := make([]*domain.NotificationDelivery, len(deliveryModels))
	for i := range deliveryModels {
		deliveries[i] = mappers.ToDomainDelivery(&deliveryModels[i])
	}
	return deliveries, nil
}
