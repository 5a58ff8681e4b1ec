package repository

import (
	"errors"

	"github.com/dangol-v2/deal-service/internal/domain"
	"github.com/dangol-v2/deal-service/internal/infrastructure/storage/mappers"
	"github.com/dangol-v2/deal-service/internal/infrastructure/storage/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultSubscriptionRepository struct {
	DB *gorm.DB
}

func NewDefaultSubscriptionRepository(db *gorm.DB) *DefaultSubscriptionRepository {
	return &DefaultSubscriptionRepository{DB: db}
}

func (r *DefaultSubscriptionRepository) SavePushSubscription(sub *domain.PushSubscription) error {
	subModel := mappers.ToGORMPushSubscription(sub)
	err := r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "device_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"endpoint", "p256dh_key", "auth_key", "user_agent", "updated_at"}),
	}).Create(subModel).Error
	if err != nil {
		return err
	}
	sub.ID = subModel.ID
	return nil
}

func (r *DefaultSubscriptionRepository) GetPushSubscription(deviceID string) (*domain.PushSubscription, error) {
	var subModel models.PushSubscriptionModel
	if err := r.DB.First(&subModel, "device_id = ?", deviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSubscriptionNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPushSubscription(&subModel), nil
}

func (r *DefaultSubscriptionRepository) GetActivePushSubscriptions() ([]*domain.PushSubscription, error) {
	var subModels []models.PushSubscriptionModel
	if err := r.DB.Order("updated_at DESC").Find(&subModels).Error; err != nil {
		return nil, err
	}

	subs := make([]*domain.PushSubscription, len(subModels))
	for i := range subModels {
		subs[i] = mappers.ToDomainPushSubscription(&subModels[i])
	}
	return subs, nil
}

func (r *DefaultSubscriptionRepository) DeletePushSubscription(deviceID string) error {
	return r.DB.Where("device_id = ?", deviceID).Delete(&models.PushSubscriptionModel{}).Error
}
