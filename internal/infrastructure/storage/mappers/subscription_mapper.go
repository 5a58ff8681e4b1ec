package mappers

import (
	"github.com/dangol-v2/deal-service/internal/domain"
	"github.com/dangol-v2/deal-service/internal/infrastructure/storage/models"
)

func ToGORMPushSubscription(sub *domain.PushSubscription) *models.PushSubscriptionModel {
	return &models.PushSubscriptionModel{
		ID: sub.ID,
		DeviceID: sub.DeviceID,
		Endpoint: sub.Endpoint,
		P256dhKey: sub.P256dhKey,
		AuthKey: sub.AuthKey,
		UserAgent: sub.UserAgent,
		CreatedAt: sub.CreatedAt,
		UpdatedAt: sub.UpdatedAt,
	}
}

func ToDomainPushSubscription(model *models.PushSubscriptionModel) *domain.PushSubscription {
	return &domain.PushSubscription{
		ID: model.ID,
		DeviceID: model.DeviceID,
		Endpoint: model.Endpoint,
		P256dhKey: model.P256dhKey,
		AuthKey: model.AuthKey,
		UserAgent: model.UserAgent,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
