package mappers

import (
	"github.com/dangol-v2/deal-service/internal/domain"
	"github.com/dangol-v2/deal-service/internal/infrastructure/storage/models"
)

func ToGORMNotification(n *domain.Notification) *models.NotificationModel {
	model := &models.NotificationModel{
		ID: n.ID,
		Title: n.Title,
		Body: n.Body,
		Icon: n.Icon,
		Badge: n.Badge,
		Data: n.Data,
		TargetType: n.Target.Type,
		TargetValue: n.Target.DeviceID,
		RadiusLat: n.Target.RadiusLat,
		RadiusLng: n.Target.RadiusLng,
		RadiusMeters: n.Target.RadiusMeters,
		CreatedBy: n.CreatedBy,
		CreatedAt: n.CreatedAt,
		SentAt: n.SentAt,
		TotalRecipients: n.TotalRecipients,
		TotalDelivered: n.TotalDelivered,
		Status: n.Status,
	}
	if n.Target.MerchantID != 0 {
		merchantID := n.Target.MerchantID
		model.MerchantID = &merchantID
	}
	return model
}

func ToDomainNotification(model *models.NotificationModel) *domain.Notification {
	target := domain.NotificationTarget{
		Type: model.TargetType,
		DeviceID: model.TargetValue,
		RadiusLat: model.RadiusLat,
		RadiusLng: model.RadiusLng,
		RadiusMeters: model.RadiusMeters,
	}
	if model.MerchantID != nil {
		target.MerchantID = *model.MerchantID
	}
	return &domain.Notification{
		ID: model.ID,
		Title: model.Title,
		Body: model.Body,
		Icon: model.Icon,
		Badge: model.Badge,
		Data: model.Data,
		Target: target,
		CreatedBy: model.CreatedBy,
		CreatedAt: model.CreatedAt,
		SentAt: model.SentAt,
		TotalRecipients: model.TotalRecipients,
		TotalDelivered: model.TotalDelivered,
		Status: model.Status,
	}
}

func ToGORMDelivery(d *domain.NotificationDelivery) *models.NotificationDeliveryModel {
	return &models.NotificationDeliveryModel{
		ID: d.ID,
		NotificationID: d.NotificationID,
		DeviceID: d.DeviceID,
		Endpoint: d.Endpoint,
		SentAt: d.SentAt,
		DeliveredAt: d.DeliveredAt,
		FailedAt: d.FailedAt,
		ErrorMessage: d.ErrorMessage,
		Status: d.Status,
	}
}

func ToDomainDelivery(model *models.NotificationDeliveryModel) *domain.NotificationDelivery {
	return &domain.NotificationDelivery{
		ID: model.ID,
		NotificationID: model.NotificationID,
		DeviceID: model.DeviceID,
		Endpoint: model.Endpoint,
		SentAt: model.SentAt,
		DeliveredAt: model.DeliveredAt,
		FailedAt: model.FailedAt,
		ErrorMessage: model.ErrorMessage,
		Status: model.Status,
	}
}
