package models

import (
	"time"

	"github.com/dangol-v2/deal-service/internal/domain"
)

type NotificationModel struct {
	ID              int64 `gorm:"primaryKey;autoIncrement"`
	Title           string
	Body            string
	Icon            string
	Badge           string
	Data            string
	TargetType      domain.NotificationTargetType `gorm:"not null;index"`
	TargetValue     string
	MerchantID      *int64 `gorm:"index"`
	RadiusLat       float64
	RadiusLng       float64
	RadiusMeters    float64
	CreatedBy       string `gorm:"default:admin"`
	CreatedAt       time.Time `gorm:"index:idx_notification_created_at"`
	SentAt          *time.Time
	TotalRecipients int                       `gorm:"not null;default:0"`
	TotalDelivered  int                       `gorm:"not null;default:0"`
	Status          domain.NotificationStatus `gorm:"not null;default:pending"`
}

type NotificationDeliveryModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	NotificationID int64  `gorm:"not null;index"`
	DeviceID       string `gorm:"not null;index"`
	Endpoint       string
	SentAt         time.Time
	DeliveredAt    *time.Time
	FailedAt       *time.Time
	ErrorMessage   string
	Status         domain.DeliveryStatus `gorm:"not null;default:sent;index"`

	Notification NotificationModel `gorm:"foreignKey:NotificationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
