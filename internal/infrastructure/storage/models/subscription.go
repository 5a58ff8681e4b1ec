package models

import "time"

type PushSubscriptionModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	DeviceID  string `gorm:"uniqueIndex;not null"`
	Endpoint  string `gorm:"not null"`
	P256dhKey string `gorm:"not null"`
	AuthKey   string `gorm:"not null"`
	UserAgent string
	CreatedAt time.Time
	UpdatedAt time.Time
}
