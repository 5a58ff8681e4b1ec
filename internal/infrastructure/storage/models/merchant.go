package models

import "time"

type MerchantModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	BusinessName string `gorm:"not null"`
	Address      string `gorm:"not null"`
	Phone        string
	Email        string  `gorm:"uniqueIndex;not null"`
	Latitude     float64 `gorm:"not null;index:idx_merchant_location"`
	Longitude    float64 `gorm:"not null;index:idx_merchant_location"`
	CreatedAt    time.Time
}
