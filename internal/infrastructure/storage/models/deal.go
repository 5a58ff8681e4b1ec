package models

import (
	"time"

	"github.com/dangol-v2/deal-service/internal/domain"
)

type DealModel struct {
	ID            int64 `gorm:"primaryKey;autoIncrement"`
	MerchantID    int64 `gorm:"not null;index"`
	Title         string
	Description   string
	StartsAt      *time.Time
	ExpiresAt     time.Time         `gorm:"not null;index:idx_deal_expires"`
	MaxClaims     int               `gorm:"not null;default:999"`
	CurrentClaims int               `gorm:"not null;default:0"`
	Status        domain.DealStatus `gorm:"not null;default:draft"`
	CreatedAt     time.Time         `gorm:"index:idx_deal_created_at"`

	Merchant MerchantModel `gorm:"foreignKey:MerchantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}
