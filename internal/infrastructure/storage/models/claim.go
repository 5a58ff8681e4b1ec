package models

import "time"

type ClaimModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	DealID    int64  `gorm:"not null;uniqueIndex:idx_claim_deal_device"`
	DeviceID  string `gorm:"not null;uniqueIndex:idx_claim_deal_device;index:idx_claim_device"`
	ClaimCode string `gorm:"uniqueIndex;not null"`
	ClaimedAt time.Time
	ExpiresAt  time.Time `gorm:"not null"`
	RedeemedAt *time.Time

	Deal DealModel `gorm:"foreignKey:DealID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}
