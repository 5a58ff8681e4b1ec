package logger

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type ClaimIssuedEvent struct {
	ID         uint `gorm:"primaryKey"`
	DealID     int64
	MerchantID int64
	DeviceID   string
	ClaimCode  string
	Timestamp  time.Time
}

type ClaimRedeemedEvent struct {
	ID        uint `gorm:"primaryKey"`
	DealID    int64
	ClaimCode string
	Timestamp time.Time
}

// ClaimEventLogger feeds the downstream reporting consumer. Write
// failures are logged and dropped by callers, never surfaced to the
// request path.
type ClaimEventLogger interface {
	LogClaimIssued(ctx context.Context, event ClaimIssuedEvent) error
	LogClaimRedeemed(ctx context.Context, event ClaimRedeemedEvent) error
}

type PGClaimEventLogger struct {
	db *gorm.DB
}

func NewPGClaimEventLogger(db *gorm.DB) *PGClaimEventLogger {
	db.AutoMigrate(&ClaimIssuedEvent{}, &ClaimRedeemedEvent{})
	return &PGClaimEventLogger{db: db}
}

func (l *PGClaimEventLogger) LogClaimIssued(ctx context.Context, event ClaimIssuedEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}

func (l *PGClaimEventLogger) LogClaimRedeemed(ctx context.Context, event ClaimRedeemedEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}
