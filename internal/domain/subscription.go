package domain

import "time"

type PushSubscription struct {
	ID        int64
	DeviceID  string
	Endpoint  string
	P256dhKey string
	AuthKey   string
	UserAgent string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SubscriptionRepository interface {
	// SavePushSubscription upserts by device ID: a device re-subscribing
	// replaces its previous key material.
	SavePushSubscription(sub *PushSubscription) error
	GetPushSubscription(deviceID string) (*PushSubscription, error)
	GetActivePushSubscriptions() ([]*PushSubscription, error)
	DeletePushSubscription(deviceID string) error
}
