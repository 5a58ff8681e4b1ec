package domain

import "time"

type NotificationTargetType string

const (
	TargetAll               NotificationTargetType = "all"
	TargetRadius            NotificationTargetType = "radius"
	TargetDevice            NotificationTargetType = "device"
	TargetMerchantCustomers NotificationTargetType = "merchant_customers"
)

type NotificationStatus string

const (
	NotificationPending NotificationStatus = "pending"
	NotificationSending NotificationStatus = "sending"
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
)

// NotificationTarget is a targeting rule resolved to concrete device IDs
// before dispatch. Radius fields are only set for TargetRadius,
// MerchantID only for TargetMerchantCustomers, DeviceID only for TargetDevice.
type NotificationTarget struct {
	Type         NotificationTargetType
	DeviceID     string
	MerchantID   int64
	RadiusLat    float64
	RadiusLng    float64
	RadiusMeters float64
}

type Notification struct {
	ID              int64
	Title           string
	Body            string
	Icon            string
	Badge           string
	Data            string
	Target          NotificationTarget
	CreatedBy       string
	CreatedAt       time.Time
	SentAt          *time.Time
	TotalRecipients int
	TotalDelivered  int
	Status          NotificationStatus
}

type DeliveryStatus string

const (
	DeliverySent      DeliveryStatus = "sent"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryFailed    DeliveryStatus = "failed"
)

type NotificationDelivery struct {
	ID             int64
	NotificationID int64
	DeviceID       string
	Endpoint       string
	SentAt         time.Time
	DeliveredAt    *time.Time
	FailedAt       *time.Time
	ErrorMessage   string
	Status         DeliveryStatus
}

type NotificationCounters struct {
	TotalRecipients int
	TotalDelivered  int
}

type NotificationRepository interface {
	CreateNotification(n *Notification) error
	GetNotificationByID(notificationID int64) (*Notification, error)
	UpdateNotificationStatus(notificationID int64, status NotificationStatus, counters *NotificationCounters) error

	CreateDelivery(d *NotificationDelivery) error
	UpdateDeliveryStatus(deliveryID int64, status DeliveryStatus, errorMessage string) error
	GetDeliveries(notificationID int64) ([]*NotificationDelivery, error)
}
