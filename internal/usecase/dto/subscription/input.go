package subscriptiondto

type SaveSubscriptionInput struct {
	DeviceID  string
	Endpoint  string
	P256dhKey string
	AuthKey   string
	UserAgent string
}

type DeleteSubscriptionInput struct {
	DeviceID string
}
