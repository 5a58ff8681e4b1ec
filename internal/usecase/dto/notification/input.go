package notificationdto

type SendNotificationInput struct {
	Title string
	Body  string
	Icon  string
	Badge string
	Data  string

	TargetType   string
	DeviceID     string
	MerchantID   int64
	RadiusLat    float64
	RadiusLng    float64
	RadiusMeters float64

	CreatedBy string
}
