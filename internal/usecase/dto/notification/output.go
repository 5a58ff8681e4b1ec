package notificationdto

type SendNotificationOutput struct {
	NotificationID  int64 `json:"notification_id"`
	TotalRecipients int   `json:"total_recipients"`
	TotalDelivered  int   `json:"total_delivered"`
}
