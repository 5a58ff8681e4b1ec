package handler

import (
	"github.com/dangol-v2/deal-service/internal/usecase"
	notificationdto "github.com/dangol-v2/deal-service/internal/usecase/dto/notification"
	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notificationUsecase: notificationUsecase}
}

type SendNotificationRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
	Icon  string `json:"icon"`
	Badge string `json:"badge"`
	Data  string `json:"data"`

	TargetType   string  `json:"target_type" binding:"required"`
	DeviceID     string  `json:"device_id"`
	MerchantID   int64   `json:"merchant_id"`
	RadiusLat    float64 `json:"radius_lat"`
	RadiusLng    float64 `json:"radius_lng"`
	RadiusMeters float64 `json:"radius_meters"`
}

// Send is the operator path; the auto-notification path never passes
// through HTTP.
func (h *NotificationHandler) Send(c *gin.Context) {
	var req SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request: "+err.Error())
		return
	}

	out, err := h.notificationUsecase.SendNotification(&notificationdto.SendNotificationInput{
		Title:        req.Title,
		Body:         req.Body,
		Icon:         req.Icon,
		Badge:        req.Badge,
		Data:         req.Data,
		TargetType:   req.TargetType,
		DeviceID:     req.DeviceID,
		MerchantID:   req.MerchantID,
		RadiusLat:    req.RadiusLat,
		RadiusLng:    req.RadiusLng,
		RadiusMeters: req.RadiusMeters,
		CreatedBy:    "admin",
	})
	if err != nil {
		domainError(c, err)
		return
	}
	created(c, out)
}
