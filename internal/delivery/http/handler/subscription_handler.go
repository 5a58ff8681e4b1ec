package handler

import (
	"github.com/dangol-v2/deal-service/internal/usecase"
	subscriptiondto "github.com/dangol-v2/deal-service/internal/usecase/dto/subscription"
	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionUsecase usecase.SubscriptionUsecase
}

func NewSubscriptionHandler(subscriptionUsecase usecase.SubscriptionUsecase) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionUsecase: subscriptionUsecase}
}

type SaveSubscriptionRequest struct {
	DeviceID  string `json:"device_id" binding:"required"`
	Endpoint  string `json:"endpoint" binding:"required"`
	P256dhKey string `json:"p256dh_key"`
	AuthKey   string `json:"auth_key"`
}

func (h *SubscriptionHandler) Save(c *gin.Context) {
	var req SaveSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request: "+err.Error())
		return
	}

	err := h.subscriptionUsecase.SaveSubscription(&subscriptiondto.SaveSubscriptionInput{
		DeviceID:  req.DeviceID,
		Endpoint:  req.Endpoint,
		P256dhKey: req.P256dhKey,
		AuthKey:   req.AuthKey,
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		domainError(c, err)
		return
	}
	success(c, nil)
}

func (h *SubscriptionHandler) Delete(c *gin.Context) {
	deviceID := c.Param("deviceId")
	if deviceID == "" {
		badRequest(c, "invalid device id")
		return
	}

	err := h.subscriptionUsecase.DeleteSubscription(&subscriptiondto.DeleteSubscriptionInput{DeviceID: deviceID})
	if err != nil {
		domainError(c, err)
		return
	}
	success(c, nil)
}
