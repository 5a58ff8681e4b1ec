package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(
	env string,
	ping func() error,
	merchantHandler *MerchantHandler,
	dealHandler *DealHandler,
	claimHandler *ClaimHandler,
	subscriptionHandler *SubscriptionHandler,
	notificationHandler *NotificationHandler,
) *gin.Engine {
	if env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		if err := ping(); err != nil {
			c.JSON(503, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		api.POST("/merchants", merchantHandler.Register)
		api.GET("/merchants/:id", merchantHandler.Get)
		api.PUT("/merchants/:id/location", merchantHandler.UpdateLocation)
		api.GET("/merchants/:id/deals", dealHandler.ListByMerchant)

		api.POST("/deals", dealHandler.Create)
		api.GET("/deals/nearby", dealHandler.Nearby)
		api.GET("/deals/:id", dealHandler.Get)
		api.PATCH("/deals/:id", dealHandler.Update)
		api.POST("/deals/:id/confirm", dealHandler.Confirm)
		api.POST("/deals/:id/claims", claimHandler.Issue)

		api.POST("/claims/redeem", claimHandler.Redeem)
		api.GET("/devices/:deviceId/claims", claimHandler.ListByDevice)

		api.POST("/subscriptions", subscriptionHandler.Save)
		api.DELETE("/subscriptions/:deviceId", subscriptionHandler.Delete)

		api.POST("/admin/notifications", notificationHandler.Send)
	}

	return r
}
