package handler

import (
	"strconv"
	"time"

	"github.com/dangol-v2/deal-service/internal/usecase"
	dealdto "github.com/dangol-v2/deal-service/internal/usecase/dto/deal"
	"github.com/gin-gonic/gin"
)

type DealHandler struct {
	dealUsecase usecase.DealUsecase
}

func NewDealHandler(dealUsecase usecase.DealUsecase) *DealHandler {
	return &DealHandler{dealUsecase: dealUsecase}
}

// CreateDealRequest accepts either an absolute window (starts_at optional,
// expires_at set) or the legacy hours/minutes duration.
type CreateDealRequest struct {
	MerchantID  int64      `json:"merchant_id" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description" binding:"required"`
	StartsAt    *time.Time `json:"starts_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
	Hours       int        `json:"hours"`
	Minutes     int        `json:"minutes"`
	MaxClaims   int        `json:"max_claims" binding:"required"`
}

func (h *DealHandler) Create(c *gin.Context) {
	var req CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request: "+err.Error())
		return
	}

	out, err := h.dealUsecase.CreateDeal(&dealdto.CreateDealInput{
		MerchantID:  req.MerchantID,
		Title:       req.Title,
		Description: req.Description,
		StartsAt:    req.StartsAt,
		ExpiresAt:   req.ExpiresAt,
		Hours:       req.Hours,
		Minutes:     req.Minutes,
		MaxClaims:   req.MaxClaims,
	})
	if err != nil {
		domainError(c, err)
		return
	}
	created(c, out)
}

type UpdateDealRequest struct {
	MerchantID  int64      `json:"merchant_id" binding:"required"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	ExpiresAt   *time.Time `json:"expires_at"`
	MaxClaims   *int       `json:"max_claims"`
}

func (h *DealHandler) Update(c *gin.Context) {
	dealID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid deal id")
		return
	}

	var req UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request: "+err.Error())
		return
	}

	out, err := h.dealUsecase.UpdateDeal(&dealdto.UpdateDealInput{
		DealID:      dealID,
		MerchantID:  req.MerchantID,
		Title:       req.Title,
		Description: req.Description,
		ExpiresAt:   req.ExpiresAt,
		MaxClaims:   req.MaxClaims,
	})
	if err != nil {
		domainError(c, err)
		return
	}
	success(c, out)
}

type ConfirmDealRequest struct {
	MerchantID int64 `json:"merchant_id" binding:"required"`
}

func (h *DealHandler) Confirm(c *gin.Context) {
	dealID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid deal id")
		return
	}

	var req ConfirmDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request: "+err.Error())
		return
	}

	out, err := h.dealUsecase.ConfirmDeal(&dealdto.ConfirmDealInput{
		DealID:     dealID,
		MerchantID: req.MerchantID,
	})
	if err != nil {
		domainError(c, err)
		return
	}
	success(c, out)
}

func (h *DealHandler) Get(c *gin.Context) {
	dealID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid deal id")
		return
	}

	out, err := h.dealUsecase.GetDealByID(dealID)
	if err != nil {
		domainError(c, err)
		return
	}
	success(c, out)
}

func (h *DealHandler) ListByMerchant(c *gin.Context) {
	merchantID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid merchant id")
		return
	}

	out, err := h.dealUsecase.GetMerchantDeals(merchantID)
	if err != nil {
		domainError(c, err)
		return
	}
	success(c, out)
}

// Nearby serves GET /deals/nearby?lat=&lng=&radius=. Radius in meters;
// omitted means the default discovery radius.
func (h *DealHandler) Nearby(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		badRequest(c, "invalid lat")
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		badRequest(c, "invalid lng")
		return
	}

	var radius float64
	if raw := c.Query("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			badRequest(c, "invalid radius")
			return
		}
	}

	out, err := h.dealUsecase.GetDealsNear(&dealdto.GetDealsNearInput{
		Latitude:     lat,
		Longitude:    lng,
		RadiusMeters: radius,
	})
	if err != nil {
		domainError(c, err)
		return
	}
	success(c, out)
}
