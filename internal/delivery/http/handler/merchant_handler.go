package handler

import (
	"strconv"

	"github.com/dangol-v2/deal-service/internal/usecase"
	merchantdto "github.com/dangol-v2/deal-service/internal/usecase/dto/merchant"
	"github.com/gin-gonic/gin"
)

type MerchantHandler struct {
	merchantUsecase usecase.MerchantUsecase
}

func NewMerchantHandler(merchantUsecase usecase.MerchantUsecase) *MerchantHandler {
	return &MerchantHandler{merchantUsecase: merchantUsecase}
}

type RegisterMerchantRequest struct {
	BusinessName string  `json:"business_name" binding:"required"`
	Address      string  `json:"address" binding:"required"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

func (h *MerchantHandler) Register(c *gin.Context) {
	var req RegisterMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request: "+err.Error())
		return
	}

	out, err := h.merchantUsecase.CreateMerchant(&merchantdto.CreateMerchantInput{
		BusinessName: req.BusinessName,
		Address:      req.Address,
		Phone:        req.Phone,
		Email:        req.Email,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	})
	if err != nil {
		domainError(c, err)
		return
	}
	created(c, out)
}

func (h *MerchantHandler) Get(c *gin.Context) {
	merchantID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid merchant id")
		return
	}

	out, err := h.merchantUsecase.GetMerchantByID(merchantID)
	if err != nil {
		domainError(c, err)
		return
	}
	success(c, out)
}

type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
	Address   string  `json:"address"`
}

func (h *MerchantHandler) UpdateLocation(c *gin.Context) {
	merchantID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid merchant id")
		return
	}

	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request: "+err.Error())
		return
	}

	out, err := h.merchantUsecase.UpdateMerchantLocation(&merchantdto.UpdateMerchantLocationInput{
		MerchantID: merchantID,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Address:    req.Address,
	})
	if err != nil {
		domainError(c, err)
		return
	}
	success(c, out)
}
