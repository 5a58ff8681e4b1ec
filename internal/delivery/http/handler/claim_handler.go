package handler

import (
	"strconv"

	"github.com/dangol-v2/deal-service/internal/usecase"
	claimdto "github.com/dangol-v2/deal-service/internal/usecase/dto/claim"
	"github.com/gin-gonic/gin"
)

type ClaimHandler struct {
	claimUsecase usecase.ClaimUsecase
}

func NewClaimHandler(claimUsecase usecase.ClaimUsecase) *ClaimHandler {
	return &ClaimHandler{claimUsecase: claimUsecase}
}

type IssueClaimRequest struct {
	DeviceID string `json:"device_id" binding:"required"`
}

func (h *ClaimHandler) Issue(c *gin.Context) {
	dealID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid deal id")
		return
	}

	var req IssueClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request: "+err.Error())
		return
	}

	out, err := h.claimUsecase.IssueClaim(&claimdto.IssueClaimInput{
		DealID:   dealID,
		DeviceID: req.DeviceID,
	})
	if err != nil {
		domainError(c, err)
		return
	}
	created(c, out)
}

type RedeemClaimRequest struct {
	ClaimCode string `json:"claim_code" binding:"required"`
}

func (h *ClaimHandler) Redeem(c *gin.Context) {
	var req RedeemClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request: "+err.Error())
		return
	}

	if err := h.claimUsecase.RedeemClaim(&claimdto.RedeemClaimInput{ClaimCode: req.ClaimCode}); err != nil {
		domainError(c, err)
		return
	}
	success(c, nil)
}

func (h *ClaimHandler) ListByDevice(c *gin.Context) {
	deviceID := c.Param("deviceId")
	if deviceID == "" {
		badRequest(c, "invalid device id")
		return
	}

	out, err := h.claimUsecase.GetDeviceClaims(&claimdto.GetDeviceClaimsInput{DeviceID: deviceID})
	if err != nil {
		domainError(c, err)
		return
	}
	success(c, out)
}
