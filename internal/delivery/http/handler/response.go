package handler

import (
	"errors"
	"net/http"

	"github.com/dangol-v2/deal-service/internal/domain"
	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Code: 0, Message: "ok", Data: data})
}

func created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Code: 0, Message: "ok", Data: data})
}

func fail(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, APIResponse{Code: httpStatus, Message: message})
}

func badRequest(c *gin.Context, message string) {
	fail(c, http.StatusBadRequest, message)
}

// domainError maps usecase sentinels onto HTTP statuses. Conflict covers
// the contended outcomes (sold out, duplicate claim, lost redeem race),
// Gone covers expiry.
func domainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		fail(c, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrDealNotFound),
		errors.Is(err, domain.ErrClaimNotFound),
		errors.Is(err, domain.ErrMerchantNotFound),
		errors.Is(err, domain.ErrSubscriptionNotFound),
		errors.Is(err, domain.ErrNotificationNotFound):
		fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrSoldOut),
		errors.Is(err, domain.ErrAlreadyClaimed),
		errors.Is(err, domain.ErrAlreadyRedeemed):
		fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrDealExpired),
		errors.Is(err, domain.ErrClaimExpired):
		fail(c, http.StatusGone, err.Error())
	default:
		fail(c, http.StatusInternalServerError, "internal error")
	}
}
