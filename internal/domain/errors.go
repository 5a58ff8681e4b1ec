package domain

import "errors"

var (
	ErrDealNotFound         = errors.New("deal not found")
	ErrClaimNotFound        = errors.New("claim not found")
	ErrMerchantNotFound     = errors.New("merchant not found")
	ErrSubscriptionNotFound = errors.New("push subscription not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrSoldOut         = errors.New("deal has no remaining claims")
	ErrDealExpired     = errors.New("deal expired")
	ErrClaimExpired    = errors.New("claim expired")
	ErrAlreadyClaimed  = errors.New("deal already claimed by this device")
	ErrAlreadyRedeemed = errors.New("claim already redeemed")
	ErrUnauthorized    = errors.New("merchant does not own this deal")
	ErrValidation      = errors.New("validation failed")

	// ErrClaimCodeCollision reports that a freshly generated claim code hit
	// the uniqueness constraint. The issuer regenerates and retries.
	ErrClaimCodeCollision = errors.New("claim code collision")
)
