package claimdto

import "time"

type IssueClaimOutput struct {
	ClaimCode string    `json:"claim_code"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ClaimOutput struct {
	DealID          int64      `json:"deal_id"`
	ClaimCode       string     `json:"claim_code"`
	ClaimedAt       time.Time  `json:"claimed_at"`
	ExpiresAt       time.Time  `json:"expires_at"`
	RedeemedAt      *time.Time `json:"redeemed_at,omitempty"`
	DealTitle       string     `json:"deal_title"`
	DealDescription string     `json:"deal_description"`
	MerchantName    string     `json:"merchant_name"`
}

type GetDeviceClaimsOutput struct {
	Claims []*ClaimOutput `json:"claims"`
}
