package dealdto

import "time"

type DealOutput struct {
	ID              int64      `json:"id"`
	MerchantID      int64      `json:"merchant_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	StartsAt        *time.Time `json:"starts_at,omitempty"`
	ExpiresAt       time.Time  `json:"expires_at"`
	MaxClaims       int        `json:"max_claims"`
	CurrentClaims   int        `json:"current_claims"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	MerchantName    string     `json:"merchant_name"`
	MerchantAddress string     `json:"merchant_address"`
	Latitude        float64    `json:"latitude"`
	Longitude       float64    `json:"longitude"`
}

type GetDealsNearOutput struct {
	Deals []*DealOutput `json:"deals"`
}
