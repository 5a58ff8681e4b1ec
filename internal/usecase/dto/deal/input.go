package dealdto

import "time"

// CreateDealInput carries either an absolute validity window (StartsAt
// optional, ExpiresAt set) or the legacy duration form (Hours/Minutes
// anchored to now). Exactly one form must be provided.
type CreateDealInput struct {
	MerchantID  int64
	Title       string
	Description string

	StartsAt  *time.Time
	ExpiresAt *time.Time

	Hours   int
	Minutes int

	MaxClaims int
}

func (in *CreateDealInput) HasAbsoluteWindow() bool {
	return in.ExpiresAt != nil
}

type UpdateDealInput struct {
	DealID      int64
	MerchantID  int64
	Title       *string
	Description *string
	ExpiresAt   *time.Time
	MaxClaims   *int
}

type ConfirmDealInput struct {
	DealID     int64
	MerchantID int64
}

type GetDealsNearInput struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}
