package domain

import "time"

type DealStatus string

const (
	DealStatusDraft     DealStatus = "draft"
	DealStatusConfirmed DealStatus = "confirmed"
)

type Deal struct {
	ID            int64
	MerchantID    int64
	Title         string
	Description   string
	StartsAt      *time.Time
	ExpiresAt     time.Time
	MaxClaims     int
	CurrentClaims int
	Status        DealStatus
	CreatedAt     time.Time

	// Denormalized merchant info, populated by joined reads.
	MerchantName    string
	MerchantAddress string
	Latitude        float64
	Longitude       float64
}

// HasCapacity reports whether the deal can still accept claims.
// MaxClaims == 0 is the cancellation sentinel and always reads as full.
func (d *Deal) HasCapacity() bool {
	return d.CurrentClaims < d.MaxClaims
}

type UpdateDealParams struct {
	Title       *string
	Description *string
	ExpiresAt   *time.Time
	MaxClaims   *int
}

func (p *UpdateDealParams) Empty() bool {
	return p.Title == nil && p.Description == nil && p.ExpiresAt == nil && p.MaxClaims == nil
}

type DealRepository interface {
	CreateDeal(deal *Deal) error
	GetDealByID(dealID int64) (*Deal, error)
	GetMerchantDeals(merchantID int64) ([]*Deal, error)
	GetActiveDealsNear(lat, lng float64, radiusMeters float64) ([]*Deal, error)
	UpdateDeal(dealID int64, params UpdateDealParams) error
	UpdateDealStatus(dealID int64, newStatus DealStatus) error
}
