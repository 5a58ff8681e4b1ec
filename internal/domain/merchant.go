package domain

import "time"

type Merchant struct {
	ID           int64
	BusinessName string
	Address      string
	Phone        string
	Email        string
	Latitude     float64
	Longitude    float64
	CreatedAt    time.Time
}

type UpdateMerchantLocationParams struct {
	Latitude  float64
	Longitude float64
	Address   string
}

type MerchantRepository interface {
	CreateMerchant(merchant *Merchant) error
	GetMerchantByID(merchantID int64) (*Merchant, error)
	GetMerchantByEmail(email string) (*Merchant, error)
	UpdateMerchantLocation(merchantID int64, params UpdateMerchantLocationParams) error
}
