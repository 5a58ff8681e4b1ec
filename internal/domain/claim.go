package domain

import "time"

// ClaimWindow is how long an issued claim code stays redeemable.
// It is fixed by product, not configurable per deal.
const ClaimWindow = 30 * time.Minute

// ClaimCodeLength is the length of the single-use redemption code.
const ClaimCodeLength = 6

// ClaimCodeAlphabet is the character set claim codes are drawn from.
// Codes are uppercased on both generation and redemption lookup.
const ClaimCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type Claim struct {
	ID         int64
	DealID     int64
	DeviceID   string
	ClaimCode  string
	ClaimedAt  time.Time
	ExpiresAt  time.Time
	RedeemedAt *time.Time

	// Denormalized deal/merchant info, populated by joined reads.
	DealTitle       string
	DealDescription string
	MerchantName    string
}

func (c *Claim) Redeemed() bool {
	return c.RedeemedAt != nil
}

// ClaimTx is the transactional scope a claim issuance runs in. The deal
// row is locked for the duration on backends that support row locks, so
// the capacity check and the increment are linearizable per deal.
type ClaimTx interface {
	GetDealForUpdate(dealID int64) (*Deal, error)
	GetClaim(dealID int64, deviceID string) (*Claim, error)
	InsertClaim(claim *Claim) error
	IncrementCurrentClaims(dealID int64) error
}

type ClaimRepository interface {
	Transaction(fn func(tx ClaimTx) error) error

	GetClaimByCode(code string) (*Claim, error)
	// RedeemClaim sets redeemed_at iff it is still NULL and reports
	// whether this call won the compare-and-set.
	RedeemClaim(code string, redeemedAt time.Time) (bool, error)
	GetActiveClaimsByDevice(deviceID string, now time.Time) ([]*Claim, error)

	GetDevicesNear(lat, lng float64, radiusMeters float64) ([]string, error)
	GetMerchantCustomerDevices(merchantID int64) ([]string, error)
}
