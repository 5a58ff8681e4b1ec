package repository

import (
	"errors"
	"time"

	"github.com/dangol-v2/deal-service/internal/domain"
	"github.com/dangol-v2/deal-service/internal/geo"
	"github.com/dangol-v2/deal-service/internal/infrastructure/storage/mappers"
	"github.com/dangol-v2/deal-service/internal/infrastructure/storage/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultClaimRepository struct {
	DB *gorm.DB
}

func NewDefaultClaimRepository(db *gorm.DB) *DefaultClaimRepository {
	return &DefaultClaimRepository{DB: db}
}

// claimTx carries one gorm transaction through a claim issuance.
type claimTx struct {
	tx *gorm.DB
}

func (r *DefaultClaimRepository) Transaction(fn func(tx domain.ClaimTx) error) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return fn(&claimTx{tx: tx})
	})
}

// GetDealForUpdate reads the deal row locked against concurrent claim
// attempts. SQLite serializes writers at the connection level, so the
// explicit row lock is posted only on postgres.
func (t *claimTx) GetDealForUpdate(dealID int64) (*domain.Deal, error) {
	q := t.tx
	if t.tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "deal_models"}})
	}

	var dealModel models.DealModel
	if err := q.First(&dealModel, "id = ?", dealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDealNotFound
		}
		return nil, err
	}
	return mappers.ToDomainDeal(&dealModel), nil
}

func (t *claimTx) GetClaim(dealID int64, deviceID string) (*domain.Claim, error) {
	var claimModel models.ClaimModel
	err := t.tx.First(&claimModel, "deal_id = ? AND device_id = ?", dealID, deviceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClaimNotFound
		}
		return nil, err
	}
	return mappers.ToDomainClaim(&claimModel), nil
}

// InsertClaim maps a unique violation to ErrClaimCodeCollision: the
// (deal, device) pair was already checked under the deal row lock, so
// the only constraint left to trip is the code index.
func (t *claimTx) InsertClaim(claim *domain.Claim) error {
	claimModel := mappers.ToGORMClaim(claim)
	if err := t.tx.Omit("Deal").Create(claimModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrClaimCodeCollision
		}
		return err
	}
	claim.ID = claimModel.ID
	return nil
}

func (t *claimTx) IncrementCurrentClaims(dealID int64) error {
	return t.tx.Model(&models.DealModel{}).
		Where("id = ?", dealID).
		Update("current_claims", gorm.Expr("current_claims + 1")).Error
}

func (r *DefaultClaimRepository) GetClaimByCode(code string) (*domain.Claim, error) {
	var claimModel models.ClaimModel
	err := r.DB.Preload("Deal").Preload("Deal.Merchant").
		First(&claimModel, "claim_code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClaimNotFound
		}
		return nil, err
	}
	return mappers.ToDomainClaim(&claimModel), nil
}

// RedeemClaim is a single-statement compare-and-set: of two concurrent
// redemption attempts on the same code exactly one observes a row change.
func (r *DefaultClaimRepository) RedeemClaim(code string, redeemedAt time.Time) (bool, error) {
	res := r.DB.Model(&models.ClaimModel{}).
		Where("claim_code = ? AND redeemed_at IS NULL", code).
		Update("redeemed_at", redeemedAt)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *DefaultClaimRepository) GetActiveClaimsByDevice(deviceID string, now time.Time) ([]*domain.Claim, error) {
	var claimModels []models.ClaimModel
	err := r.DB.Preload("Deal").Preload("Deal.Merchant").
		Where("device_id = ? AND expires_at > ? AND redeemed_at IS NULL", deviceID, now).
		Order("claimed_at DESC").
		Find(&claimModels).Error
	if err != nil {
		return nil, err
	}

	claims := make([]*domain.Claim, len(claimModels))
	for i := range claimModels {
		claims[i] = mappers.ToDomainClaim(&claimModels[i])
	}
	return claims, nil
}

func (r *DefaultClaimRepository) GetDevicesNear(lat, lng float64, radiusMeters float64) ([]string, error) {
	box := geo.NewBoundingBox(lat, lng, radiusMeters)

	var deviceIDs []string
	err := r.DB.Model(&models.ClaimModel{}).
		Distinct("claim_models.device_id").
		Joins("JOIN deal_models ON deal_models.id = claim_models.deal_id").
		Joins("JOIN merchant_models ON merchant_models.id = deal_models.merchant_id").
		Where("merchant_models.latitude BETWEEN ? AND ?", box.MinLat, box.MaxLat).
		Where("merchant_models.longitude BETWEEN ? AND ?", box.MinLng, box.MaxLng).
		Pluck("claim_models.device_id", &deviceIDs).Error
	if err != nil {
		return nil, err
	}
	return deviceIDs, nil
}

func (r *DefaultClaimRepository) GetMerchantCustomerDevices(merchantID int64) ([]string, error) {
	var deviceIDs []string
	err := r.DB.Model(&models.ClaimModel{}).
		Distinct("claim_models.device_id").
		Joins("JOIN deal_models ON deal_models.id = claim_models.deal_id").
		Where("deal_models.merchant_id = ?", merchantID).
		Pluck("claim_models.device_id", &deviceIDs).Error
	if err != nil {
		return nil, err
	}
	return deviceIDs, nil
}
