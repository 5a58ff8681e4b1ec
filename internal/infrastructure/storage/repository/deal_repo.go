package repository

import (
	"errors"

	"github.com/dangol-v2/deal-service/internal/domain"
	"github.com/dangol-v2/deal-service/internal/expiry"
	"github.com/dangol-v2/deal-service/internal/geo"
	"github.com/dangol-v2/deal-service/internal/infrastructure/storage/mappers"
	"github.com/dangol-v2/deal-service/internal/infrastructure/storage/models"
	"gorm.io/gorm"
)

type DefaultDealRepository struct {
	DB *gorm.DB
}

func NewDefaultDealRepository(db *gorm.DB) *DefaultDealRepository {
	return &DefaultDealRepository{DB: db}
}

// CreateDeal persists the deal with expires_at in the wall-clock frame
// the expiry resolver reads for the row's ID. The ID decides the frame
// and is only assigned by the insert, so the conversion is re-checked
// inside the transaction once the ID is known.
func (r *DefaultDealRepository) CreateDeal(deal *domain.Deal) error {
	dealModel := mappers.ToGORMDeal(deal)
	dealModel.ExpiresAt = expiry.StorageClock(deal.ID, deal.ExpiresAt)

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Merchant").Create(dealModel).Error; err != nil {
			return err
		}
		stored := expiry.StorageClock(dealModel.ID, deal.ExpiresAt)
		if stored.Equal(dealModel.ExpiresAt) {
			return nil
		}
		if err := tx.Model(&models.DealModel{}).
			Where("id = ?", dealModel.ID).
			Update("expires_at", stored).Error; err != nil {
			return err
		}
		dealModel.ExpiresAt = stored
		return nil
	})
	if err != nil {
		return err
	}

	deal.ID = dealModel.ID
	deal.CreatedAt = dealModel.CreatedAt
	deal.ExpiresAt = dealModel.ExpiresAt
	return nil
}

func (r *DefaultDealRepository) GetDealByID(dealID int64) (*domain.Deal, error) {
	var dealModel models.DealModel
	if err := r.DB.Preload("Merchant").First(&dealModel, "id = ?", dealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDealNotFound
		}
		return nil, err
	}
	return mappers.ToDomainDeal(&dealModel), nil
}

func (r *DefaultDealRepository) GetMerchantDeals(merchantID int64) ([]*domain.Deal, error) {
	var dealModels []models.DealModel
	err := r.DB.Preload("Merchant").
		Where("merchant_id = ?", merchantID).
		Order("created_at DESC").
		Find(&dealModels).Error
	if err != nil {
		return nil, err
	}

	deals := make([]*domain.Deal, len(dealModels))
	for i := range dealModels {
		deals[i] = mappers.ToDomainDeal(&dealModels[i])
	}
	return deals, nil
}

// GetActiveDealsNear joins deals against merchant locations inside the
// bounding box and keeps only deals with remaining capacity. Expiry is
// re-checked by the caller through the resolver; the DB cannot apply the
// dual-epoch interpretation.
func (r *DefaultDealRepository) GetActiveDealsNear(lat, lng float64, radiusMeters float64) ([]*domain.Deal, error) {
	box := geo.NewBoundingBox(lat, lng, radiusMeters)

	var dealModels []models.DealModel
	err := r.DB.Preload("Merchant").
		Joins("JOIN merchant_models ON merchant_models.id = deal_models.merchant_id").
		Where("deal_models.current_claims < deal_models.max_claims").
		Where("merchant_models.latitude BETWEEN ? AND ?", box.MinLat, box.MaxLat).
		Where("merchant_models.longitude BETWEEN ? AND ?", box.MinLng, box.MaxLng).
		Find(&dealModels).Error
	if err != nil {
		return nil, err
	}

	deals := make([]*domain.Deal, len(dealModels))
	for i := range dealModels {
		deals[i] = mappers.ToDomainDeal(&dealModels[i])
	}
	return deals, nil
}

func (r *DefaultDealRepository) UpdateDeal(dealID int64, params domain.UpdateDealParams) error {
	updates := map[string]interface{}{}
	if params.Title != nil {
		updates["title"] = *params.Title
	}
	if params.Description != nil {
		updates["description"] = *params.Description
	}
	if params.ExpiresAt != nil {
		updates["expires_at"] = expiry.StorageClock(dealID, *params.ExpiresAt)
	}
	if params.MaxClaims != nil {
		updates["max_claims"] = *params.MaxClaims
	}
	if len(updates) == 0 {
		return nil
	}
	return r.DB.Model(&models.DealModel{}).Where("id = ?", dealID).Updates(updates).Error
}

func (r *DefaultDealRepository) UpdateDealStatus(dealID int64, newStatus domain.DealStatus) error {
	return r.DB.Model(&models.DealModel{}).Where("id = ?", dealID).Update("status", newStatus).Error
}
