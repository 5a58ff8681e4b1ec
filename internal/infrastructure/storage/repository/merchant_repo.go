package repository

import (
	"errors"

	"github.com/dangol-v2/deal-service/internal/domain"
	"github.com/dangol-v2/deal-service/internal/infrastructure/storage/mappers"
	"github.com/dangol-v2/deal-service/internal/infrastructure/storage/models"
	"gorm.io/gorm"
)

type DefaultMerchantRepository struct {
	DB *gorm.DB
}

func NewDefaultMerchantRepository(db *gorm.DB) *DefaultMerchantRepository {
	return &DefaultMerchantRepository{DB: db}
}

func (r *DefaultMerchantRepository) CreateMerchant(merchant *domain.Merchant) error {
	merchantModel := mappers.ToGORMMerchant(merchant)
	if err := r.DB.Create(merchantModel).Error; err != nil {
		return err
	}
	merchant.ID = merchantModel.ID
	merchant.CreatedAt = merchantModel.CreatedAt
	return nil
}

func (r *DefaultMerchantRepository) GetMerchantByID(merchantID int64) (*domain.Merchant, error) {
	var merchantModel models.MerchantModel
	if err := r.DB.First(&merchantModel, "id = ?", merchantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMerchantNotFound
		}
		return nil, err
	}
	return mappers.ToDomainMerchant(&merchantModel), nil
}

func (r *DefaultMerchantRepository) GetMerchantByEmail(email string) (*domain.Merchant, error) {
	var merchantModel models.MerchantModel
	if err := r.DB.First(&merchantModel, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMerchantNotFound
		}
		return nil, err
	}
	return mappers.ToDomainMerchant(&merchantModel), nil
}

func (r *DefaultMerchantRepository) UpdateMerchantLocation(merchantID int64, params domain.UpdateMerchantLocationParams) error {
	return r.DB.Model(&models.MerchantModel{}).Where("id = ?", merchantID).Updates(map[string]interface{}{
		"latitude": params.Latitude,
		"longitude": params.Longitude,
		"address": params.Address,
	}).Error
}
