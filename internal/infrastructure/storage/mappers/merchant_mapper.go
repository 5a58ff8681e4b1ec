package mappers

import (
	"github.com/dangol-v2/deal-service/internal/domain"
	"github.com/dangol-v2/deal-service/internal/infrastructure/storage/models"
)

func ToGORMMerchant(merchant *domain.Merchant) *models.MerchantModel {
	return &models.MerchantModel{
		ID: merchant.ID,
		BusinessName: merchant.BusinessName,
		Address: merchant.Address,
		Phone: merchant.Phone,
		Email: merchant.Email,
		Latitude: merchant.Latitude,
		Longitude: merchant.Longitude,
		CreatedAt: merchant.CreatedAt,
	}
}

func ToDomainMerchant(model *models.MerchantModel) *domain.Merchant {
	return &domain.Merchant{
		ID: model.ID,
		BusinessName: model.BusinessName,
		Address: model.Address,
		Phone: model.Phone,
		Email: model.Email,
		Latitude: model.Latitude,
		Longitude: model.Longitude,
		CreatedAt: model.CreatedAt,
	}
}
