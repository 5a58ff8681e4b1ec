package mappers

import (
	"github.com/dangol-v2/deal-service/internal/domain"
	"github.com/dangol-v2/deal-service/internal/infrastructure/storage/models"
)

func ToGORMDeal(deal *domain.Deal) *models.DealModel {
	return &models.DealModel{
		ID: deal.ID,
		MerchantID: deal.MerchantID,
		Title: deal.Title,
		Description: deal.Description,
		StartsAt: deal.StartsAt,
		ExpiresAt: deal.ExpiresAt,
		MaxClaims: deal.MaxClaims,
		CurrentClaims: deal.CurrentClaims,
		Status: deal.Status,
		CreatedAt: deal.CreatedAt,
	}
}

func ToDomainDeal(model *models.DealModel) *domain.Deal {
	return &domain.Deal{
		ID: model.ID,
		MerchantID: model.MerchantID,
		Title: model.Title,
		Description: model.Description,
		StartsAt: model.StartsAt,
		ExpiresAt: model.ExpiresAt,
		MaxClaims: model.MaxClaims,
		CurrentClaims: model.CurrentClaims,
		Status: model.Status,
		CreatedAt: model.CreatedAt,
		MerchantName: model.Merchant.BusinessName,
		MerchantAddress: model.Merchant.Address,
		Latitude: model.Merchant.Latitude,
		Longitude: model.Merchant.Longitude,
	}
}
