package mappers

import (
	"github.com/dangol-v2/deal-service/internal/domain"
	"github.com/dangol-v2/deal-service/internal/infrastructure/storage/models"
)

func ToGORMClaim(claim *domain.Claim) *models.ClaimModel {
	return &models.ClaimModel{
		ID: claim.ID,
		DealID: claim.DealID,
		DeviceID: claim.DeviceID,
		ClaimCode: claim.ClaimCode,
		ClaimedAt: claim.ClaimedAt,
		ExpiresAt: claim.ExpiresAt,
		RedeemedAt: claim.RedeemedAt,
	}
}

func ToDomainClaim(model *models.ClaimModel) *domain.Claim {
	return &domain.Claim{
		ID: model.ID,
		DealID: model.DealID,
		DeviceID: model.DeviceID,
		ClaimCode: model.ClaimCode,
		ClaimedAt: model.ClaimedAt,
		ExpiresAt: model.ExpiresAt,
		RedeemedAt: model.RedeemedAt,
		DealTitle: model.Deal.Title,
		DealDescription: model.Deal.Description,
		MerchantName: model.Deal.Merchant.BusinessName,
	}
}
