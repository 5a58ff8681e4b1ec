package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dangol-v2/deal-service/internal/domain"
	merchantdto "github.com/dangol-v2/deal-service/internal/usecase/dto/merchant"
)

type MerchantUsecase interface {
	CreateMerchant(input *merchantdto.CreateMerchantInput) (*merchantdto.MerchantOutput, error)
	GetMerchantByID(merchantID int64) (*merchantdto.MerchantOutput, error)
	UpdateMerchantLocation(input *merchantdto.UpdateMerchantLocationInput) (*merchantdto.MerchantOutput, error)
}

type DefaultMerchantUsecase struct {
	MerchantRepo domain.MerchantRepository
	ClaimRepo    domain.ClaimRepository
}

func NewDefaultMerchantUsecase(
	merchantRepo domain.MerchantRepository,
	claimRepo domain.ClaimRepository) *DefaultMerchantUsecase {

	return &DefaultMerchantUsecase{
		MerchantRepo: merchantRepo,
		ClaimRepo: claimRepo,
	}
}

func (uc *DefaultMerchantUsecase) CreateMerchant(input *merchantdto.CreateMerchantInput) (*merchantdto.MerchantOutput, error) {
	if strings.TrimSpace(input.BusinessName) == "" {
		return nil, fmt.Errorf("%w: business name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Address) == "" {
		return nil, fmt.Errorf("%w: address is required", domain.ErrValidation)
	}
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email != "" {
		_, err := uc.MerchantRepo.GetMerchantByEmail(email)
		if err == nil {
			return nil, fmt.Errorf("%w: email is already registered", domain.ErrValidation)
		}
		if !errors.Is(err, domain.ErrMerchantNotFound) {
			return nil, err
		}
	}

	merchant := &domain.Merchant{
		BusinessName: strings.TrimSpace(input.BusinessName),
		Address: strings.TrimSpace(input.Address),
		Phone: strings.TrimSpace(input.Phone),
		Email: email,
		Latitude: input.Latitude,
		Longitude: input.Longitude,
	}

	if err := uc.MerchantRepo.CreateMerchant(merchant); err != nil {
		return nil, err
	}
	return toMerchantOutput(merchant), nil
}

func (uc *DefaultMerchantUsecase) GetMerchantByID(merchantID int64) (*merchantdto.MerchantOutput, error) {
	merchant, err := uc.MerchantRepo.GetMerchantByID(merchantID)
	if err != nil {
		return nil, err
	}
	return toMerchantOutput(merchant), nil
}

// UpdateMerchantLocation moves the merchant pin. Refused once any claim
// has been issued against the merchant's deals: customers claimed at the
// old location and the issued codes reference it.
func (uc *DefaultMerchantUsecase) UpdateMerchantLocation(input *merchantdto.UpdateMerchantLocationInput) (*merchantdto.MerchantOutput, error) {
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	merchant, err := uc.MerchantRepo.GetMerchantByID(input.MerchantID)
	if err != nil {
		return nil, err
	}

	devices, err := uc.ClaimRepo.GetMerchantCustomerDevices(input.MerchantID)
	if err != nil {
		return nil, err
	}
	if len(devices) > 0 {
		return nil, fmt.Errorf("%w: location cannot change after claims have been issued", domain.ErrValidation)
	}

	params := domain.UpdateMerchantLocationParams{
		Latitude: input.Latitude,
		Longitude: input.Longitude,
		Address: strings.TrimSpace(input.Address),
	}
	if params.Address == "" {
		params.Address = merchant.Address
	}

	if err := uc.MerchantRepo.UpdateMerchantLocation(input.MerchantID, params); err != nil {
		return nil, err
	}
	return uc.GetMerchantByID(input.MerchantID)
}

func validateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude must be between -90 and 90", domain.ErrValidation)
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("%w: longitude must be between -180 and 180", domain.ErrValidation)
	}
	return nil
}

func toMerchantOutput(merchant *domain.Merchant) *merchantdto.MerchantOutput {
	return &merchantdto.MerchantOutput{
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
