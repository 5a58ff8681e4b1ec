package usecase

import (
	"fmt"
	"strings"

	"github.com/dangol-v2/deal-service/internal/domain"
	subscriptiondto "github.com/dangol-v2/deal-service/internal/usecase/dto/subscription"
)

type SubscriptionUsecase interface {
	SaveSubscription(input *subscriptiondto.SaveSubscriptionInput) error
	DeleteSubscription(input *subscriptiondto.DeleteSubscriptionInput) error
}

type DefaultSubscriptionUsecase struct {
	SubscriptionRepo domain.SubscriptionRepository
}

func NewDefaultSubscriptionUsecase(subscriptionRepo domain.SubscriptionRepository) *DefaultSubscriptionUsecase {
	return &DefaultSubscriptionUsecase{SubscriptionRepo: subscriptionRepo}
}

func (uc *DefaultSubscriptionUsecase) SaveSubscription(input *subscriptiondto.SaveSubscriptionInput) error {
	if strings.TrimSpace(input.DeviceID) == "" {
		return fmt.Errorf("%w: device id is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Endpoint) == "" {
		return fmt.Errorf("%w: endpoint is required", domain.ErrValidation)
	}

	return uc.SubscriptionRepo.SavePushSubscription(&domain.PushSubscription{
		DeviceID: strings.TrimSpace(input.DeviceID),
		Endpoint: strings.TrimSpace(input.Endpoint),
		P256dhKey: input.P256dhKey,
		AuthKey: input.AuthKey,
		UserAgent: input.UserAgent,
	})
}

func (uc *DefaultSubscriptionUsecase) DeleteSubscription(input *subscriptiondto.DeleteSubscriptionInput) error {
	if strings.TrimSpace(input.DeviceID) == "" {
		return fmt.Errorf("%w: device id is required", domain.ErrValidation)
	}
	return uc.SubscriptionRepo.DeletePushSubscription(strings.TrimSpace(input.DeviceID))
}
