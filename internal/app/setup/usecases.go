package setup

import (
	"github.com/dangol-v2/deal-service/internal/usecase"
)

type UseCases struct {
	MerchantUsecase     usecase.MerchantUsecase
	DealUsecase         usecase.DealUsecase
	ClaimUsecase        usecase.ClaimUsecase
	SubscriptionUsecase usecase.SubscriptionUsecase
	NotificationUsecase usecase.NotificationUsecase
}

func InitializeUseCases(deps *Dependencies) *UseCases {
	merchantUsecase := usecase.NewDefaultMerchantUsecase(
		deps.Repositories.MerchantRepo,
		deps.Repositories.ClaimRepo,
	)

	dealUsecase := usecase.NewDefaultDealUsecase(
		deps.Repositories.DealRepo,
		deps.Repositories.MerchantRepo,
		deps.Resolver,
		deps.Publisher,
		deps.Metrics,
	)

	claimUsecase := usecase.NewDefaultClaimUsecase(
		deps.Repositories.ClaimRepo,
		deps.Resolver,
		deps.Metrics,
		deps.EventLogger,
	)

	subscriptionUsecase := usecase.NewDefaultSubscriptionUsecase(
		deps.Repositories.SubscriptionRepo,
	)

	notificationUsecase := usecase.NewDefaultNotificationUsecase(
		deps.Repositories.NotificationRepo,
		deps.Repositories.SubscriptionRepo,
		deps.Repositories.ClaimRepo,
		deps.Repositories.MerchantRepo,
		deps.Resolver,
		deps.PushSender,
		deps.Metrics,
	)

	return &UseCases{
		MerchantUsecase:     merchantUsecase,
		DealUsecase:         dealUsecase,
		ClaimUsecase:        claimUsecase,
		SubscriptionUsecase: subscriptionUsecase,
		NotificationUsecase: notificationUsecase,
	}
}
