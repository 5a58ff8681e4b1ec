package usecase

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dangol-v2/deal-service/internal/domain"
	"github.com/dangol-v2/deal-service/internal/expiry"
	publisher "github.com/dangol-v2/deal-service/internal/infrastructure/kafka"
	"github.com/dangol-v2/deal-service/internal/infrastructure/metrics"
	"github.com/dangol-v2/deal-service/internal/infrastructure/push"
	notificationdto "github.com/dangol-v2/deal-service/internal/usecase/dto/notification"
)

// AutoNotifyRadiusMeters bounds who hears about a freshly created deal.
const AutoNotifyRadiusMeters = 1000

type NotificationUsecase interface {
	SendNotification(input *notificationdto.SendNotificationInput) (*notificationdto.SendNotificationOutput, error)
	NotifyDealCreated(event publisher.DealCreatedEvent) error
}

type DefaultNotificationUsecase struct {
	NotificationRepo domain.NotificationRepository
	SubscriptionRepo domain.SubscriptionRepository
	ClaimRepo        domain.ClaimRepository
	MerchantRepo     domain.MerchantRepository
	Resolver         *expiry.Resolver
	Sender           push.Sender
	Metrics          *metrics.DealMetrics
}

func NewDefaultNotificationUsecase(
	notificationRepo domain.NotificationRepository,
	subscriptionRepo domain.SubscriptionRepository,
	claimRepo domain.ClaimRepository,
	merchantRepo domain.MerchantRepository,
	resolver *expiry.Resolver,
	sender push.Sender,
	dealMetrics *metrics.DealMetrics) *DefaultNotificationUsecase {

	return &DefaultNotificationUsecase{
		NotificationRepo: notificationRepo,
		SubscriptionRepo: subscriptionRepo,
		ClaimRepo: claimRepo,
		MerchantRepo: merchantRepo,
		Resolver: resolver,
		Sender: sender,
		Metrics: dealMetrics,
	}
}

// SendNotification is the operator path: resolve the target rule to
// devices, persist the batch with per-device delivery records, dispatch.
func (uc *DefaultNotificationUsecase) SendNotification(input *notificationdto.SendNotificationInput) (*notificationdto.SendNotificationOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Body) == "" {
		return nil, fmt.Errorf("%w: body is required", domain.ErrValidation)
	}

	target, err := parseTarget(input)
	if err != nil {
		return nil, err
	}

	notification := &domain.Notification{
		Title: strings.TrimSpace(input.Title),
		Body: strings.TrimSpace(input.Body),
		Icon: input.Icon,
		Badge: input.Badge,
		Data: input.Data,
		Target: target,
		CreatedBy: input.CreatedBy,
		Status: domain.NotificationPending,
	}

	return uc.dispatch(notification)
}

// NotifyDealCreated is the auto-notification pipeline entry, fed by the
// deal-events consumer. Outside business hours the event is dropped, not
// deferred; there is no catch-up queue.
func (uc *DefaultNotificationUsecase) NotifyDealCreated(event publisher.DealCreatedEvent) error {
	if !uc.Resolver.WithinBusinessHours() {
		uc.Metrics.NotificationsSkippedTotal.Inc()
		slog.Info("skipping auto-notification outside business hours", "deal_id", event.DealID)
		return nil
	}

	merchant, err := uc.MerchantRepo.GetMerchantByID(event.MerchantID)
	if err != nil {
		return err
	}

	data, err := json.Marshal(map[string]interface{}{
		"deal_id": event.DealID,
		"merchant_id": event.MerchantID,
	})
	if err != nil {
		return err
	}

	notification := &domain.Notification{
		Title: fmt.Sprintf("%s의 새로운 혜택", event.MerchantName),
		Body: event.DealTitle,
		Data: string(data),
		Target: domain.NotificationTarget{
			Type: domain.TargetRadius,
			RadiusLat: merchant.Latitude,
			RadiusLng: merchant.Longitude,
			RadiusMeters: AutoNotifyRadiusMeters,
		},
		CreatedBy: "system_auto",
		Status: domain.NotificationPending,
	}

	_, err = uc.dispatch(notification)
	return err
}

func parseTarget(input *notificationdto.SendNotificationInput) (domain.NotificationTarget, error) {
	switch domain.NotificationTargetType(input.TargetType) {
	case domain.TargetAll:
		return domain.NotificationTarget{Type: domain.TargetAll}, nil
	case domain.TargetDevice:
		if strings.TrimSpace(input.DeviceID) == "" {
			return domain.NotificationTarget{}, fmt.Errorf("%w: device target needs a device id", domain.ErrValidation)
		}
		return domain.NotificationTarget{Type: domain.TargetDevice, DeviceID: strings.TrimSpace(input.DeviceID)}, nil
	case domain.TargetMerchantCustomers:
		if input.MerchantID == 0 {
			return domain.NotificationTarget{}, fmt.Errorf("%w: merchant_customers target needs a merchant id", domain.ErrValidation)
		}
		return domain.NotificationTarget{Type: domain.TargetMerchantCustomers, MerchantID: input.MerchantID}, nil
	case domain.TargetRadius:
		if input.RadiusMeters <= 0 {
			return domain.NotificationTarget{}, fmt.Errorf("%w: radius target needs a positive radius", domain.ErrValidation)
		}
		if err := validateCoordinates(input.RadiusLat, input.RadiusLng); err != nil {
			return domain.NotificationTarget{}, err
		}
		return domain.NotificationTarget{
			Type: domain.TargetRadius,
			RadiusLat: input.RadiusLat,
			RadiusLng: input.RadiusLng,
			RadiusMeters: input.RadiusMeters,
		}, nil
	default:
		return domain.NotificationTarget{}, fmt.Errorf("%w: unknown target type %q", domain.ErrValidation, input.TargetType)
	}
}

// resolveTargets turns a targeting rule into the concrete subscriptions to
// deliver to. Devices matched by radius or merchant history without a live
// subscription are silently dropped.
func (uc *DefaultNotificationUsecase) resolveTargets(target domain.NotificationTarget) ([]*domain.PushSubscription, error) {
	switch target.Type {
	case domain.TargetAll:
		return uc.SubscriptionRepo.GetActivePushSubscriptions()

	case domain.TargetDevice:
		sub, err := uc.SubscriptionRepo.GetPushSubscription(target.DeviceID)
		if err != nil {
			return nil, err
		}
		return []*domain.PushSubscription{sub}, nil

	case domain.TargetRadius:
		devices, err := uc.ClaimRepo.GetDevicesNear(target.RadiusLat, target.RadiusLng, target.RadiusMeters)
		if err != nil {
			return nil, err
		}
		return uc.subscriptionsFor(devices)

	case domain.TargetMerchantCustomers:
		devices, err := uc.ClaimRepo.GetMerchantCustomerDevices(target.MerchantID)
		if err != nil {
			return nil, err
		}
		return uc.subscriptionsFor(devices)

	default:
		return nil, fmt.Errorf("%w: unknown target type %q", domain.ErrValidation, target.Type)
	}
}

func (uc *DefaultNotificationUsecase) subscriptionsFor(deviceIDs []string) ([]*domain.PushSubscription, error) {
	subs := make([]*domain.PushSubscription, 0, len(deviceIDs))
	for _, deviceID := range deviceIDs {
		sub, err := uc.SubscriptionRepo.GetPushSubscription(deviceID)
		if err != nil {
			continue
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

func (uc *DefaultNotificationUsecase) dispatch(notification *domain.Notification) (*notificationdto.SendNotificationOutput, error) {
	subs, err := uc.resolveTargets(notification.Target)
	if err != nil {
		return nil, err
	}

	notification.TotalRecipients = len(subs)
	if err := uc.NotificationRepo.CreateNotification(notification); err != nil {
		return nil, err
	}

	if err := uc.NotificationRepo.UpdateNotificationStatus(notification.ID, domain.NotificationSending, nil); err != nil {
		return nil, err
	}

	payload := push.Payload{
		Title: notification.Title,
		Body: notification.Body,
		Icon: notification.Icon,
		Badge: notification.Badge,
	}
	if notification.Data != "" {
		var data map[string]interface{}
		if err := json.Unmarshal([]byte(notification.Data), &data); err == nil {
			payload.Data = data
		}
	}

	delivered := 0
	for _, sub := range subs {
		delivery := &domain.NotificationDelivery{
			NotificationID: notification.ID,
			DeviceID: sub.DeviceID,
			Endpoint: sub.Endpoint,
			Status: domain.DeliverySent,
		}
		if err := uc.NotificationRepo.CreateDelivery(delivery); err != nil {
			slog.Error("failed to record delivery", "device_id", sub.DeviceID, "error", err.Error())
			continue
		}

		if err := uc.Sender.Send(sub, payload); err != nil {
			slog.Warn("push delivery failed", "device_id", sub.DeviceID, "error", err.Error())
			uc.Metrics.DeliveriesTotal.WithLabelValues(string(domain.DeliveryFailed)).Inc()
			if err := uc.NotificationRepo.UpdateDeliveryStatus(delivery.ID, domain.DeliveryFailed, err.Error()); err != nil {
				slog.Error("failed to update delivery status", "delivery_id", delivery.ID, "error", err.Error())
			}
			continue
		}

		delivered++
		uc.Metrics.DeliveriesTotal.WithLabelValues(string(domain.DeliveryDelivered)).Inc()
		if err := uc.NotificationRepo.UpdateDeliveryStatus(delivery.ID, domain.DeliveryDelivered, ""); err != nil {
			slog.Error("failed to update delivery status", "delivery_id", delivery.ID, "error", err.Error())
		}
	}

	status := domain.NotificationSent
	if delivered == 0 && len(subs) > 0 {
		status = domain.NotificationFailed
	}
	counters := &domain.NotificationCounters{
		TotalRecipients: len(subs),
		TotalDelivered: delivered,
	}
	if err := uc.NotificationRepo.UpdateNotificationStatus(notification.ID, status, counters); err != nil {
		return nil, err
	}

	uc.Metrics.NotificationsSentTotal.Inc()

	return &notificationdto.SendNotificationOutput{
		NotificationID: notification.ID,
		TotalRecipients: len(subs),
		TotalDelivered: delivered,
	}, nil
}
