package usecase

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/dangol-v2/deal-service/internal/domain"
	"github.com/dangol-v2/deal-service/internal/expiry"
	publisher "github.com/dangol-v2/deal-service/internal/infrastructure/kafka"
	"github.com/dangol-v2/deal-service/internal/infrastructure/metrics"
	dealdto "github.com/dangol-v2/deal-service/internal/usecase/dto/deal"
	"github.com/google/uuid"
)

// DefaultDiscoveryRadiusMeters applies when a nearby-deals query gives no
// radius. The UI presets are 200/500/1000 but any positive value is taken.
const DefaultDiscoveryRadiusMeters = 200

type DealUsecase interface {
	CreateDeal(input *dealdto.CreateDealInput) (*dealdto.DealOutput, error)
	UpdateDeal(input *dealdto.UpdateDealInput) (*dealdto.DealOutput, error)
	ConfirmDeal(input *dealdto.ConfirmDealInput) (*dealdto.DealOutput, error)

	GetDealByID(dealID int64) (*dealdto.DealOutput, error)
	GetMerchantDeals(merchantID int64) ([]*dealdto.DealOutput, error)
	GetDealsNear(input *dealdto.GetDealsNearInput) ([]*dealdto.DealOutput, error)
}

type DefaultDealUsecase struct {
	DealRepo     domain.DealRepository
	MerchantRepo domain.MerchantRepository
	Resolver     *expiry.Resolver
	Publisher    domain.PublisherPort
	Metrics      *metrics.DealMetrics
}

func NewDefaultDealUsecase(
	dealRepo domain.DealRepository,
	merchantRepo domain.MerchantRepository,
	resolver *expiry.Resolver,
	kafkaPublisher domain.PublisherPort,
	dealMetrics *metrics.DealMetrics) *DefaultDealUsecase {

	return &DefaultDealUsecase{
		DealRepo: dealRepo,
		MerchantRepo: merchantRepo,
		Resolver: resolver,
		Publisher: kafkaPublisher,
		Metrics: dealMetrics,
	}
}

func (uc *DefaultDealUsecase) CreateDeal(input *dealdto.CreateDealInput) (*dealdto.DealOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if input.MaxClaims < 1 {
		return nil, fmt.Errorf("%w: max claims must be at least 1", domain.ErrValidation)
	}

	merchant, err := uc.MerchantRepo.GetMerchantByID(input.MerchantID)
	if err != nil {
		return nil, err
	}

	now := uc.Resolver.Now()
	startsAt, expiresAt, err := resolveValidityWindow(input, now)
	if err != nil {
		return nil, err
	}

	deal := &domain.Deal{
		MerchantID: input.MerchantID,
		Title: strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		StartsAt: startsAt,
		ExpiresAt: expiresAt,
		MaxClaims: input.MaxClaims,
		Status: domain.DealStatusDraft,
	}

	if err := uc.DealRepo.CreateDeal(deal); err != nil {
		return nil, err
	}

	uc.Metrics.DealsCreatedTotal.WithLabelValues(strconv.FormatInt(deal.MerchantID, 10)).Inc()

	// Hand the auto-notification to the async pipeline. The deal is
	// already committed; a publish failure is logged, never propagated.
	go func(event publisher.DealCreatedEvent) {
		v, err := json.Marshal(event)
		if err != nil {
			slog.Error("failed to marshal deal event", "error", err.Error())
			return
		}
		key := []byte(strconv.FormatInt(event.MerchantID, 10))
		if err := uc.Publisher.Publish(publisher.DealEventsTopic, domain.Message{Key: key, Value: v}); err != nil {
			slog.Error("failed to publish deal created event", "deal_id", event.DealID, "error", err.Error())
		}
	}(publisher.DealCreatedEvent{
		EventID: uuid.New().String(),
		DealID: deal.ID,
		MerchantID: merchant.ID,
		MerchantName: merchant.BusinessName,
		DealTitle: deal.Title,
		Address: merchant.Address,
		CreatedAt: now,
	})

	return uc.GetDealByID(deal.ID)
}

// resolveValidityWindow accepts either an absolute (starts_at, expires_at)
// pair or the legacy (hours, minutes) duration anchored to now. Only an
// absolute expiry is ever persisted.
func resolveValidityWindow(input *dealdto.CreateDealInput, now time.Time) (*time.Time, time.Time, error) {
	if input.HasAbsoluteWindow() {
		expiresAt := *input.ExpiresAt
		if !expiresAt.After(now) {
			return nil, time.Time{}, fmt.Errorf("%w: expiry must be in the future", domain.ErrValidation)
		}
		if input.StartsAt != nil && !expiresAt.After(*input.StartsAt) {
			return nil, time.Time{}, fmt.Errorf("%w: expiry must be after start", domain.ErrValidation)
		}
		return input.StartsAt, expiresAt, nil
	}

	if input.Hours < 0 || input.Hours > 23 {
		return nil, time.Time{}, fmt.Errorf("%w: hours must be between 0 and 23", domain.ErrValidation)
	}
	if input.Minutes < 0 || input.Minutes > 59 {
		return nil, time.Time{}, fmt.Errorf("%w: minutes must be between 0 and 59", domain.ErrValidation)
	}
	if input.Hours == 0 && input.Minutes == 0 {
		return nil, time.Time{}, fmt.Errorf("%w: validity duration must be nonzero", domain.ErrValidation)
	}

	duration := time.Duration(input.Hours)*time.Hour + time.Duration(input.Minutes)*time.Minute
	return nil, now.Add(duration), nil
}

func (uc *DefaultDealUsecase) UpdateDeal(input *dealdto.UpdateDealInput) (*dealdto.DealOutput, error) {
	deal, err := uc.DealRepo.GetDealByID(input.DealID)
	if err != nil {
		return nil, err
	}
	if deal.MerchantID != input.MerchantID {
		return nil, domain.ErrUnauthorized
	}

	params := domain.UpdateDealParams{}

	if input.MaxClaims != nil {
		maxClaims := *input.MaxClaims
		if maxClaims < 0 {
			return nil, fmt.Errorf("%w: max claims must not be negative", domain.ErrValidation)
		}
		// 0 is the cancellation sentinel and always passes; any other
		// value must cover the claims already issued.
		if maxClaims > 0 && maxClaims < deal.CurrentClaims {
			return nil, fmt.Errorf("%w: max claims must not be below current claims (%d)", domain.ErrValidation, deal.CurrentClaims)
		}
		params.MaxClaims = input.MaxClaims
	}

	if deal.Status == domain.DealStatusConfirmed {
		if input.Title != nil || input.Description != nil || input.ExpiresAt != nil {
			return nil, fmt.Errorf("%w: a confirmed deal only allows quantity changes", domain.ErrValidation)
		}
		if input.MaxClaims == nil {
			return nil, fmt.Errorf("%w: nothing to update", domain.ErrValidation)
		}
	} else {
		if input.Title != nil {
			title := strings.TrimSpace(*input.Title)
			if title == "" {
				return nil, fmt.Errorf("%w: title must not be blank", domain.ErrValidation)
			}
			params.Title = &title
		}
		if input.Description != nil {
			description := strings.TrimSpace(*input.Description)
			if description == "" {
				return nil, fmt.Errorf("%w: description must not be blank", domain.ErrValidation)
			}
			params.Description = &description
		}
		if input.ExpiresAt != nil {
			if !input.ExpiresAt.After(uc.Resolver.Now()) {
				return nil, fmt.Errorf("%w: expiry must be in the future", domain.ErrValidation)
			}
			params.ExpiresAt = input.ExpiresAt
		}
	}

	if params.Empty() {
		return nil, fmt.Errorf("%w: nothing to update", domain.ErrValidation)
	}

	if err := uc.DealRepo.UpdateDeal(input.DealID, params); err != nil {
		return nil, err
	}

	return uc.GetDealByID(input.DealID)
}

func (uc *DefaultDealUsecase) ConfirmDeal(input *dealdto.ConfirmDealInput) (*dealdto.DealOutput, error) {
	deal, err := uc.DealRepo.GetDealByID(input.DealID)
	if err != nil {
		return nil, err
	}
	if deal.MerchantID != input.MerchantID {
		return nil, domain.ErrUnauthorized
	}
	if deal.Status != domain.DealStatusDraft {
		return nil, fmt.Errorf("%w: deal is already %s, only draft deals can be confirmed", domain.ErrValidation, deal.Status)
	}

	if err := uc.DealRepo.UpdateDealStatus(input.DealID, domain.DealStatusConfirmed); err != nil {
		return nil, err
	}

	uc.Metrics.DealsConfirmedTotal.Inc()

	return uc.GetDealByID(input.DealID)
}

func (uc *DefaultDealUsecase) GetDealByID(dealID int64) (*dealdto.DealOutput, error) {
	deal, err := uc.DealRepo.GetDealByID(dealID)
	if err != nil {
		return nil, err
	}
	return toDealOutput(deal), nil
}

func (uc *DefaultDealUsecase) GetMerchantDeals(merchantID int64) ([]*dealdto.DealOutput, error) {
	deals, err := uc.DealRepo.GetMerchantDeals(merchantID)
	if err != nil {
		return nil, err
	}

	dealsOutput := make([]*dealdto.DealOutput, len(deals))
	for i, deal := range deals {
		dealsOutput[i] = toDealOutput(deal)
	}
	return dealsOutput, nil
}

// GetDealsNear runs the bounding-box query and re-applies the expiry
// resolver: the box and capacity filters live in SQL, the dual-epoch
// expiry interpretation does not.
func (uc *DefaultDealUsecase) GetDealsNear(input *dealdto.GetDealsNearInput) ([]*dealdto.DealOutput, error) {
	radius := input.RadiusMeters
	if radius == 0 {
		radius = DefaultDiscoveryRadiusMeters
	}
	if radius < 0 {
		return nil, fmt.Errorf("%w: radius must be positive", domain.ErrValidation)
	}

	deals, err := uc.DealRepo.GetActiveDealsNear(input.Latitude, input.Longitude, radius)
	if err != nil {
		return nil, err
	}

	dealsOutput := make([]*dealdto.DealOutput, 0, len(deals))
	for _, deal := range deals {
		if uc.Resolver.DealExpired(deal) {
			continue
		}
		dealsOutput = append(dealsOutput, toDealOutput(deal))
	}
	return dealsOutput, nil
}

// toDealOutput reports the expiry as an absolute instant; the stored
// wall-clock frame never leaves the service.
func toDealOutput(deal *domain.Deal) *dealdto.DealOutput {
	return &dealdto.DealOutput{
		ID: deal.ID,
		MerchantID: deal.MerchantID,
		Title: deal.Title,
		Description: deal.Description,
		StartsAt: deal.StartsAt,
		ExpiresAt: expiry.DealExpiry(deal),
		MaxClaims: deal.MaxClaims,
		CurrentClaims: deal.CurrentClaims,
		Status: string(deal.Status),
		CreatedAt: deal.CreatedAt,
		MerchantName: deal.MerchantName,
		MerchantAddress: deal.MerchantAddress,
		Latitude: deal.Latitude,
		Longitude: deal.Longitude,
	}
}
