package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/dangol-v2/deal-service/internal/domain"
	"github.com/dangol-v2/deal-service/internal/expiry"
	"github.com/dangol-v2/deal-service/internal/infrastructure/logger"
	"github.com/dangol-v2/deal-service/internal/infrastructure/metrics"
	claimdto "github.com/dangol-v2/deal-service/internal/usecase/dto/claim"
	"github.com/jaevor/go-nanoid"
)

// codeRetryLimit bounds regeneration after a claim-code collision. With a
// 36^6 code space a single collision is already rare.
const codeRetryLimit = 3

type ClaimUsecase interface {
	IssueClaim(input *claimdto.IssueClaimInput) (*claimdto.IssueClaimOutput, error)
	RedeemClaim(input *claimdto.RedeemClaimInput) error
	GetDeviceClaims(input *claimdto.GetDeviceClaimsInput) (*claimdto.GetDeviceClaimsOutput, error)
}

type DefaultClaimUsecase struct {
	ClaimRepo   domain.ClaimRepository
	Resolver    *expiry.Resolver
	Metrics     *metrics.DealMetrics
	EventLogger logger.ClaimEventLogger
}

func NewDefaultClaimUsecase(
	claimRepo domain.ClaimRepository,
	resolver *expiry.Resolver,
	dealMetrics *metrics.DealMetrics,
	eventLogger logger.ClaimEventLogger) *DefaultClaimUsecase {

	return &DefaultClaimUsecase{
		ClaimRepo: claimRepo,
		Resolver: resolver,
		Metrics: dealMetrics,
		EventLogger: eventLogger,
	}
}

// IssueClaim runs the whole check-generate-insert-increment sequence in
// one transaction with the deal row locked, so concurrent attempts on
// the last slot cannot both succeed.
func (uc *DefaultClaimUsecase) IssueClaim(input *claimdto.IssueClaimInput) (*claimdto.IssueClaimOutput, error) {
	if input.DeviceID == "" {
		return nil, fmt.Errorf("%w: device id is required", domain.ErrValidation)
	}

	codeGenerator, err := nanoid.CustomASCII(domain.ClaimCodeAlphabet, domain.ClaimCodeLength)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		uc.Metrics.ClaimIssueDuration.Observe(time.Since(start).Seconds())
	}()

	var issued *domain.Claim
	var merchantID int64

	for attempt := 0; attempt < codeRetryLimit; attempt++ {
		code := strings.ToUpper(codeGenerator())

		err = uc.ClaimRepo.Transaction(func(tx domain.ClaimTx) error {
			deal, err := tx.GetDealForUpdate(input.DealID)
			if err != nil {
				return err
			}
			if !deal.HasCapacity() {
				return domain.ErrSoldOut
			}
			if uc.Resolver.DealExpired(deal) {
				return domain.ErrDealExpired
			}

			if _, err := tx.GetClaim(input.DealID, input.DeviceID); err == nil {
				return domain.ErrAlreadyClaimed
			} else if !errors.Is(err, domain.ErrClaimNotFound) {
				return err
			}

			now := uc.Resolver.Now()
			claim := &domain.Claim{
				DealID: input.DealID,
				DeviceID: input.DeviceID,
				ClaimCode: code,
				ClaimedAt: now,
				ExpiresAt: now.Add(domain.ClaimWindow),
			}
			if err := tx.InsertClaim(claim); err != nil {
				return err
			}
			if err := tx.IncrementCurrentClaims(input.DealID); err != nil {
				return err
			}

			issued = claim
			merchantID = deal.MerchantID
			return nil
		})

		if errors.Is(err, domain.ErrClaimCodeCollision) {
			slog.Info("claim code collision, regenerating", "deal_id", input.DealID, "attempt", attempt+1)
			continue
		}
		break
	}

	if err != nil {
		uc.recordIssueRejection(err)
		return nil, err
	}

	uc.Metrics.ClaimsIssuedTotal.WithLabelValues(strconv.FormatInt(merchantID, 10)).Inc()

	if logErr := uc.EventLogger.LogClaimIssued(context.Background(), logger.ClaimIssuedEvent{
		DealID: issued.DealID,
		MerchantID: merchantID,
		DeviceID: issued.DeviceID,
		ClaimCode: issued.ClaimCode,
		Timestamp: issued.ClaimedAt,
	}); logErr != nil {
		slog.Error("failed to log claim issued event", "error", logErr.Error())
	}

	return &claimdto.IssueClaimOutput{
		ClaimCode: issued.ClaimCode,
		ExpiresAt: issued.ExpiresAt,
	}, nil
}

func (uc *DefaultClaimUsecase) recordIssueRejection(err error) {
	switch {
	case errors.Is(err, domain.ErrSoldOut):
		uc.Metrics.ClaimsRejectedTotal.WithLabelValues("sold_out").Inc()
	case errors.Is(err, domain.ErrDealExpired):
		uc.Metrics.ClaimsRejectedTotal.WithLabelValues("expired").Inc()
	case errors.Is(err, domain.ErrAlreadyClaimed):
		uc.Metrics.ClaimsRejectedTotal.WithLabelValues("already_claimed").Inc()
	case errors.Is(err, domain.ErrDealNotFound):
		uc.Metrics.ClaimsRejectedTotal.WithLabelValues("not_found").Inc()
	}
}

// RedeemClaim classifies the failure first, then takes the row with a
// compare-and-set so two concurrent redemptions of one code produce
// exactly one success.
func (uc *DefaultClaimUsecase) RedeemClaim(input *claimdto.RedeemClaimInput) error {
	code := strings.ToUpper(strings.TrimSpace(input.ClaimCode))
	if len(code) != domain.ClaimCodeLength {
		uc.Metrics.ClaimRedeemFailedTotal.WithLabelValues("not_found").Inc()
		return domain.ErrClaimNotFound
	}

	claim, err := uc.ClaimRepo.GetClaimByCode(code)
	if err != nil {
		if errors.Is(err, domain.ErrClaimNotFound) {
			uc.Metrics.ClaimRedeemFailedTotal.WithLabelValues("not_found").Inc()
		}
		return err
	}
	if claim.Redeemed() {
		uc.Metrics.ClaimRedeemFailedTotal.WithLabelValues("already_redeemed").Inc()
		return domain.ErrAlreadyRedeemed
	}
	if uc.Resolver.ClaimExpired(claim) {
		uc.Metrics.ClaimRedeemFailedTotal.WithLabelValues("expired").Inc()
		return domain.ErrClaimExpired
	}

	won, err := uc.ClaimRepo.RedeemClaim(code, uc.Resolver.Now())
	if err != nil {
		return err
	}
	if !won {
		// Lost the race to a concurrent redeem.
		uc.Metrics.ClaimRedeemFailedTotal.WithLabelValues("already_redeemed").Inc()
		return domain.ErrAlreadyRedeemed
	}

	uc.Metrics.ClaimsRedeemedTotal.Inc()

	if logErr := uc.EventLogger.LogClaimRedeemed(context.Background(), logger.ClaimRedeemedEvent{
		DealID: claim.DealID,
		ClaimCode: code,
		Timestamp: uc.Resolver.Now(),
	}); logErr != nil {
		slog.Error("failed to log claim redeemed event", "error", logErr.Error())
	}

	return nil
}

func (uc *DefaultClaimUsecase) GetDeviceClaims(input *claimdto.GetDeviceClaimsInput) (*claimdto.GetDeviceClaimsOutput, error) {
	claims, err := uc.ClaimRepo.GetActiveClaimsByDevice(input.DeviceID, uc.Resolver.Now())
	if err != nil {
		return nil, err
	}

	claimsOutput := make([]*claimdto.ClaimOutput, len(claims))
	for i, claim := range claims {
		claimsOutput[i] = &claimdto.ClaimOutput{
			DealID: claim.DealID,
			ClaimCode: claim.ClaimCode,
			ClaimedAt: claim.ClaimedAt,
			ExpiresAt: claim.ExpiresAt,
			RedeemedAt: claim.RedeemedAt,
			DealTitle: claim.DealTitle,
			DealDescription: claim.DealDescription,
			MerchantName: claim.MerchantName,
		}
	}

	return &claimdto.GetDeviceClaimsOutput{Claims: claimsOutput}, nil
}
