package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DealMetrics covers the claim/redeem engine and the notification pipeline.
type DealMetrics struct {
	DealsCreatedTotal   prometheus.CounterVec
	DealsConfirmedTotal prometheus.Counter

	ClaimsIssuedTotal   prometheus.CounterVec
	ClaimsRejectedTotal prometheus.CounterVec
	ClaimIssueDuration  prometheus.Histogram

	ClaimsRedeemedTotal     prometheus.Counter
	ClaimRedeemFailedTotal  prometheus.CounterVec

	NotificationsSentTotal    prometheus.Counter
	NotificationsSkippedTotal prometheus.Counter
	DeliveriesTotal           prometheus.CounterVec
}

func NewDealMetrics() *DealMetrics {
	return &DealMetrics{
		DealsCreatedTotal: *promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "deals_created_total",
			Help: "Deals created, by merchant",
		}, []string{"merchant_id"}),
		DealsConfirmedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "deals_confirmed_total",
			Help: "Draft deals confirmed",
		}),
		ClaimsIssuedTotal: *promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "claims_issued_total",
			Help: "Claim codes issued, by merchant",
		}, []string{"merchant_id"}),
		ClaimsRejectedTotal: *promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "claims_rejected_total",
			Help: "Claim attempts rejected, by reason (sold_out, expired, already_claimed, not_found)",
		}, []string{"reason"}),
		ClaimIssueDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "claim_issue_duration_seconds",
			Help:    "Latency of the claim issuance transaction",
			Buckets: prometheus.DefBuckets,
		}),
		ClaimsRedeemedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "claims_redeemed_total",
			Help: "Claim codes redeemed",
		}),
		ClaimRedeemFailedTotal: *promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "claim_redeem_failed_total",
			Help: "Redemption attempts rejected, by reason (not_found, expired, already_redeemed)",
		}, []string{"reason"}),
		NotificationsSentTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Notification batches dispatched",
		}),
		NotificationsSkippedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "notifications_skipped_total",
			Help: "Auto-notifications skipped outside business hours",
		}),
		DeliveriesTotal: *promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "notification_deliveries_total",
			Help: "Per-device delivery outcomes, by status",
		}, []string{"status"}),
	}
}
