package expiry

import (
	"time"

	"github.com/dangol-v2/deal-service/internal/domain"
)

// KST is the wall-clock frame for business hours and post-migration deal
// expiry. A fixed zone avoids a tzdata dependency; Korea has no DST.
var KST = time.FixedZone("KST", 9*60*60)

// LegacyExpiryCutoffDealID is the schema-version boundary left by the
// timezone migration: deals below this ID persisted expires_at as a naive
// UTC wall clock, deals at or above it as a KST wall clock. Rows should be
// rewritten to one representation in a one-time migration; until then the
// resolver carries the branch.
const LegacyExpiryCutoffDealID = 21

const (
	businessHoursStartKST = 9
	businessHoursEndKST   = 20
)

// Resolver is the single authoritative expiry predicate for deals and
// claims. It is pure: given an entity and the clock it never mutates state.
type Resolver struct {
	now func() time.Time
}

func NewResolver() *Resolver {
	return &Resolver{now: time.Now}
}

// NewResolverAt pins the clock, for tests.
func NewResolverAt(now func() time.Time) *Resolver {
	return &Resolver{now: now}
}

func (r *Resolver) Now() time.Time {
	return r.now()
}

func (r *Resolver) NowKST() time.Time {
	return r.now().In(KST)
}

// DealExpiry resolves the dual-epoch ambiguity: the stored wall-clock
// reading is rebased into the frame its epoch wrote it in, yielding the
// absolute expiry instant. A naive-UTC value is never compared against
// a KST now or vice versa.
func DealExpiry(deal *domain.Deal) time.Time {
	if deal.ID >= LegacyExpiryCutoffDealID {
		return rebase(deal.ExpiresAt, KST)
	}
	return rebase(deal.ExpiresAt, time.UTC)
}

// StorageClock is the write-side inverse of DealExpiry: it maps an
// absolute instant to the wall clock the given row must persist so that
// a storage round trip followed by DealExpiry returns the same instant.
// Drivers normalize naive timestamp columns to the value's own wall
// clock, so the frame is encoded by stamping the target wall clock UTC.
func StorageClock(dealID int64, t time.Time) time.Time {
	if dealID >= LegacyExpiryCutoffDealID {
		return rebase(t.In(KST), time.UTC)
	}
	return t.UTC()
}

func (r *Resolver) DealExpired(deal *domain.Deal) bool {
	return DealExpiry(deal).Before(r.now())
}

// ClaimExpired has no epoch branch: claim windows postdate the migration
// and are always absolute. A claim is valid up to and including its
// expires_at instant.
func (r *Resolver) ClaimExpired(claim *domain.Claim) bool {
	return claim.ExpiresAt.Before(r.now())
}

// WithinBusinessHours reports whether the current KST hour is inside the
// auto-notification window [09:00, 20:00).
func (r *Resolver) WithinBusinessHours() bool {
	hour := r.NowKST().Hour()
	return hour >= businessHoursStartKST && hour < businessHoursEndKST
}

// rebase reinterprets the wall-clock fields of t in loc, discarding
// whatever location the storage driver attached.
func rebase(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}
