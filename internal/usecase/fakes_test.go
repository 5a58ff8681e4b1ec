package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/dangol-v2/deal-service/internal/domain"
	"github.com/dangol-v2/deal-service/internal/expiry"
	"github.com/dangol-v2/deal-service/internal/geo"
	"github.com/dangol-v2/deal-service/internal/infrastructure/logger"
	"github.com/dangol-v2/deal-service/internal/infrastructure/metrics"
	"github.com/dangol-v2/deal-service/internal/infrastructure/push"
)

// One shared registry-backed metrics instance; promauto registers into the
// default registerer and a second NewDealMetrics would panic.
var testMetrics = metrics.NewDealMetrics()

// testClock is a settable clock for pinning the resolver in tests.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(now time.Time) *testClock {
	return &testClock{now: now}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *testClock) Resolver() *expiry.Resolver {
	return expiry.NewResolverAt(c.Now)
}

// memStore is an in-memory implementation of every repository interface.
// The single mutex makes Transaction serializable, matching the row-lock
// guarantee the real backends give.
type memStore struct {
	mu sync.Mutex

	merchants     map[int64]*domain.Merchant
	deals         map[int64]*domain.Deal
	claims        []*domain.Claim
	subs          map[string]*domain.PushSubscription
	notifications map[int64]*domain.Notification
	deliveries    []*domain.NotificationDelivery

	nextID int64
}

func newMemStore() *memStore {
	return &memStore{
		merchants:     make(map[int64]*domain.Merchant),
		deals:         make(map[int64]*domain.Deal),
		subs:          make(map[string]*domain.PushSubscription),
		notifications: make(map[int64]*domain.Notification),
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

// --- MerchantRepository ---

func (s *memStore) CreateMerchant(m *domain.Merchant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.id()
	s.merchants[m.ID] = m
	return nil
}

func (s *memStore) GetMerchantByID(merchantID int64) (*domain.Merchant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.merchants[merchantID]
	if !ok {
		return nil, domain.ErrMerchantNotFound
	}
	out := *m
	return &out, nil
}

func (s *memStore) GetMerchantByEmail(email string) (*domain.Merchant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.merchants {
		if m.Email == email {
			out := *m
			return &out, nil
		}
	}
	return nil, domain.ErrMerchantNotFound
}

func (s *memStore) UpdateMerchantLocation(merchantID int64, params domain.UpdateMerchantLocationParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.merchants[merchantID]
	if !ok {
		return domain.ErrMerchantNotFound
	}
	m.Latitude = params.Latitude
	m.Longitude = params.Longitude
	m.Address = params.Address
	return nil
}

// --- DealRepository ---

func (s *memStore) CreateDeal(d *domain.Deal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = s.id()
	d.CreatedAt = time.Now()
	// Same storage contract as the real repository: expires_at lands in
	// the wall-clock frame the resolver reads for this row ID.
	d.ExpiresAt = expiry.StorageClock(d.ID, d.ExpiresAt)
	s.deals[d.ID] = d
	return nil
}

func (s *memStore) GetDealByID(dealID int64) (*domain.Deal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dealByIDLocked(dealID)
}

func (s *memStore) dealByIDLocked(dealID int64) (*domain.Deal, error) {
	d, ok := s.deals[dealID]
	if !ok {
		return nil, domain.ErrDealNotFound
	}
	out := *d
	if m, ok := s.merchants[d.MerchantID]; ok {
		out.MerchantName = m.BusinessName
		out.MerchantAddress = m.Address
		out.Latitude = m.Latitude
		out.Longitude = m.Longitude
	}
	return &out, nil
}

func (s *memStore) GetMerchantDeals(merchantID int64) ([]*domain.Deal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Deal
	for id, d := range s.deals {
		if d.MerchantID == merchantID {
			deal, _ := s.dealByIDLocked(id)
			out = append(out, deal)
		}
	}
	return out, nil
}

func (s *memStore) GetActiveDealsNear(lat, lng, radiusMeters float64) ([]*domain.Deal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	box := geo.NewBoundingBox(lat, lng, radiusMeters)
	var out []*domain.Deal
	for id, d := range s.deals {
		m, ok := s.merchants[d.MerchantID]
		if !ok || !box.Contains(m.Latitude, m.Longitude) {
			continue
		}
		if !d.HasCapacity() {
			continue
		}
		deal, _ := s.dealByIDLocked(id)
		out = append(out, deal)
	}
	return out, nil
}

func (s *memStore) UpdateDeal(dealID int64, params domain.UpdateDealParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.deals[dealID]
	if !ok {
		return domain.ErrDealNotFound
	}
	if params.Title != nil {
		d.Title = *params.Title
	}
	if params.Description != nil {
		d.Description = *params.Description
	}
	if params.ExpiresAt != nil {
		d.ExpiresAt = *params.ExpiresAt
	}
	if params.MaxClaims != nil {
		d.MaxClaims = *params.MaxClaims
	}
	return nil
}

func (s *memStore) UpdateDealStatus(dealID int64, newStatus domain.DealStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.deals[dealID]
	if !ok {
		return domain.ErrDealNotFound
	}
	d.Status = newStatus
	return nil
}

// --- ClaimRepository ---

type memClaimTx struct {
	s *memStore
}

func (s *memStore) Transaction(fn func(tx domain.ClaimTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&memClaimTx{s: s})
}

func (t *memClaimTx) GetDealForUpdate(dealID int64) (*domain.Deal, error) {
	return t.s.dealByIDLocked(dealID)
}

func (t *memClaimTx) GetClaim(dealID int64, deviceID string) (*domain.Claim, error) {
	for _, c := range t.s.claims {
		if c.DealID == dealID && c.DeviceID == deviceID {
			out := *c
			return &out, nil
		}
	}
	return nil, domain.ErrClaimNotFound
}

func (t *memClaimTx) InsertClaim(claim *domain.Claim) error {
	for _, c := range t.s.claims {
		if c.ClaimCode == claim.ClaimCode {
			return domain.ErrClaimCodeCollision
		}
	}
	claim.ID = t.s.id()
	t.s.claims = append(t.s.claims, claim)
	return nil
}

func (t *memClaimTx) IncrementCurrentClaims(dealID int64) error {
	d, ok := t.s.deals[dealID]
	if !ok {
		return domain.ErrDealNotFound
	}
	d.CurrentClaims++
	return nil
}

func (s *memStore) GetClaimByCode(code string) (*domain.Claim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.claimByCodeLocked(code)
	if c == nil {
		return nil, domain.ErrClaimNotFound
	}
	out := *c
	if d, ok := s.deals[c.DealID]; ok {
		out.DealTitle = d.Title
		out.DealDescription = d.Description
		if m, ok := s.merchants[d.MerchantID]; ok {
			out.MerchantName = m.BusinessName
		}
	}
	return &out, nil
}

func (s *memStore) claimByCodeLocked(code string) *domain.Claim {
	for _, c := range s.claims {
		if c.ClaimCode == code {
			return c
		}
	}
	return nil
}

func (s *memStore) RedeemClaim(code string, redeemedAt time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.claimByCodeLocked(code)
	if c == nil || c.RedeemedAt != nil {
		return false, nil
	}
	c.RedeemedAt = &redeemedAt
	return true, nil
}

func (s *memStore) GetActiveClaimsByDevice(deviceID string, now time.Time) ([]*domain.Claim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Claim
	for _, c := range s.claims {
		if c.DeviceID != deviceID || c.RedeemedAt != nil || !c.ExpiresAt.After(now) {
			continue
		}
		claim := *c
		if d, ok := s.deals[c.DealID]; ok {
			claim.DealTitle = d.Title
			claim.DealDescription = d.Description
			if m, ok := s.merchants[d.MerchantID]; ok {
				claim.MerchantName = m.BusinessName
			}
		}
		out = append(out, &claim)
	}
	return out, nil
}

func (s *memStore) GetDevicesNear(lat, lng, radiusMeters float64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	box := geo.NewBoundingBox(lat, lng, radiusMeters)
	seen := make(map[string]bool)
	var out []string
	for _, c := range s.claims {
		d, ok := s.deals[c.DealID]
		if !ok {
			continue
		}
		m, ok := s.merchants[d.MerchantID]
		if !ok || !box.Contains(m.Latitude, m.Longitude) {
			continue
		}
		if !seen[c.DeviceID] {
			seen[c.DeviceID] = true
			out = append(out, c.DeviceID)
		}
	}
	return out, nil
}

func (s *memStore) GetMerchantCustomerDevices(merchantID int64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]bool)
	var out []string
	for _, c := range s.claims {
		d, ok := s.deals[c.DealID]
		if !ok || d.MerchantID != merchantID {
			continue
		}
		if !seen[c.DeviceID] {
			seen[c.DeviceID] = true
			out = append(out, c.DeviceID)
		}
	}
	return out, nil
}

// --- SubscriptionRepository ---

func (s *memStore) SavePushSubscription(sub *domain.PushSubscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.subs[sub.DeviceID]; ok {
		sub.ID = existing.ID
	} else {
		sub.ID = s.id()
	}
	s.subs[sub.DeviceID] = sub
	return nil
}

func (s *memStore) GetPushSubscription(deviceID string) (*domain.PushSubscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.subs[deviceID]
	if !ok {
		return nil, domain.ErrSubscriptionNotFound
	}
	out := *sub
	return &out, nil
}

func (s *memStore) GetActivePushSubscriptions() ([]*domain.PushSubscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.PushSubscription
	for _, sub := range s.subs {
		copied := *sub
		out = append(out, &copied)
	}
	return out, nil
}

func (s *memStore) DeletePushSubscription(deviceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, deviceID)
	return nil
}

// --- NotificationRepository ---

func (s *memStore) CreateNotification(n *domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n.ID = s.id()
	n.CreatedAt = time.Now()
	s.notifications[n.ID] = n
	return nil
}

func (s *memStore) GetNotificationByID(notificationID int64) (*domain.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notifications[notificationID]
	if !ok {
		return nil, domain.ErrNotificationNotFound
	}
	out := *n
	return &out, nil
}

func (s *memStore) UpdateNotificationStatus(notificationID int64, status domain.NotificationStatus, counters *domain.NotificationCounters) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notifications[notificationID]
	if !ok {
		return domain.ErrNotificationNotFound
	}
	n.Status = status
	if counters != nil {
		n.TotalRecipients = counters.TotalRecipients
		n.TotalDelivered = counters.TotalDelivered
	}
	return nil
}

func (s *memStore) CreateDelivery(d *domain.NotificationDelivery) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = s.id()
	d.SentAt = time.Now()
	s.deliveries = append(s.deliveries, d)
	return nil
}

func (s *memStore) UpdateDeliveryStatus(deliveryID int64, status domain.DeliveryStatus, errorMessage string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.deliveries {
		if d.ID == deliveryID {
			d.Status = status
			d.ErrorMessage = errorMessage
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

func (s *memStore) GetDeliveries(notificationID int64) ([]*domain.NotificationDelivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.NotificationDelivery
	for _, d := range s.deliveries {
		if d.NotificationID == notificationID {
			copied := *d
			out = append(out, &copied)
		}
	}
	return out, nil
}

// --- collaborator fakes ---

type fakePublisher struct {
	mu       sync.Mutex
	messages []domain.Message
}

func (p *fakePublisher) Publish(topic string, msgs ...domain.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msgs...)
	return nil
}

func (p *fakePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.messages)
}

type fakeSender struct {
	mu      sync.Mutex
	sent    []string
	failFor map[string]error
}

func (f *fakeSender) Send(sub *domain.PushSubscription, payload push.Payload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failFor[sub.DeviceID]; ok {
		return err
	}
	f.sent = append(f.sent, sub.DeviceID)
	return nil
}

type fakeEventLogger struct {
	mu       sync.Mutex
	issued   int
	redeemed int
}

func (l *fakeEventLogger) LogClaimIssued(ctx context.Context, event logger.ClaimIssuedEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.issued++
	return nil
}

func (l *fakeEventLogger) LogClaimRedeemed(ctx context.Context, event logger.ClaimRedeemedEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.redeemed++
	return nil
}
