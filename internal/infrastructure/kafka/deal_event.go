package publisher

import "time"

// DealCreatedEvent is the envelope handed to the notification pipeline
// when a merchant publishes a deal. The worker owns everything after
// this point; the deal transaction is already committed.
type DealCreatedEvent struct {
	EventID      string    `json:"event_id"`
	DealID       int64     `json:"deal_id"`
	MerchantID   int64     `json:"merchant_id"`
	MerchantName string    `json:"merchant_name"`
	DealTitle    string    `json:"deal_title"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"created_at"`
}

const DealEventsTopic = "deal-events"
