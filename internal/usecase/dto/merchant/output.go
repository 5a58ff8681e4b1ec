package merchantdto

import "time"

type MerchantOutput struct {
	ID           int64     `json:"id"`
	BusinessName string    `json:"business_name"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	CreatedAt    time.Time `json:"created_at"`
}
