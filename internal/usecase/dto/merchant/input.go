package merchantdto

type CreateMerchantInput struct {
	BusinessName string
	Address      string
	Phone        string
	Email        string
	Latitude     float64
	Longitude    float64
}

type UpdateMerchantLocationInput struct {
	MerchantID int64
	Latitude   float64
	Longitude  float64
	Address    string
}
