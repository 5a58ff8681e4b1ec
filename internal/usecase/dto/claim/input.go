package claimdto

type IssueClaimInput struct {
	DealID   int64
	DeviceID string
}

type RedeemClaimInput struct {
	ClaimCode string
}

type GetDeviceClaimsInput struct {
	DeviceID string
}
