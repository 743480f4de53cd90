package dto

type ScanRequestDTO struct {
	Code string `json:"code" example:"7f9c24e8-3b13-4bfb-8f29-d9bd2152ba27"`
}

type ScanLogDTO struct {
	ID           int    `json:"id" example:"12"`
	ScannedValue string `json:"scanned_value" example:"7f9c24e8-3b13-4bfb-8f29-d9bd2152ba27"`
	CreatedAt    string `json:"created_at" example:"2025-06-09T16:09:57Z"`
}

type ScanResultDTO struct {
	MemberType    string `json:"member_type" example:"Coffee Club"`
	Member        string `json:"member" example:"Jane Doe"`
	Points        int    `json:"points" example:"3"`
	ScansRequired int    `json:"scans_required" example:"10"`
	RewardDue     bool   `json:"reward_due" example:"false"`
}
