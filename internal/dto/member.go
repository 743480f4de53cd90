package dto

type MemberResponseDTO struct {
	ID             int            `json:"id" example:"1"`
	QRCode         string         `json:"qr_code" example:"7f9c24e8-3b13-4bfb-8f29-d9bd2152ba27"`
	Name           string         `json:"name" example:"Jane Doe"`
	Points         int            `json:"points" example:"3"`
	TotalScans     int            `json:"total_scans" example:"23"`
	PointsToReward int            `json:"points_to_reward" example:"7"`
	RewardDue      bool           `json:"reward_due" example:"false"`
	RewardEarnedAt string         `json:"reward_earned_at,omitempty" example:"2025-06-01T12:00:00Z"`
	LastScanAt     string         `json:"last_scan_at,omitempty" example:"2025-06-09T16:09:57Z"`
	Redeems        []RedeemLogDTO `json:"redeems,omitempty"`
}

type RedeemLogDTO struct {
	ID           int    `json:"id" example:"12"`
	RewardTypeID int    `json:"reward_type_id" example:"2"`
	CreatedAt    string `json:"created_at" example:"2025-06-01T12:00:00Z"`
}
