package dto

type PendingMemberResponseDTO struct {
	ID             int    `json:"id" example:"1"`
	AirtableID     string `json:"airtable_id" example:"recA1B2C3D4E5F6G7"`
	Name           string `json:"name" example:"Jane Doe"`
	Email          string `json:"email" example:"jane@example.com"`
	MembershipType string `json:"membership_type" example:"Coffee Club"`
	Status         string `json:"status" example:"pending"`
	Source         string `json:"source" example:"airtable"`
	CreatedAt      string `json:"created_at" example:"2025-06-01T12:00:00Z"`
}

type SyncResponseDTO struct {
	Created int `json:"created" example:"4"`
	Skipped int `json:"skipped" example:"17"`
	Failed  int `json:"failed" example:"0"`
}

type ApproveResponseDTO struct {
	MemberID int    `json:"member_id" example:"42"`
	QRCode   string `json:"qr_code" example:"7f9c24e8-3b13-4bfb-8f29-d9bd2152ba27"`
}
