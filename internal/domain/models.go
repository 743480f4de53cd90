package domain

import "time"

type Member struct {
	ID             int        `db:"id"`
	QRCode         string     `db:"qr_code"`
	Name           string     `db:"name"`
	MemberTypeID   int        `db:"member_type_id"`
	Points         int        `db:"points"`
	TotalScans     int        `db:"total_scans"`
	PointsToReward int        `db:"points_to_reward"`
	RewardDue      bool       `db:"reward_due"`
	RewardEarnedAt *time.Time `db:"reward_earned_at"`
	LastScanAt     *time.Time `db:"last_scan_at"`
}

type MemberType struct {
	ID            int    `db:"id"`
	Name          string `db:"name"`
	ScansRequired int    `db:"scans_required"`
	RewardTypeID  int    `db:"reward_type_id"`
	TotalScans    int    `db:"total_scans"`
}

type RewardType struct {
	ID          int    `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
}

type ScanLog struct {
	ID           int       `db:"id"`
	ScannedValue string    `db:"scanned_value"`
	CreatedAt    time.Time `db:"created_at"`
}

type RedeemLog struct {
	ID           int       `db:"id"`
	MemberID     int       `db:"member_id"`
	RewardTypeID int       `db:"reward_type_id"`
	CreatedAt    time.Time `db:"created_at"`
}

const (
	// PendingStatusPending application imported, awaiting a decision;
	PendingStatusPending string = "pending"
	// PendingStatusApproved application approved, member record created;
	PendingStatusApproved string = "approved"
	// PendingStatusRejected application rejected;
	PendingStatusRejected string = "rejected"
)

type PendingMember struct {
	ID             int        `db:"id"`
	AirtableID     string     `db:"airtable_id"`
	Name           string     `db:"name"`
	Email          string     `db:"email"`
	MembershipType string     `db:"membership_type"`
	QRCodeURL      string     `db:"qr_code_url"`
	Status         string     `db:"status"`
	Source         string     `db:"source"`
	CreatedAt      time.Time  `db:"created_at"`
	ProcessedAt    *time.Time `db:"processed_at"`
	ProcessedBy    *int       `db:"processed_by"`
}

type Operator struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
