package visit

import "time"

type Visit struct {
	ID           string     `db:"id" json:"id"`
	CompanyID    string     `db:"company_id" json:"-"`
	MembershipID string     `db:"membership_id" json:"membershipId"`
	LocationID   *string    `db:"location_id" json:"locationId"`
	CheckedInAt  time.Time  `db:"checked_in_at" json:"checkedInAt"`
	CheckedOutAt *time.Time `db:"checked_out_at" json:"checkedOutAt"`
}

type CheckInRequest struct {
	MembershipID string  `json:"membershipId" binding:"required,uuid_rfc4122"`
	LocationID   *string `json:"locationId" binding:"omitempty,uuid_rfc4122"`
}
