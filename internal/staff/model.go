package staff

import "time"

type Shift struct {
	ID         string    `db:"id" json:"id"`
	CompanyID  string    `db:"company_id" json:"-"`
	LocationID string    `db:"location_id" json:"locationId"`
	StaffName  string    `db:"staff_name" json:"staffName"`
	Role       string    `db:"role" json:"role"`
	StartsAt   time.Time `db:"starts_at" json:"startsAt"`
	EndsAt     time.Time `db:"ends_at" json:"endsAt"`
}

// Gap is a stretch of business hours with nobody in a required role on shift.
type Gap struct {
	Role  string    `json:"role"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type CoverageResponse struct {
	Date            string  `json:"date"`
	LocationID      *string `json:"locationId"`
	BusinessHours   string  `json:"businessHours"`
	Gaps            []Gap   `json:"gaps"`
	TotalGapMinutes int     `json:"totalGapMinutes"`
}

type CreateShiftRequest struct {
	LocationID string `json:"locationId" binding:"required,uuid_rfc4122"`
	StaffName  string `json:"staffName" binding:"required"`
	Role       string `json:"role" binding:"required"`
	StartsAt   string `json:"startsAt" binding:"required"`
	EndsAt     string `json:"endsAt" binding:"required"`
}
