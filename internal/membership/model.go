package membership

import "time"

const StatusActive = "ACTIVE"

type Membership struct {
	ID         string    `db:"id" json:"id"`
	CompanyID  string    `db:"company_id" json:"-"`
	MemberName string    `db:"member_name" json:"memberName"`
	Status     string    `db:"status" json:"status"`
	ExpiresAt  time.Time `db:"expires_at" json:"expiresAt"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

type ExpiringResponse struct {
	Window      string       `json:"window"`
	Count       int          `json:"count"`
	Memberships []Membership `json:"memberships"`
}
