package dashboard

import "time"

// Summary is the composite dashboard result. It is recomputed per request and
// never persisted. The sub-counts come from independent queries with no
// wrapping transaction, so they are not guaranteed to be mutually consistent;
// that is acceptable for a dashboard view.
type Summary struct {
	ActiveVisits        int            `json:"activeVisits"`
	CapacityLimit       int            `json:"capacityLimit"`
	UtilizationPercent  int            `json:"utilizationPercent"`
	ExpiringMemberships ExpiringCounts `json:"expiringMemberships"`
	Revenue             RevenueSummary `json:"revenue"`
	ClassesToday        int            `json:"classesToday"`
	StaffGaps           int            `json:"staffGaps"`
	DateRange           DateRange      `json:"dateRange"`
	LocationID          *string        `json:"locationId"`
}

// ExpiringCounts are cumulative horizons: a membership expiring tomorrow
// counts in all three buckets.
type ExpiringCounts struct {
	In7Days  int `json:"7d"`
	In14Days int `json:"14d"`
	In30Days int `json:"30d"`
}

type RevenueSummary struct {
	Total            int64  `json:"total"` // major currency units
	TransactionCount int    `json:"transactionCount"`
	MRREstimate      int64  `json:"mrrEstimate"`
	Currency         string `json:"currency"`
}

// ActivityEvent is one check-in or check-out row of the activity feed.
type ActivityEvent struct {
	VisitID      string    `db:"visit_id" json:"visitId"`
	MembershipID string    `db:"membership_id" json:"membershipId"`
	MemberName   string    `db:"member_name" json:"memberName"`
	LocationID   *string   `db:"location_id" json:"locationId"`
	EventType    string    `db:"event_type" json:"type"` // check_in | check_out
	OccurredAt   time.Time `db:"occurred_at" json:"occurredAt"`
}
