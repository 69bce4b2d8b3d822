package class

import "time"

// Derived statuses. No end time is persisted, so in-progress is estimated
// from the configured default duration.
const (
	StatusUpcoming   = "upcoming"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

type Class struct {
	ID         string    `db:"id" json:"id"`
	CompanyID  string    `db:"company_id" json:"-"`
	LocationID string    `db:"location_id" json:"locationId"`
	Title      string    `db:"title" json:"title"`
	StartsAt   time.Time `db:"starts_at" json:"startsAt"`
	Capacity   int       `db:"capacity" json:"capacity"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

type ClassWithBookings struct {
	Class
	BookedCount int    `db:"booked_count" json:"bookedCount"`
	GymName     string `db:"gym_name" json:"gymName"`
	Status      string `json:"status"`
}

type StatusSummary struct {
	Upcoming   int `json:"upcoming"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}

type TodayResponse struct {
	Classes    []ClassWithBookings `json:"classes"`
	Date       string              `json:"date"`
	LocationID *string             `json:"locationId"`
	Total      int                 `json:"total"`
	Summary    StatusSummary       `json:"summary"`
}

type CreateClassRequest struct {
	LocationID string `json:"location_id" binding:"required"`
	Title      string `json:"title" binding:"required"`
	StartsAt   string `json:"starts_at" binding:"required"`
	Capacity   int    `json:"capacity" binding:"required,min=1"`
}
