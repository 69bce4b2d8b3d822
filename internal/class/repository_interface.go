package class

import (
	"context"
	"time"
)

type Repository interface {
	ListStartingBetween(ctx context.Context, companyID string, locationID *string, from, to time.Time) ([]ClassWithBookings, error)
	CreateClass(ctx context.Context, companyID, locationID, title string, startsAt time.Time, capacity int) (*Class, error)
	LocationExists(ctx context.Context, companyID, locationID string) (bool, error)
}
