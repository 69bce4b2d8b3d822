package dashboard

import (
	"context"
	"time"
)

type Repository interface {
	CountActiveVisits(ctx context.Context, companyID string, locationID *string) (int, error)
	CountLocations(ctx context.Context, companyID string) (int, error)
	CountExpiringMemberships(ctx context.Context, companyID string, before time.Time) (int, error)
	RevenueTotals(ctx context.Context, companyID string, locationID *string, from, to time.Time) (totalCents int64, txCount int, err error)
	CountClassesStarting(ctx context.Context, companyID string, locationID *string, from, to time.Time) (int, error)
	RecentActivity(ctx context.Context, companyID string, locationID *string, since time.Time, limit int) ([]ActivityEvent, error)
}
