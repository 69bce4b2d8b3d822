package membership

import (
	"context"
	"time"
)

// nowFunc is swapped out in tests.
var nowFunc = time.Now

var windowDays = map[string]int{
	"7d":  7,
	"14d": 14,
	"30d": 30,
}

type Service interface {
	Expiring(ctx context.Context, companyID, window string) (*ExpiringResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Expiring lists ACTIVE memberships expiring within the window, soonest
// first. Windows are cumulative horizons from now, same as the dashboard
// counts.
func (s *service) Expiring(ctx context.Context, companyID, window string) (*ExpiringResponse, error) {
	days, ok := windowDays[window]
	if !ok {
		days = 7
		window = "7d"
	}

	before := nowFunc().AddDate(0, 0, days)
	memberships, err := s.repo.ListExpiring(ctx, companyID, before)
	if err != nil {
		return nil, err
	}

	return &ExpiringResponse{
		Window:      window,
		Count:       len(memberships),
		Memberships: memberships,
	}, nil
}
