package dashboard

import (
	"context"
	"math"
	"time"

	"gymdash/internal/config"
	"gymdash/internal/logger"
	"gymdash/internal/metrics"

	"github.com/shopspring/decimal"
)

type Service interface {
	GetSummary(ctx context.Context, companyID string, locationID *string, rng DateRange) (*Summary, error)
	GetActivity(ctx context.Context, companyID string, locationID *string, since time.Time, limit int) ([]ActivityEvent, error)
}

type service struct {
	repo             Repository
	locationCapacity int
	currency         string
}

func NewService(repo Repository, cfg *config.Config) Service {
	return &service{
		repo:             repo,
		locationCapacity: cfg.LocationCapacity,
		currency:         cfg.Currency,
	}
}

// GetSummary assembles the composite summary from independent read queries.
// Individual query failures degrade the affected field to a safe default
// instead of failing the whole response.
func (s *service) GetSummary(ctx context.Context, companyID string, locationID *string, rng DateRange) (*Summary, error) {
	now := nowFunc()

	activeVisits := s.countOrZero("active_visits", func() (int, error) {
		return s.repo.CountActiveVisits(ctx, companyID, locationID)
	})

	locations := s.countOrZero("locations", func() (int, error) {
		return s.repo.CountLocations(ctx, companyID)
	})
	if locations == 0 {
		// A tenant with no registered locations still runs one gym.
		locations = 1
	}
	capacity := locations * s.locationCapacity

	utilization := 0
	if capacity > 0 {
		utilization = int(math.Round(float64(activeVisits) / float64(capacity) * 100))
	}

	expiring := ExpiringCounts{
		In7Days: s.countOrZero("expiring_7d", func() (int, error) {
			return s.repo.CountExpiringMemberships(ctx, companyID, now.AddDate(0, 0, 7))
		}),
		In14Days: s.countOrZero("expiring_14d", func() (int, error) {
			return s.repo.CountExpiringMemberships(ctx, companyID, now.AddDate(0, 0, 14))
		}),
		In30Days: s.countOrZero("expiring_30d", func() (int, error) {
			return s.repo.CountExpiringMemberships(ctx, companyID, now.AddDate(0, 0, 30))
		}),
	}

	revenue := s.revenueSummary(ctx, companyID, locationID, rng)

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Millisecond)
	classesToday := s.countOrZero("classes_today", func() (int, error) {
		return s.repo.CountClassesStarting(ctx, companyID, locationID, dayStart, dayEnd)
	})

	metrics.RecordSummary()

	return &Summary{
		ActiveVisits:        activeVisits,
		CapacityLimit:       capacity,
		UtilizationPercent:  utilization,
		ExpiringMemberships: expiring,
		Revenue:             revenue,
		ClassesToday:        classesToday,
		// Gap detection lives in the staff coverage endpoint; the summary
		// reports a placeholder until the widget moves in here.
		StaffGaps:  0,
		DateRange:  rng,
		LocationID: locationID,
	}, nil
}

func (s *service) GetActivity(ctx context.Context, companyID string, locationID *string, since time.Time, limit int) ([]ActivityEvent, error) {
	return s.repo.RecentActivity(ctx, companyID, locationID, since, limit)
}

func (s *service) countOrZero(field string, query func() (int, error)) int {
	n, err := query()
	if err != nil {
		logger.WithError(err).Error("dashboard query degraded to default", "field", field)
		metrics.RecordDegradedField(field)
		return 0
	}
	return n
}

func (s *service) revenueSummary(ctx context.Context, companyID string, locationID *string, rng DateRange) RevenueSummary {
	totalCents, txCount, err := s.repo.RevenueTotals(ctx, companyID, locationID, rng.From, rng.To)
	if err != nil {
		logger.WithError(err).Error("dashboard query degraded to default", "field", "revenue")
		metrics.RecordDegradedField("revenue")
		return RevenueSummary{Currency: s.currency}
	}

	total := decimal.NewFromInt(totalCents).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()

	// Linear extrapolation of the window onto 30 days, not a real
	// subscription MRR figure.
	mrr := decimal.NewFromInt(total).
		Div(decimal.NewFromInt(int64(rng.Days()))).
		Mul(decimal.NewFromInt(30)).
		Round(0).
		IntPart()

	return RevenueSummary{
		Total:            total,
		TransactionCount: txCount,
		MRREstimate:      mrr,
		Currency:         s.currency,
	}
}
