package payment

import (
	"context"
	"time"

	"gymdash/internal/config"

	"github.com/shopspring/decimal"
)

// nowFunc is swapped out in tests.
var nowFunc = time.Now

var periodDays = map[string]int{
	"7d":  7,
	"14d": 14,
	"30d": 30,
}

type Service interface {
	Trends(ctx context.Context, companyID string, locationID *string, period string) (*TrendsResponse, error)
}

type service struct {
	repo     Repository
	currency string
}

func NewService(repo Repository, cfg *config.Config) Service {
	return &service{repo: repo, currency: cfg.Currency}
}

// Trends buckets completed payments per day over the trailing period,
// zero-filling days with no payments, and classifies the growth between the
// two halves of the window.
func (s *service) Trends(ctx context.Context, companyID string, locationID *string, period string) (*TrendsResponse, error) {
	days, ok := periodDays[period]
	if !ok {
		days = 7
		period = "7d"
	}

	now := nowFunc()
	from := now.AddDate(0, 0, -days)

	rows, err := s.repo.DailyRevenue(ctx, companyID, locationID, from, now)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]DailyRevenue, len(rows))
	for _, row := range rows {
		byDay[row.Bucket.Format("2006-01-02")] = row
	}

	var totalCents int64
	points := make([]DataPoint, 0, days+1)
	for d := 0; d <= days; d++ {
		date := from.AddDate(0, 0, d).Format("2006-01-02")
		row := byDay[date]
		totalCents += row.TotalCents
		points = append(points, DataPoint{
			Date:         date,
			Revenue:      centsToMajor(row.TotalCents),
			Transactions: row.TxCount,
		})
	}

	return &TrendsResponse{
		TotalRevenue: centsToMajor(totalCents),
		Currency:     s.currency,
		Period:       period,
		DataPoints:   points,
		Growth:       classifyGrowth(points),
	}, nil
}

func centsToMajor(cents int64) int64 {
	return decimal.NewFromInt(cents).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

// classifyGrowth compares the totals of the first and second half of the
// window: above +5% is up, below -5% is down, anything between is stable.
func classifyGrowth(points []DataPoint) Growth {
	half := len(points) / 2

	var first, second int64
	for i, p := range points {
		if i < half {
			first += p.Revenue
		} else {
			second += p.Revenue
		}
	}

	if first == 0 {
		if second > 0 {
			return Growth{Direction: GrowthUp, Percent: 100}
		}
		return Growth{Direction: GrowthStable, Percent: 0}
	}

	pct, _ := decimal.NewFromInt(second - first).
		Div(decimal.NewFromInt(first)).
		Mul(decimal.NewFromInt(100)).
		Round(1).
		Float64()

	direction := GrowthStable
	switch {
	case pct > 5:
		direction = GrowthUp
	case pct < -5:
		direction = GrowthDown
	}

	return Growth{Direction: direction, Percent: pct}
}
