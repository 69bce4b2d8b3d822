package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"gymdash/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) DailyRevenue(ctx context.Context, companyID string, locationID *string, from, to time.Time) ([]DailyRevenue, error) {
	args := m.Called(ctx, companyID, locationID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]DailyRevenue), args.Error(1)
}

func withFrozenNow(t *testing.T, now time.Time) {
	t.Helper()
	old := nowFunc
	nowFunc = func() time.Time { return now }
	t.Cleanup(func() { nowFunc = old })
}

func testConfig() *config.Config {
	return &config.Config{Currency: "USD"}
}

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestTrendsZeroFillsMissingDays(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	withFrozenNow(t, now)

	repo := new(MockRepository)
	svc := NewService(repo, testConfig())

	rows := []DailyRevenue{
		{Bucket: day("2025-08-14"), TotalCents: 50000, TxCount: 5},
		{Bucket: day("2025-08-19"), TotalCents: 125050, TxCount: 9},
	}
	repo.On("DailyRevenue", mock.Anything, "c1", (*string)(nil), now.AddDate(0, 0, -7), now).
		Return(rows, nil)

	resp, err := svc.Trends(context.Background(), "c1", nil, "7d")
	require.NoError(t, err)

	// 8 calendar dates cover a trailing 7-day window.
	require.Len(t, resp.DataPoints, 8)
	assert.Equal(t, "2025-08-13", resp.DataPoints[0].Date)
	assert.Equal(t, "2025-08-20", resp.DataPoints[7].Date)

	assert.Equal(t, int64(0), resp.DataPoints[0].Revenue)
	assert.Equal(t, int64(500), resp.DataPoints[1].Revenue)
	assert.Equal(t, 5, resp.DataPoints[1].Transactions)
	assert.Equal(t, int64(1251), resp.DataPoints[6].Revenue)

	// 175050 cents total -> 1751 major units, rounded.
	assert.Equal(t, int64(1751), resp.TotalRevenue)
	assert.Equal(t, "USD", resp.Currency)
	assert.Equal(t, "7d", resp.Period)
}

func TestTrendsDefaultsPeriod(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	withFrozenNow(t, now)

	repo := new(MockRepository)
	svc := NewService(repo, testConfig())

	repo.On("DailyRevenue", mock.Anything, "c1", (*string)(nil), now.AddDate(0, 0, -7), now).
		Return([]DailyRevenue{}, nil)

	resp, err := svc.Trends(context.Background(), "c1", nil, "")
	require.NoError(t, err)
	assert.Equal(t, "7d", resp.Period)
}

func TestTrendsPropagatesErrors(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	withFrozenNow(t, now)

	repo := new(MockRepository)
	svc := NewService(repo, testConfig())

	repo.On("DailyRevenue", mock.Anything, "c1", (*string)(nil), mock.Anything, mock.Anything).
		Return(nil, errors.New("timeout"))

	_, err := svc.Trends(context.Background(), "c1", nil, "7d")
	assert.Error(t, err)
}

func TestClassifyGrowth(t *testing.T) {
	mk := func(revs ...int64) []DataPoint {
		points := make([]DataPoint, len(revs))
		for i, r := range revs {
			points[i] = DataPoint{Revenue: r}
		}
		return points
	}

	t.Run("up", func(t *testing.T) {
		g := classifyGrowth(mk(100, 100, 150, 150))
		assert.Equal(t, GrowthUp, g.Direction)
		assert.InDelta(t, 50.0, g.Percent, 0.01)
	})

	t.Run("down", func(t *testing.T) {
		g := classifyGrowth(mk(200, 200, 100, 100))
		assert.Equal(t, GrowthDown, g.Direction)
		assert.InDelta(t, -50.0, g.Percent, 0.01)
	})

	t.Run("stable within five percent", func(t *testing.T) {
		g := classifyGrowth(mk(100, 100, 102, 102))
		assert.Equal(t, GrowthStable, g.Direction)
	})

	t.Run("zero first half with revenue later", func(t *testing.T) {
		g := classifyGrowth(mk(0, 0, 100, 100))
		assert.Equal(t, GrowthUp, g.Direction)
		assert.Equal(t, float64(100), g.Percent)
	})

	t.Run("no revenue at all", func(t *testing.T) {
		g := classifyGrowth(mk(0, 0, 0, 0))
		assert.Equal(t, GrowthStable, g.Direction)
		assert.Zero(t, g.Percent)
	})
}
