package dashboard

import (
	"testing"
	"time"

	"gymdash/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withFrozenNow(t *testing.T, now time.Time) {
	t.Helper()
	old := nowFunc
	nowFunc = func() time.Time { return now }
	t.Cleanup(func() { nowFunc = old })
}

func TestResolveDateRangeExplicit(t *testing.T) {
	t.Run("valid pair returned unmodified", func(t *testing.T) {
		rng, err := ResolveDateRange("2025-08-10T00:00:00.000Z", "2025-08-17T00:00:00.000Z", "")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC), rng.From.UTC())
		assert.Equal(t, time.Date(2025, 8, 17, 0, 0, 0, 0, time.UTC), rng.To.UTC())
	})

	t.Run("from after to", func(t *testing.T) {
		_, err := ResolveDateRange("2025-08-17T00:00:00.000Z", "2025-08-10T00:00:00.000Z", "")
		apiErr := asAPIError(t, err)
		assert.Equal(t, api.CodeInvalidRange, apiErr.Code)
		assert.Contains(t, apiErr.Message, "from date must be before")
	})

	t.Run("zero-width range allowed", func(t *testing.T) {
		rng, err := ResolveDateRange("2025-08-10T12:00:00Z", "2025-08-10T12:00:00Z", "")
		require.NoError(t, err)
		assert.Equal(t, rng.From, rng.To)
		assert.Equal(t, 1, rng.Days())
	})

	t.Run("malformed dates", func(t *testing.T) {
		for _, pair := range [][2]string{
			{"08/10/2025", "2025-08-17T00:00:00Z"},
			{"2025-08-10T00:00:00Z", "next tuesday"},
		} {
			_, err := ResolveDateRange(pair[0], pair[1], "")
			apiErr := asAPIError(t, err)
			assert.Equal(t, api.CodeInvalidRange, apiErr.Code)
			assert.Equal(t, "Invalid date format", apiErr.Message)
		}
	})

	t.Run("exactly 366 days allowed", func(t *testing.T) {
		_, err := ResolveDateRange("2024-01-01T00:00:00Z", "2025-01-01T00:00:00Z", "")
		assert.NoError(t, err)
	})

	t.Run("367 days rejected", func(t *testing.T) {
		_, err := ResolveDateRange("2024-01-01T00:00:00Z", "2025-01-02T00:00:00Z", "")
		apiErr := asAPIError(t, err)
		assert.Equal(t, api.CodeInvalidRange, apiErr.Code)
		assert.Contains(t, apiErr.Message, "366 days")
	})

	t.Run("sub-day overflow counts as a full day", func(t *testing.T) {
		// 366 days plus one hour rounds up to 367.
		_, err := ResolveDateRange("2024-01-01T00:00:00Z", "2025-01-01T01:00:00Z", "")
		apiErr := asAPIError(t, err)
		assert.Contains(t, apiErr.Message, "366 days")
	})
}

func TestResolveDateRangeToken(t *testing.T) {
	now := time.Date(2025, 8, 20, 15, 30, 0, 0, time.UTC)
	withFrozenNow(t, now)

	t.Run("token windows end at now", func(t *testing.T) {
		for token, days := range map[string]int{"7d": 7, "14d": 14, "30d": 30} {
			rng, err := ResolveDateRange("", "", token)
			require.NoError(t, err)
			assert.Equal(t, now, rng.To, token)
			assert.Equal(t, now.AddDate(0, 0, -days), rng.From, token)
		}
	})

	t.Run("empty token falls back to 7d", func(t *testing.T) {
		rng, err := ResolveDateRange("", "", "")
		require.NoError(t, err)
		assert.Equal(t, now.AddDate(0, 0, -7), rng.From)
	})

	t.Run("single explicit bound falls back to token", func(t *testing.T) {
		rng, err := ResolveDateRange("2025-08-01T00:00:00Z", "", "14d")
		require.NoError(t, err)
		assert.Equal(t, now.AddDate(0, 0, -14), rng.From)
	})
}

func TestDateRangeDays(t *testing.T) {
	mk := func(from, to string) DateRange {
		f, _ := time.Parse(time.RFC3339, from)
		tt, _ := time.Parse(time.RFC3339, to)
		return DateRange{From: f, To: tt}
	}

	assert.Equal(t, 7, mk("2025-08-10T00:00:00Z", "2025-08-17T00:00:00Z").Days())
	assert.Equal(t, 8, mk("2025-08-10T00:00:00Z", "2025-08-17T00:00:01Z").Days())
	assert.Equal(t, 1, mk("2025-08-10T00:00:00Z", "2025-08-10T00:00:00Z").Days())
}
