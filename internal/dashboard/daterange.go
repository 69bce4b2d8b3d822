package dashboard

import (
	"time"

	"gymdash/internal/api"
)

const (
	maxRangeDays = 366
	msPerDay     = 24 * 60 * 60 * 1000
)

// nowFunc is swapped out in tests.
var nowFunc = time.Now

var rangeTokenDays = map[string]int{
	"7d":  7,
	"14d": 14,
	"30d": 30,
}

// DateRange is an inclusive, resolved time window.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Days returns the whole-day span of the range, partial days rounded up,
// never less than 1.
func (r DateRange) Days() int {
	d := diffDays(r.From, r.To)
	if d < 1 {
		return 1
	}
	return d
}

// ResolveDateRange produces one concrete window from either an explicit
// from/to pair or a symbolic range token. An explicit pair wins when both
// bounds are present; otherwise the token (default 7d) is anchored at now,
// subtracting calendar days rather than a fixed multiple of 24h.
func ResolveDateRange(from, to, rangeToken string) (DateRange, error) {
	if from != "" && to != "" {
		return resolveExplicit(from, to)
	}

	days, ok := rangeTokenDays[rangeToken]
	if !ok {
		days = 7
	}
	now := nowFunc()
	return DateRange{From: now.AddDate(0, 0, -days), To: now}, nil
}

func resolveExplicit(from, to string) (DateRange, error) {
	f, errF := time.Parse(time.RFC3339, from)
	t, errT := time.Parse(time.RFC3339, to)
	if errF != nil || errT != nil {
		return DateRange{}, api.NewError(api.CodeInvalidRange, "Invalid date format", "from")
	}

	if f.After(t) {
		return DateRange{}, api.NewError(api.CodeInvalidRange, "from date must be before or equal to to date", "from")
	}

	if diffDays(f, t) > maxRangeDays {
		return DateRange{}, api.NewError(api.CodeInvalidRange, "Date range cannot exceed 366 days", "from")
	}

	return DateRange{From: f, To: t}, nil
}

// diffDays counts whole days between from and to; sub-day remainders count
// as a full day. Exactly 366 days is allowed by the resolver, 367 is not.
func diffDays(from, to time.Time) int {
	ms := to.Sub(from).Milliseconds()
	if ms <= 0 {
		return 0
	}
	return int((ms + msPerDay - 1) / msPerDay)
}
