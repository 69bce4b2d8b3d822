package staff

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gymdash/internal/config"
)

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrInvalidShift     = errors.New("invalid shift")
)

// nowFunc is swapped out in tests.
var nowFunc = time.Now

type Service interface {
	Coverage(ctx context.Context, companyID string, locationID *string, date *time.Time) (*CoverageResponse, error)
	CreateShift(ctx context.Context, companyID string, req CreateShiftRequest) (*Shift, error)
}

type service struct {
	repo     Repository
	dayStart int
	dayEnd   int
	roles    []string
}

func NewService(repo Repository, cfg *config.Config) Service {
	return &service{
		repo:     repo,
		dayStart: cfg.BusinessDayStart,
		dayEnd:   cfg.BusinessDayEnd,
		roles:    cfg.CoverageRoles,
	}
}

type interval struct {
	start time.Time
	end   time.Time
}

// Coverage reports, per required role, the stretches of the business day with
// nobody on shift. Shifts outside business hours are clamped to the window
// before merging.
func (s *service) Coverage(ctx context.Context, companyID string, locationID *string, date *time.Time) (*CoverageResponse, error) {
	day := nowFunc()
	if date != nil {
		day = *date
	}

	windowStart := time.Date(day.Year(), day.Month(), day.Day(), s.dayStart, 0, 0, 0, day.Location())
	windowEnd := time.Date(day.Year(), day.Month(), day.Day(), s.dayEnd, 0, 0, 0, day.Location())

	shifts, err := s.repo.ListShiftsBetween(ctx, companyID, locationID, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	byRole := make(map[string][]interval)
	for _, sh := range shifts {
		iv, ok := clamp(interval{start: sh.StartsAt, end: sh.EndsAt}, windowStart, windowEnd)
		if !ok {
			continue
		}
		byRole[sh.Role] = append(byRole[sh.Role], iv)
	}

	resp := &CoverageResponse{
		Date:          windowStart.Format("2006-01-02"),
		LocationID:    locationID,
		BusinessHours: fmt.Sprintf("%02d:00-%02d:00", s.dayStart, s.dayEnd),
		Gaps:          []Gap{},
	}

	for _, role := range s.roles {
		covered := merge(byRole[role])
		for _, g := range gaps(windowStart, windowEnd, covered) {
			resp.Gaps = append(resp.Gaps, Gap{Role: role, Start: g.start, End: g.end})
			resp.TotalGapMinutes += int(g.end.Sub(g.start).Minutes())
		}
	}

	return resp, nil
}

func (s *service) CreateShift(ctx context.Context, companyID string, req CreateShiftRequest) (*Shift, error) {
	exists, err := s.repo.LocationExists(ctx, companyID, req.LocationID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrLocationNotFound
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		return nil, ErrInvalidShift
	}
	endsAt, err := time.Parse(time.RFC3339, req.EndsAt)
	if err != nil {
		return nil, ErrInvalidShift
	}
	if !endsAt.After(startsAt) {
		return nil, ErrInvalidShift
	}

	return s.repo.CreateShift(ctx, companyID, req.LocationID, req.StaffName, req.Role, startsAt, endsAt)
}

func clamp(iv interval, start, end time.Time) (interval, bool) {
	if iv.start.Before(start) {
		iv.start = start
	}
	if iv.end.After(end) {
		iv.end = end
	}
	if !iv.end.After(iv.start) {
		return interval{}, false
	}
	return iv, true
}

// merge collapses overlapping or touching intervals into a sorted
// non-overlapping set.
func merge(ivs []interval) []interval {
	if len(ivs) == 0 {
		return nil
	}
	sort.Slice(ivs, func(i, j int) bool { return ivs[i].start.Before(ivs[j].start) })

	merged := []interval{ivs[0]}
	for _, iv := range ivs[1:] {
		last := &merged[len(merged)-1]
		if iv.start.After(last.end) {
			merged = append(merged, iv)
			continue
		}
		if iv.end.After(last.end) {
			last.end = iv.end
		}
	}
	return merged
}

// gaps returns the parts of [start, end] not covered by the merged set.
func gaps(start, end time.Time, covered []interval) []interval {
	var out []interval
	cursor := start
	for _, iv := range covered {
		if iv.start.After(cursor) {
			out = append(out, interval{start: cursor, end: iv.start})
		}
		if iv.end.After(cursor) {
			cursor = iv.end
		}
	}
	if end.After(cursor) {
		out = append(out, interval{start: cursor, end: end})
	}
	return out
}
