package class

import (
	"context"
	"errors"
	"time"

	"gymdash/internal/config"
	"gymdash/internal/logger"
	"gymdash/internal/metrics"
)

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrInvalidClass     = errors.New("invalid class")
)

// nowFunc is swapped out in tests.
var nowFunc = time.Now

type Service interface {
	ListToday(ctx context.Context, companyID string, locationID *string, date *time.Time) (*TodayResponse, error)
	CreateClass(ctx context.Context, companyID string, req CreateClassRequest) (*Class, error)
}

type service struct {
	repo     Repository
	duration time.Duration
}

func NewService(repo Repository, cfg *config.Config) Service {
	return &service{
		repo:     repo,
		duration: cfg.ClassDuration,
	}
}

// ListToday returns the classes starting within the requested calendar day,
// annotated with booked counts and a derived status. A failed read degrades
// to an empty day rather than an error, matching the dashboard's tolerance
// for malformed upstream data.
func (s *service) ListToday(ctx context.Context, companyID string, locationID *string, date *time.Time) (*TodayResponse, error) {
	now := nowFunc()
	day := now
	if date != nil {
		day = *date
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Millisecond)

	resp := &TodayResponse{
		Classes:    []ClassWithBookings{},
		Date:       dayStart.Format("2006-01-02"),
		LocationID: locationID,
	}

	classes, err := s.repo.ListStartingBetween(ctx, companyID, locationID, dayStart, dayEnd)
	if err != nil {
		logger.WithError(err).Error("classes-today query degraded to empty")
		metrics.RecordDegradedField("classes_today")
		return resp, nil
	}

	for i := range classes {
		classes[i].Status = s.deriveStatus(classes[i].StartsAt, now)
		switch classes[i].Status {
		case StatusUpcoming:
			resp.Summary.Upcoming++
		case StatusInProgress:
			resp.Summary.InProgress++
		case StatusCompleted:
			resp.Summary.Completed++
		}
	}

	resp.Classes = classes
	resp.Total = len(classes)
	return resp, nil
}

func (s *service) CreateClass(ctx context.Context, companyID string, req CreateClassRequest) (*Class, error) {
	exists, err := s.repo.LocationExists(ctx, companyID, req.LocationID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrLocationNotFound
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		return nil, ErrInvalidClass
	}

	if req.Capacity <= 0 {
		return nil, ErrInvalidClass
	}

	return s.repo.CreateClass(ctx, companyID, req.LocationID, req.Title, startsAt, req.Capacity)
}

// deriveStatus estimates the class window from the configured duration.
func (s *service) deriveStatus(startsAt, now time.Time) string {
	if now.Before(startsAt) {
		return StatusUpcoming
	}
	if now.After(startsAt.Add(s.duration)) {
		return StatusCompleted
	}
	return StatusInProgress
}
