package visit

import (
	"context"

	"gymdash/internal/logger"
	"gymdash/internal/metrics"
)

type Service interface {
	CheckIn(ctx context.Context, companyID string, req CheckInRequest) (*Visit, error)
	CheckOut(ctx context.Context, companyID, visitID string) (*Visit, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CheckIn(ctx context.Context, companyID string, req CheckInRequest) (*Visit, error) {
	v, err := s.repo.CheckIn(ctx, companyID, req.MembershipID, req.LocationID)
	if err != nil {
		return nil, err
	}

	logger.WithFields(map[string]interface{}{
		"visit_id":      v.ID,
		"membership_id": v.MembershipID,
	}).Info("member checked in")
	metrics.RecordVisitEvent("check_in")
	return v, nil
}

func (s *service) CheckOut(ctx context.Context, companyID, visitID string) (*Visit, error) {
	v, err := s.repo.CheckOut(ctx, companyID, visitID)
	if err != nil {
		return nil, err
	}

	logger.WithFields(map[string]interface{}{
		"visit_id":      v.ID,
		"membership_id": v.MembershipID,
	}).Info("member checked out")
	metrics.RecordVisitEvent("check_out")
	return v, nil
}
