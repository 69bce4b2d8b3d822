package location

import "context"

type Service interface {
	List(ctx context.Context, companyID string) ([]Location, error)
	Get(ctx context.Context, companyID, locationID string) (*Location, error)
	Create(ctx context.Context, companyID string, req CreateLocationRequest) (*Location, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, companyID string) ([]Location, error) {
	return s.repo.ListByCompany(ctx, companyID)
}

func (s *service) Get(ctx context.Context, companyID, locationID string) (*Location, error) {
	return s.repo.GetByID(ctx, companyID, locationID)
}

func (s *service) Create(ctx context.Context, companyID string, req CreateLocationRequest) (*Location, error) {
	return s.repo.Create(ctx, companyID, req.Name, req.Address)
}
