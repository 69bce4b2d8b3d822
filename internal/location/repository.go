package location

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrLocationNotFound = errors.New("location not found")

type Repository interface {
	ListByCompany(ctx context.Context, companyID string) ([]Location, error)
	GetByID(ctx context.Context, companyID, locationID string) (*Location, error)
	Create(ctx context.Context, companyID, name, address string) (*Location, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListByCompany(ctx context.Context, companyID string) ([]Location, error) {
	locations := []Location{}
	err := r.db.SelectContext(ctx, &locations, `
		SELECT id, company_id, name, address, created_at
		FROM locations
		WHERE company_id = $1
		ORDER BY name ASC
	`, companyID)
	if err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *repository) GetByID(ctx context.Context, companyID, locationID string) (*Location, error) {
	l := &Location{}
	err := r.db.GetContext(ctx, l, `
		SELECT id, company_id, name, address, created_at
		FROM locations
		WHERE id = $1 AND company_id = $2
	`, locationID, companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}
	return l, nil
}

func (r *repository) Create(ctx context.Context, companyID, name, address string) (*Location, error) {
	l := &Location{}
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO locations (id, company_id, name, address)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, company_id, name, address, created_at`,
		uuid.NewString(), companyID, name, address,
	).StructScan(l)
	if err != nil {
		return nil, err
	}
	return l, nil
}
