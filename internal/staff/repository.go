package staff

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repository interface {
	ListShiftsBetween(ctx context.Context, companyID string, locationID *string, from, to time.Time) ([]Shift, error)
	CreateShift(ctx context.Context, companyID, locationID, staffName, role string, startsAt, endsAt time.Time) (*Shift, error)
	LocationExists(ctx context.Context, companyID, locationID string) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// ListShiftsBetween returns every shift overlapping [from, to].
func (r *repository) ListShiftsBetween(ctx context.Context, companyID string, locationID *string, from, to time.Time) ([]Shift, error) {
	query := `
		SELECT id, company_id, location_id, staff_name, role, starts_at, ends_at
		FROM staff_shifts
		WHERE company_id = $1 AND starts_at < $3 AND ends_at > $2
	`
	args := []interface{}{companyID, from, to}
	if locationID != nil {
		query += ` AND location_id = $4`
		args = append(args, *locationID)
	}
	query += ` ORDER BY starts_at ASC`

	shifts := []Shift{}
	if err := r.db.SelectContext(ctx, &shifts, query, args...); err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *repository) CreateShift(ctx context.Context, companyID, locationID, staffName, role string, startsAt, endsAt time.Time) (*Shift, error) {
	s := &Shift{}
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO staff_shifts (id, company_id, location_id, staff_name, role, starts_at, ends_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, company_id, location_id, staff_name, role, starts_at, ends_at`,
		uuid.NewString(), companyID, locationID, staffName, role, startsAt, endsAt,
	).StructScan(s)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *repository) LocationExists(ctx context.Context, companyID, locationID string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM locations WHERE id = $1 AND company_id = $2`,
		locationID, companyID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
