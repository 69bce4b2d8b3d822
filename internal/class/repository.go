package class

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListStartingBetween(ctx context.Context, companyID string, locationID *string, from, to time.Time) ([]ClassWithBookings, error) {
	query := `
		SELECT c.id, c.company_id, c.location_id, c.title, c.starts_at, c.capacity, c.created_at,
		       l.name AS gym_name,
		       COUNT(b.id) FILTER (WHERE b.status IN ('reserved', 'confirmed')) AS booked_count
		FROM classes c
		JOIN locations l ON l.id = c.location_id
		LEFT JOIN bookings b ON b.class_id = c.id
		WHERE c.company_id = $1 AND c.starts_at BETWEEN $2 AND $3
	`
	args := []interface{}{companyID, from, to}

	if locationID != nil {
		query += " AND c.location_id = $4"
		args = append(args, *locationID)
	}

	query += `
		GROUP BY c.id, l.name
		ORDER BY c.starts_at ASC
	`

	classes := []ClassWithBookings{}
	if err := r.db.SelectContext(ctx, &classes, query, args...); err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *repository) CreateClass(ctx context.Context, companyID, locationID, title string, startsAt time.Time, capacity int) (*Class, error) {
	query := `
		INSERT INTO classes (id, company_id, location_id, title, starts_at, capacity)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, company_id, location_id, title, starts_at, capacity, created_at
	`

	var c Class
	err := r.db.GetContext(ctx, &c, query, uuid.NewString(), companyID, locationID, title, startsAt, capacity)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) LocationExists(ctx context.Context, companyID, locationID string) (bool, error) {
	query := `SELECT COUNT(*) FROM locations WHERE id = $1 AND company_id = $2`

	var count int
	if err := r.db.GetContext(ctx, &count, query, locationID, companyID); err != nil {
		return false, err
	}
	return count > 0, nil
}
