package payment

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	DailyRevenue(ctx context.Context, companyID string, locationID *string, from, to time.Time) ([]DailyRevenue, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) DailyRevenue(ctx context.Context, companyID string, locationID *string, from, to time.Time) ([]DailyRevenue, error) {
	query := `
		SELECT DATE(paid_at) AS bucket,
		       COALESCE(SUM(amount_cents), 0) AS total_cents,
		       COUNT(*) AS tx_count
		FROM payments
		WHERE company_id = $1 AND status = 'completed' AND paid_at BETWEEN $2 AND $3
	`
	args := []interface{}{companyID, from, to}

	if locationID != nil {
		query += " AND location_id = $4"
		args = append(args, *locationID)
	}

	query += `
		GROUP BY DATE(paid_at)
		ORDER BY bucket
	`

	rows := []DailyRevenue{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}
