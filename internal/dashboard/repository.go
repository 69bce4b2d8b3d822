package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// repository runs the read-only aggregate queries behind the dashboard.
// Every query filters by company_id; a cross-tenant read here is a defect.
type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountActiveVisits(ctx context.Context, companyID string, locationID *string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM visits
		WHERE company_id = $1 AND checked_out_at IS NULL
	`
	args := []interface{}{companyID}

	if locationID != nil {
		query += " AND location_id = $2"
		args = append(args, *locationID)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) CountLocations(ctx context.Context, companyID string) (int, error) {
	query := `SELECT COUNT(*) FROM locations WHERE company_id = $1`

	var count int
	if err := r.db.GetContext(ctx, &count, query, companyID); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) CountExpiringMemberships(ctx context.Context, companyID string, before time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM memberships
		WHERE company_id = $1 AND status = 'ACTIVE' AND expires_at <= $2
	`

	var count int
	if err := r.db.GetContext(ctx, &count, query, companyID, before); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) RevenueTotals(ctx context.Context, companyID string, locationID *string, from, to time.Time) (int64, int, error) {
	query := `
		SELECT COALESCE(SUM(amount_cents), 0) AS total_cents, COUNT(*) AS tx_count
		FROM payments
		WHERE company_id = $1 AND status = 'completed' AND paid_at BETWEEN $2 AND $3
	`
	args := []interface{}{companyID, from, to}

	if locationID != nil {
		query += " AND location_id = $4"
		args = append(args, *locationID)
	}

	var row struct {
		TotalCents int64 `db:"total_cents"`
		TxCount    int   `db:"tx_count"`
	}
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return 0, 0, err
	}
	return row.TotalCents, row.TxCount, nil
}

func (r *repository) CountClassesStarting(ctx context.Context, companyID string, locationID *string, from, to time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM classes
		WHERE company_id = $1 AND starts_at BETWEEN $2 AND $3
	`
	args := []interface{}{companyID, from, to}

	if locationID != nil {
		query += " AND location_id = $4"
		args = append(args, *locationID)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) RecentActivity(ctx context.Context, companyID string, locationID *string, since time.Time, limit int) ([]ActivityEvent, error) {
	locationFilter := ""
	args := []interface{}{companyID, since, limit}
	if locationID != nil {
		locationFilter = " AND v.location_id = $4"
		args = append(args, *locationID)
	}

	query := fmt.Sprintf(`
		SELECT v.id AS visit_id, v.membership_id, m.member_name, v.location_id,
		       'check_in' AS event_type, v.checked_in_at AS occurred_at
		FROM visits v
		JOIN memberships m ON m.id = v.membership_id
		WHERE v.company_id = $1 AND v.checked_in_at >= $2%s
		UNION ALL
		SELECT v.id AS visit_id, v.membership_id, m.member_name, v.location_id,
		       'check_out' AS event_type, v.checked_out_at AS occurred_at
		FROM visits v
		JOIN memberships m ON m.id = v.membership_id
		WHERE v.company_id = $1 AND v.checked_out_at IS NOT NULL AND v.checked_out_at >= $2%s
		ORDER BY occurred_at DESC
		LIMIT $3
	`, locationFilter, locationFilter)

	events := []ActivityEvent{}
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, err
	}
	return events, nil
}
