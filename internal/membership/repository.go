package membership

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	ListExpiring(ctx context.Context, companyID string, before time.Time) ([]Membership, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListExpiring(ctx context.Context, companyID string, before time.Time) ([]Membership, error) {
	query := `
		SELECT id, company_id, member_name, status, expires_at, created_at
		FROM memberships
		WHERE company_id = $1 AND status = 'ACTIVE' AND expires_at <= $2
		ORDER BY expires_at ASC
	`

	memberships := []Membership{}
	if err := r.db.SelectContext(ctx, &memberships, query, companyID, before); err != nil {
		return nil, err
	}
	return memberships, nil
}
