package visit

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var (
	ErrMembershipNotFound = errors.New("membership not found")
	ErrAlreadyCheckedIn   = errors.New("membership already has an open visit")
	ErrVisitNotFound      = errors.New("visit not found")
	ErrAlreadyCheckedOut  = errors.New("visit already checked out")
)

type Repository interface {
	CheckIn(ctx context.Context, companyID, membershipID string, locationID *string) (*Visit, error)
	CheckOut(ctx context.Context, companyID, visitID string) (*Visit, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// CheckIn opens a visit for an active membership. The membership row is
// locked for the duration of the transaction so two concurrent check-ins
// cannot both pass the open-visit guard.
func (r *repository) CheckIn(ctx context.Context, companyID, membershipID string, locationID *string) (*Visit, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var lockedID string
	err = tx.QueryRowxContext(ctx,
		`SELECT id
		 FROM memberships
		 WHERE id = $1 AND company_id = $2 AND status = 'ACTIVE'
		 FOR UPDATE`,
		membershipID, companyID,
	).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMembershipNotFound
		}
		return nil, err
	}

	var open int
	err = tx.QueryRowxContext(ctx,
		`SELECT COUNT(*)
		 FROM visits
		 WHERE membership_id = $1 AND checked_out_at IS NULL`,
		membershipID,
	).Scan(&open)
	if err != nil {
		return nil, err
	}
	if open > 0 {
		return nil, ErrAlreadyCheckedIn
	}

	v := &Visit{}
	err = tx.QueryRowxContext(ctx,
		`INSERT INTO visits (id, company_id, membership_id, location_id, checked_in_at)
		 VALUES ($1, $2, $3, $4, NOW())
		 RETURNING id, company_id, membership_id, location_id, checked_in_at, checked_out_at`,
		uuid.NewString(), companyID, membershipID, locationID,
	).StructScan(v)
	if err != nil {
		return nil, err
	}

	return v, tx.Commit()
}

// CheckOut closes an open visit. Closing an already-closed visit is rejected
// rather than silently re-stamped.
func (r *repository) CheckOut(ctx context.Context, companyID, visitID string) (*Visit, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	v := &Visit{}
	err = tx.QueryRowxContext(ctx,
		`SELECT id, company_id, membership_id, location_id, checked_in_at, checked_out_at
		 FROM visits
		 WHERE id = $1 AND company_id = $2
		 FOR UPDATE`,
		visitID, companyID,
	).StructScan(v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVisitNotFound
		}
		return nil, err
	}
	if v.CheckedOutAt != nil {
		return nil, ErrAlreadyCheckedOut
	}

	err = tx.QueryRowxContext(ctx,
		`UPDATE visits
		 SET checked_out_at = NOW()
		 WHERE id = $1
		 RETURNING checked_out_at`,
		v.ID,
	).Scan(&v.CheckedOutAt)
	if err != nil {
		return nil, err
	}

	return v, tx.Commit()
}
