package location

import "time"

type Location struct {
	ID        string    `db:"id" json:"id"`
	CompanyID string    `db:"company_id" json:"-"`
	Name      string    `db:"name" json:"name"`
	Address   string    `db:"address" json:"address"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type CreateLocationRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
}
