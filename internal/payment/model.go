package payment

import "time"

const (
	GrowthUp     = "up"
	GrowthDown   = "down"
	GrowthStable = "stable"
)

// DailyRevenue is one day's bucket of completed payments.
type DailyRevenue struct {
	Bucket     time.Time `db:"bucket" json:"-"`
	TotalCents int64     `db:"total_cents" json:"-"`
	TxCount    int       `db:"tx_count" json:"-"`
}

type DataPoint struct {
	Date         string `json:"date"`
	Revenue      int64  `json:"revenue"` // major currency units
	Transactions int    `json:"transactions"`
}

type Growth struct {
	Direction string  `json:"direction"`
	Percent   float64 `json:"percent"`
}

type TrendsResponse struct {
	TotalRevenue int64       `json:"totalRevenue"`
	Currency     string      `json:"currency"`
	Period       string      `json:"period"`
	DataPoints   []DataPoint `json:"dataPoints"`
	Growth       Growth      `json:"growth"`
}
