package domain

import "time"

// Client is an earnings case study shown on the marketing site. It is not a
// customer account; the record carries only the published figures.
type Client struct {
	ID         int64     `json:"id,string" form:"id"`
	Name       string    `gorm:"index" json:"name" form:"name"`
	Location   string    `json:"location" form:"location"`
	Investment float64   `json:"investment" form:"investment"`
	Earnings   float64   `json:"earnings" form:"earnings"`
	Period     int       `json:"period" form:"period"` // days
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Client) TableName() string {
	return "clients"
}

// Roi returns the client's return on investment as a percentage.
func (c Client) Roi() float64 {
	return Roi(c.Earnings, c.Investment)
}
