package model

import "time"

// Vendor rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Vendor is an external service provider that can be assigned tasks.
type Vendor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Service   string    `json:"service"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}
