package model

import "time"

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"date_joined"`

	Location    Location     `json:"location"`
	Coordinates *Coordinates `json:"coordinates"` // nil until the location is geocoded
}

type Location struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Consultation records that a user viewed an item. Rows are never updated.
type Consultation struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	ItemID    string    `json:"item"`
	CreatedAt time.Time `json:"date"`
}
