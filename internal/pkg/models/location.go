package models

import "time"

// LocationPoint is an immutable coordinate plus address value used as a
// search parameter. Coordinates are treated as opaque; geocoding is an
// external collaborator.
type LocationPoint struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	Address   string  `json:"address" db:"address"`
}

// City is static reference data selected as an origin/destination proxy
// when precise coordinates are unavailable.
type City struct {
	CityID int    `json:"city_id" db:"city_id"`
	Name   string `json:"name" db:"name"`
	Region string `json:"region" db:"region"`
}

// RecentLocation is a previously searched location kept per user.
type RecentLocation struct {
	Point      LocationPoint `json:"point"`
	SearchedAt time.Time     `json:"searched_at"`
}
