// Package pipeline implements the client-facing filter/sort pass applied
// to a ride search snapshot. It is pure: no I/O, no mutation of its
// input, and by contract it never returns an error — a malformed filter
// yields an empty result instead.
package pipeline

import (
	"sort"
	"time"

	"github.com/twende/twende/internal/pkg/models"
)

// FilterSpec narrows a result set. Nil fields impose no constraint.
type FilterSpec struct {
	MinPrice *float64
	MaxPrice *float64
	MinSeats *int
	// Date matches the departure's calendar day (year, month, day) in
	// the date's own location; it is not a range.
	Date *time.Time
}

// SortKey selects the single field and direction used to order results.
type SortKey string

const (
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortDateAsc   SortKey = "date_asc"
	SortDateDesc  SortKey = "date_desc"
	SortSeatsAsc  SortKey = "seats_asc"
	SortSeatsDesc SortKey = "seats_desc"
)

// ParseSortKey maps a raw query value onto a SortKey. Unknown values
// preserve the input order.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortPriceAsc, SortPriceDesc, SortDateAsc, SortDateDesc, SortSeatsAsc, SortSeatsDesc:
		return SortKey(raw)
	default:
		return ""
	}
}

// Apply filters rides conjunctively against every present field of the
// spec, then orders the survivors by the sort key. The sort is stable,
// so input order breaks ties. The input slice is never modified.
func Apply(rides []models.Ride, filters FilterSpec, key SortKey) []models.Ride {
	// Contradictory bounds yield an empty set, keeping Apply total.
	if filters.MinPrice != nil && filters.MaxPrice != nil && *filters.MinPrice > *filters.MaxPrice {
		return []models.Ride{}
	}

	out := make([]models.Ride, 0, len(rides))
	for _, ride := range rides {
		if matches(ride, filters) {
			out = append(out, ride)
		}
	}

	sortRides(out, key)
	return out
}

func matches(ride models.Ride, filters FilterSpec) bool {
	if filters.MinPrice != nil && ride.PricePerSeat < *filters.MinPrice {
		return false
	}
	if filters.MaxPrice != nil && ride.PricePerSeat > *filters.MaxPrice {
		return false
	}
	if filters.MinSeats != nil && ride.AvailableSeats < *filters.MinSeats {
		return false
	}
	if filters.Date != nil && !sameDay(ride.DepartureTime, *filters.Date) {
		return false
	}
	return true
}

func sameDay(t, day time.Time) bool {
	y1, m1, d1 := t.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func sortRides(rides []models.Ride, key SortKey) {
	var less func(a, b models.Ride) bool

	switch key {
	case SortPriceAsc:
		less = func(a, b models.Ride) bool { return a.PricePerSeat < b.PricePerSeat }
	case SortPriceDesc:
		less = func(a, b models.Ride) bool { return a.PricePerSeat > b.PricePerSeat }
	case SortDateAsc:
		less = func(a, b models.Ride) bool { return a.DepartureTime.Before(b.DepartureTime) }
	case SortDateDesc:
		less = func(a, b models.Ride) bool { return a.DepartureTime.After(b.DepartureTime) }
	case SortSeatsAsc:
		less = func(a, b models.Ride) bool { return a.AvailableSeats < b.AvailableSeats }
	case SortSeatsDesc:
		less = func(a, b models.Ride) bool { return a.AvailableSeats > b.AvailableSeats }
	default:
		return
	}

	sort.SliceStable(rides, func(i, j int) bool { return less(rides[i], rides[j]) })
}
