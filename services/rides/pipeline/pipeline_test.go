package pipeline

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twende/twende/internal/pkg/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func testRides() []models.Ride {
	return []models.Ride{
		{RideID: uuid.New(), PricePerSeat: 50000, AvailableSeats: 3, DepartureTime: day("2024-06-01").Add(8 * time.Hour)},
		{RideID: uuid.New(), PricePerSeat: 30000, AvailableSeats: 1, DepartureTime: day("2024-06-01").Add(10 * time.Hour)},
		{RideID: uuid.New(), PricePerSeat: 40000, AvailableSeats: 5, DepartureTime: day("2024-06-02").Add(7 * time.Hour)},
	}
}

func TestApply_MinSeatsAndPriceAsc(t *testing.T) {
	rides := testRides()

	result := Apply(rides, FilterSpec{MinSeats: intPtr(2)}, SortPriceAsc)

	require.Len(t, result, 2)
	assert.Equal(t, 40000.0, result[0].PricePerSeat)
	assert.Equal(t, 50000.0, result[1].PricePerSeat)
}

func TestApply_ConjunctiveFilters(t *testing.T) {
	rides := testRides()

	d := day("2024-06-01")
	result := Apply(rides, FilterSpec{
		MinPrice: floatPtr(35000),
		MaxPrice: floatPtr(60000),
		MinSeats: intPtr(2),
		Date:     &d,
	}, "")

	// Only the 50000/3-seat ride departs on 2024-06-01 with >=2 seats
	require.Len(t, result, 1)
	assert.Equal(t, 50000.0, result[0].PricePerSeat)
}

func TestApply_InclusiveBounds(t *testing.T) {
	rides := testRides()

	result := Apply(rides, FilterSpec{
		MinPrice: floatPtr(30000),
		MaxPrice: floatPtr(50000),
	}, "")

	assert.Len(t, result, 3)
}

func TestApply_AbsentFiltersImposeNoConstraint(t *testing.T) {
	rides := testRides()

	result := Apply(rides, FilterSpec{}, "")

	assert.Equal(t, rides, result)
}

func TestApply_ContradictoryBoundsYieldEmpty(t *testing.T) {
	rides := testRides()

	result := Apply(rides, FilterSpec{
		MinPrice: floatPtr(50000),
		MaxPrice: floatPtr(30000),
	}, SortPriceAsc)

	assert.Empty(t, result)
}

func TestApply_EmptyInput(t *testing.T) {
	assert.Empty(t, Apply(nil, FilterSpec{MinSeats: intPtr(1)}, SortPriceAsc))
	assert.Empty(t, Apply([]models.Ride{}, FilterSpec{}, SortPriceDesc))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	rides := testRides()
	original := make([]models.Ride, len(rides))
	copy(original, rides)

	Apply(rides, FilterSpec{}, SortPriceAsc)

	assert.Equal(t, original, rides)
}

func TestApply_Idempotent(t *testing.T) {
	rides := testRides()
	filters := FilterSpec{MinSeats: intPtr(1)}

	once := Apply(rides, filters, SortDateDesc)
	twice := Apply(once, filters, SortDateDesc)

	assert.Equal(t, once, twice)
}

func TestApply_StableSortPreservesInputOrderOnTies(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	third := uuid.New()
	rides := []models.Ride{
		{RideID: first, PricePerSeat: 20000, AvailableSeats: 2},
		{RideID: second, PricePerSeat: 20000, AvailableSeats: 4},
		{RideID: third, PricePerSeat: 20000, AvailableSeats: 1},
	}

	result := Apply(rides, FilterSpec{}, SortPriceAsc)

	require.Len(t, result, 3)
	assert.Equal(t, first, result[0].RideID)
	assert.Equal(t, second, result[1].RideID)
	assert.Equal(t, third, result[2].RideID)
}

func TestApply_SortDirections(t *testing.T) {
	rides := testRides()

	byPriceDesc := Apply(rides, FilterSpec{}, SortPriceDesc)
	assert.Equal(t, 50000.0, byPriceDesc[0].PricePerSeat)

	bySeatsAsc := Apply(rides, FilterSpec{}, SortSeatsAsc)
	assert.Equal(t, 1, bySeatsAsc[0].AvailableSeats)

	bySeatsDesc := Apply(rides, FilterSpec{}, SortSeatsDesc)
	assert.Equal(t, 5, bySeatsDesc[0].AvailableSeats)

	byDateAsc := Apply(rides, FilterSpec{}, SortDateAsc)
	assert.True(t, byDateAsc[0].DepartureTime.Before(byDateAsc[2].DepartureTime))
}

func TestApply_UnknownSortKeyKeepsInputOrder(t *testing.T) {
	rides := testRides()

	result := Apply(rides, FilterSpec{}, ParseSortKey("distance_asc"))

	assert.Equal(t, rides, result)
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortPriceAsc, ParseSortKey("price_asc"))
	assert.Equal(t, SortSeatsDesc, ParseSortKey("seats_desc"))
	assert.Equal(t, SortKey(""), ParseSortKey("bogus"))
}
