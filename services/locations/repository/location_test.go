package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twende/twende/internal/pkg/constants"
	"github.com/twende/twende/internal/pkg/database"
	"github.com/twende/twende/internal/pkg/models"
)

func setupLocationRepo(t *testing.T) (*LocationRepo, sqlmock.Sqlmock, *miniredis.Miniredis) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	redisClient, err := database.NewRedisClient(models.RedisConfig{
		Host: mr.Host(),
		Port: port,
	})
	require.NoError(t, err)
	t.Cleanup(func() { redisClient.Close() })

	repo := NewLocationRepository(&models.Config{}, sqlx.NewDb(db, "pgx"), redisClient)
	return repo, mock, mr
}

func TestListCities_CacheMissHitsPostgres(t *testing.T) {
	repo, mock, mr := setupLocationRepo(t)

	mock.ExpectQuery("SELECT city_id, name, region FROM cities").
		WillReturnRows(sqlmock.NewRows([]string{"city_id", "name", "region"}).
			AddRow(1, "Gulu", "Northern").
			AddRow(2, "Jinja", "Eastern").
			AddRow(3, "Kampala", "Central"))

	cities, err := repo.ListCities(context.Background())

	require.NoError(t, err)
	require.Len(t, cities, 3)
	assert.Equal(t, "Gulu", cities[0].Name)

	// The result lands in the cache
	cached, err := mr.Get(constants.KeyCityCache)
	require.NoError(t, err)
	assert.Contains(t, cached, "Kampala")
}

func TestListCities_CacheHitSkipsPostgres(t *testing.T) {
	repo, _, mr := setupLocationRepo(t)

	cached, err := json.Marshal([]models.City{{CityID: 1, Name: "Mbarara", Region: "Western"}})
	require.NoError(t, err)
	require.NoError(t, mr.Set(constants.KeyCityCache, string(cached)))

	cities, err := repo.ListCities(context.Background())

	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "Mbarara", cities[0].Name)
}

func TestRecentLocations_NewestFirstAndCapped(t *testing.T) {
	repo, _, _ := setupLocationRepo(t)

	userID := uuid.New()
	ctx := context.Background()

	for i := 0; i < constants.MaxRecentLocations+3; i++ {
		err := repo.AddRecentLocation(ctx, userID, models.RecentLocation{
			Point: models.LocationPoint{
				// Spread points out so none dedup against each other
				Latitude:  0.3 + float64(i)*0.05,
				Longitude: 32.5 + float64(i)*0.05,
				Address:   "Stop " + strconv.Itoa(i),
			},
			SearchedAt: time.Now(),
		})
		require.NoError(t, err)
	}

	recents, err := repo.GetRecentLocations(ctx, userID)

	require.NoError(t, err)
	require.Len(t, recents, constants.MaxRecentLocations)
	// Most recent write comes back first
	assert.Equal(t, "Stop 12", recents[0].Point.Address)
}

func TestAddRecentLocation_DedupsSamePlace(t *testing.T) {
	repo, _, _ := setupLocationRepo(t)

	userID := uuid.New()
	ctx := context.Background()

	// Two searches a few meters apart at the old taxi park
	first := models.LocationPoint{Latitude: 0.31286, Longitude: 32.57617, Address: "Old Taxi Park"}
	second := models.LocationPoint{Latitude: 0.31287, Longitude: 32.57618, Address: "Old Taxi Park, Kampala"}
	elsewhere := models.LocationPoint{Latitude: 0.44262, Longitude: 33.20317, Address: "Jinja Bridge"}

	require.NoError(t, repo.AddRecentLocation(ctx, userID, models.RecentLocation{Point: first, SearchedAt: time.Now()}))
	require.NoError(t, repo.AddRecentLocation(ctx, userID, models.RecentLocation{Point: elsewhere, SearchedAt: time.Now()}))
	require.NoError(t, repo.AddRecentLocation(ctx, userID, models.RecentLocation{Point: second, SearchedAt: time.Now()}))

	recents, err := repo.GetRecentLocations(ctx, userID)

	require.NoError(t, err)
	require.Len(t, recents, 2)
	assert.Equal(t, "Old Taxi Park, Kampala", recents[0].Point.Address)
	assert.Equal(t, "Jinja Bridge", recents[1].Point.Address)
}

func TestGetRecentLocations_EmptyForNewUser(t *testing.T) {
	repo, _, _ := setupLocationRepo(t)

	recents, err := repo.GetRecentLocations(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Empty(t, recents)
	assert.NotNil(t, recents)
}
