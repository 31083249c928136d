package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mmcloughlin/geohash"
	"github.com/twende/twende/internal/pkg/constants"
	"github.com/twende/twende/internal/pkg/database"
	"github.com/twende/twende/internal/pkg/logger"
	"github.com/twende/twende/internal/pkg/models"
)

const (
	// cityCacheTTL bounds staleness of the city reference data
	cityCacheTTL = 12 * time.Hour

	// dedupPrecision is the geohash length used to treat two nearby
	// searches as the same place. 7 characters is roughly a 150m cell.
	dedupPrecision = 7

	recentLocationTTL = 30 * 24 * time.Hour
)

// LocationRepo serves city reference data from Postgres with a Redis
// cache, and keeps per-user recent locations in Redis lists.
type LocationRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *LocationRepo {
	return &LocationRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// ListCities returns the city reference data. Cache misses fall through
// to Postgres and repopulate the cache.
func (r *LocationRepo) ListCities(ctx context.Context) ([]models.City, error) {
	cached, err := r.redisClient.Get(ctx, constants.KeyCityCache)
	if err == nil && cached != "" {
		var cities []models.City
		if err := json.Unmarshal([]byte(cached), &cities); err == nil {
			return cities, nil
		}
		// Unreadable cache entries are repopulated below
		logger.Warn("Discarding corrupt city cache entry")
	}

	cities := []models.City{}
	query := `SELECT city_id, name, region FROM cities ORDER BY name ASC`
	if err := r.db.SelectContext(ctx, &cities, query); err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}

	if data, err := json.Marshal(cities); err == nil {
		if err := r.redisClient.Set(ctx, constants.KeyCityCache, data, cityCacheTTL); err != nil {
			logger.Warn("Failed to cache city list", logger.Err(err))
		}
	}

	return cities, nil
}

// AddRecentLocation prepends the location to the user's recents.
// Earlier entries within the same geohash cell are dropped so the list
// holds distinct places, and the list is capped.
func (r *LocationRepo) AddRecentLocation(ctx context.Context, userID uuid.UUID, location models.RecentLocation) error {
	key := fmt.Sprintf(constants.KeyRecentLocations, userID.String())
	client := r.redisClient.GetClient()

	newCell := geohash.EncodeWithPrecision(location.Point.Latitude, location.Point.Longitude, dedupPrecision)

	existing, err := client.LRange(ctx, key, 0, -1).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("failed to read recent locations: %w", err)
	}

	pipe := client.TxPipeline()
	pipe.Del(ctx, key)

	entry, err := json.Marshal(location)
	if err != nil {
		return fmt.Errorf("failed to marshal recent location: %w", err)
	}
	pipe.RPush(ctx, key, entry)

	for _, raw := range existing {
		var prev models.RecentLocation
		if err := json.Unmarshal([]byte(raw), &prev); err != nil {
			continue
		}
		cell := geohash.EncodeWithPrecision(prev.Point.Latitude, prev.Point.Longitude, dedupPrecision)
		if cell == newCell {
			continue
		}
		pipe.RPush(ctx, key, raw)
	}

	pipe.LTrim(ctx, key, 0, constants.MaxRecentLocations-1)
	pipe.Expire(ctx, key, recentLocationTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store recent location: %w", err)
	}

	return nil
}

// GetRecentLocations returns the user's recents, newest first
func (r *LocationRepo) GetRecentLocations(ctx context.Context, userID uuid.UUID) ([]models.RecentLocation, error) {
	key := fmt.Sprintf(constants.KeyRecentLocations, userID.String())

	raw, err := r.redisClient.GetClient().LRange(ctx, key, 0, constants.MaxRecentLocations-1).Result()
	if err != nil {
		if err == redis.Nil {
			return []models.RecentLocation{}, nil
		}
		return nil, fmt.Errorf("failed to read recent locations: %w", err)
	}

	recents := make([]models.RecentLocation, 0, len(raw))
	for _, item := range raw {
		var loc models.RecentLocation
		if err := json.Unmarshal([]byte(item), &loc); err != nil {
			logger.Warn("Skipping corrupt recent location entry",
				logger.String("user_id", userID.String()))
			continue
		}
		recents = append(recents, loc)
	}

	return recents, nil
}
