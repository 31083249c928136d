package constants

// Redis key formats
const (
	// Locations Service
	KeyRecentLocations = "user:recent-locations:%s" // Format: user:recent-locations:{user_id}
	KeyCityCache       = "cities:all"

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)

// MaxRecentLocations caps the per-user recent locations list.
const MaxRecentLocations = 10
