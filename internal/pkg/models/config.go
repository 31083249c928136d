package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Payment  PaymentConfig
	Bookings BookingsConfig
	Geocode  GeocodeConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// PaymentConfig contains mobile money gateway configuration
type PaymentConfig struct {
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
}

// BookingsConfig contains bookings service specific configuration
type BookingsConfig struct {
	// AutoConfirm transitions a booking to confirmed immediately after
	// payment instead of waiting for explicit driver acceptance.
	AutoConfirm bool
	// PendingTTLMinutes is how long a booking may stay pending before
	// the expiry sweeper cancels it.
	PendingTTLMinutes int
	// SweepIntervalSeconds is how often the expiry sweeper runs.
	SweepIntervalSeconds int
}

// GeocodeConfig contains geocoding service configuration
type GeocodeConfig struct {
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
}

// NewRelicConfig contains New Relic observability configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
