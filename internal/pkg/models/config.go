package models

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Dispatch DispatchConfig
	Presence PresenceConfig
	Rides    RidesConfig
	Logger   LoggerConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig holds PostgreSQL configuration
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

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig holds NATS configuration
type NATSConfig struct {
	URL string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// DispatchConfig holds dispatch round policy knobs
type DispatchConfig struct {
	SearchRadiusMiles float64
	MaxCandidates     int
	RoundTimeoutSec   int
}

// PresenceConfig holds driver presence policy knobs
type PresenceConfig struct {
	FreshnessWindowSec int
}

// RidesConfig holds ride lifecycle policy knobs
type RidesConfig struct {
	RatePerMileUSD float64
	// DisconnectGraceSec controls whether a driver disconnect mid-ride
	// escalates to cancellation. Zero disables auto-cancellation.
	DisconnectGraceSec int
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
