package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Directory DirectoryConfig
	Session   SessionConfig
	Logger    LoggerConfig
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

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// DirectoryConfig contains settings for the external Directory Service,
// the spreadsheet-backed scripting endpoint that owns all persistence.
type DirectoryConfig struct {
	URL       string
	Transport string // "query" (GET with action/data params) or "json" (POST function/parameters)
	TimeoutMs int
	Mock      bool // serve built-in fixtures instead of calling out
}

// SessionConfig contains session store configuration
type SessionConfig struct {
	Store string // "redis" or "memory"
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
