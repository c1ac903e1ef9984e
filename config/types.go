package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=0"`
}

// FleetAPIConfig contains fleet provider API configuration
type FleetAPIConfig struct {
	BaseURL   string `yaml:"baseURL" validate:"omitempty,url"`
	APIKey    string `yaml:"api_key"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
}

// EventsAPIConfig contains the auxiliary events API configuration
type EventsAPIConfig struct {
	BaseURL   string `yaml:"baseURL" validate:"omitempty,url"`
	UserID    string `yaml:"user_id"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
}

// CacheConfig contains the vehicle-list cache configuration. An empty
// redisAddr selects the in-memory backend.
type CacheConfig struct {
	TTLSeconds int    `yaml:"ttlSeconds" validate:"gte=0"`
	RedisAddr  string `yaml:"redisAddr"`
}

// DisplayConfig contains presentation configuration
type DisplayConfig struct {
	Timezone string `yaml:"timezone"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server    ServerConfig    `yaml:"server"`
	FleetAPI  FleetAPIConfig  `yaml:"fleetAPI"`
	EventsAPI EventsAPIConfig `yaml:"eventsAPI"`
	Cache     CacheConfig     `yaml:"cache"`
	Display   DisplayConfig   `yaml:"display"`
}
