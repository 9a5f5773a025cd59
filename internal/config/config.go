package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure. It contains
// settings for the environment, the operational HTTP server, the database
// connection, the blocklist feed, the abuse checker and graceful shutdown.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains the operational HTTP server configuration (metrics, health, pprof, queue UI)
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"phishguard" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Feed configures the phishing-domain blocklist feed ingestion
	Feed struct {
		// URL is the feed endpoint returning a JSON array of hosts
		URL string `env:"FEED_URL" env-default:"http://api.phish.surf:5000/gimme-domains" yaml:"url"`
		// Interval is how often a fetch-and-merge cycle runs
		Interval time.Duration `env:"FEED_INTERVAL" env-default:"5m" yaml:"interval"`
		// ReadTimeout bounds a single fetch, distinct from the connect timeout
		ReadTimeout time.Duration `env:"FEED_READ_TIMEOUT" env-default:"10s" yaml:"readTimeout"`
		// ConnectTimeout bounds establishing the TCP connection to the feed
		ConnectTimeout time.Duration `env:"FEED_CONNECT_TIMEOUT" env-default:"5s" yaml:"connectTimeout"`
	} `yaml:"feed"`

	// Checker configures the abuse verdict engine and the similarity service client
	Checker struct {
		// ServiceURL is the base URL of the image similarity service
		ServiceURL string `env:"CHECKER_SERVICE_URL" env-default:"http://localhost:8081" yaml:"serviceUrl"`
		// RequestTimeout bounds a single similarity service call
		RequestTimeout time.Duration `env:"CHECKER_REQUEST_TIMEOUT" env-default:"15s" yaml:"requestTimeout"`
		// PhashThreshold is the maximum phash distance treated as an avatar match
		PhashThreshold int `env:"CHECKER_PHASH_THRESHOLD" env-default:"5" yaml:"phashThreshold"`
		// AvatarSize is the pixel size requested when resolving avatar URLs
		AvatarSize int `env:"CHECKER_AVATAR_SIZE" env-default:"4096" yaml:"avatarSize"`
	} `yaml:"checker"`

	// Worker configures the background job workers
	Worker struct {
		// MaxWorkers is the maximum number of member-check jobs processed concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"100" yaml:"maxWorkers"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing work to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
