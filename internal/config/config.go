package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// Values come from the yaml file and can be overridden by environment variables.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
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
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigin is sent as Access-Control-Allow-Origin
		AllowedOrigin string `env:"HTTP_ALLOWED_ORIGIN" env-default:"*" yaml:"allowedOrigin"`
		// PprofEnabled mounts the pprof handlers under /debug/pprof/
		PprofEnabled bool `env:"HTTP_PPROF_ENABLED" env-default:"false" yaml:"pprofEnabled"`
	} `yaml:"http"`

	// Upstream describes the catalog API categories and items are read from
	Upstream struct {
		// BaseURL is the root of the catalog API
		BaseURL string `env:"UPSTREAM_BASE_URL" env-default:"http://localhost:8000/api" yaml:"baseURL"`
		// CategoriesPath is the categories resource relative to BaseURL
		CategoriesPath string `env:"UPSTREAM_CATEGORIES_PATH" env-default:"/categories" yaml:"categoriesPath"`
		// ItemsPath is the items (calculators) resource relative to BaseURL
		ItemsPath string `env:"UPSTREAM_ITEMS_PATH" env-default:"/calculators" yaml:"itemsPath"`
		// Timeout bounds every single upstream HTTP request
		Timeout time.Duration `env:"UPSTREAM_TIMEOUT" env-default:"10s" yaml:"timeout"`
		// UserAgent is sent with upstream requests
		UserAgent string `env:"UPSTREAM_USER_AGENT" env-default:"browse/1.0" yaml:"userAgent"`
		// MaxIdleConnsPerHost sizes the keep-alive pool towards the upstream
		MaxIdleConnsPerHost int `env:"UPSTREAM_MAX_IDLE_CONNS_PER_HOST" env-default:"10" yaml:"maxIdleConnsPerHost"`
	} `yaml:"upstream"`

	// Aggregator contains settings of the category aggregation
	Aggregator struct {
		// FetchTimeout bounds both upstream requests of one aggregation; it must be
		// positive and shorter than http.requestTimeout so category routes degrade
		// to an empty list before the request is cut off
		FetchTimeout time.Duration `env:"AGGREGATOR_FETCH_TIMEOUT" env-default:"15s" yaml:"fetchTimeout"`
		// Sequential issues the upstream requests one after the other instead of concurrently
		Sequential bool `env:"AGGREGATOR_SEQUENTIAL" env-default:"false" yaml:"sequential"`
	} `yaml:"aggregator"`

	// Tracing configures OTLP span export
	Tracing struct {
		// Endpoint is the OTLP/HTTP collector URL; tracing is off when empty
		Endpoint string `env:"TRACING_ENDPOINT" yaml:"endpoint"`
		// ServiceName is reported as service.name
		ServiceName string `env:"TRACING_SERVICE_NAME" env-default:"browse" yaml:"serviceName"`
		// SampleRatio is the fraction of root spans sampled
		SampleRatio float64 `env:"TRACING_SAMPLE_RATIO" env-default:"1" yaml:"sampleRatio"`
	} `yaml:"tracing"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks settings that depend on each other.
func (c *Config) Validate() error {
	fetch, request := c.Aggregator.FetchTimeout, c.HTTP.RequestTimeout
	if fetch <= 0 {
		return fmt.Errorf("aggregator.fetchTimeout must be positive, got %s", fetch)
	}
	if request > 0 && fetch >= request {
		return fmt.Errorf("aggregator.fetchTimeout (%s) must be shorter than http.requestTimeout (%s)", fetch, request)
	}

	return nil
}
