package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress string

	// Storage selection. The orders collection is a single JSON blob kept
	// under OrdersKey in one of the supported backends.
	StorageBackend string
	StorageFile    string
	DatabaseURI    string
	RedisAddr      string
	OrdersKey      string

	// Eligibility windows and normalization defaults.
	CancelWindow          time.Duration
	ReturnWindow          time.Duration
	FreeCancelWindow      time.Duration
	StatusInferenceWindow time.Duration
	DeliveryEstimate      time.Duration
	FreeShippingThreshold float64
	FlatShippingFee       float64

	// Workflow behaviour.
	ConfirmationPhrase string
	CancelLatency      time.Duration
	RefreshInterval    time.Duration
	ShutdownTimeout    time.Duration
}

// Supported storage backends.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

const (
	defaultRunAddress            = ":8080"
	defaultStorageBackend        = BackendFile
	defaultStorageFile           = "orderdesk_orders.json"
	defaultOrdersKey             = "orderdesk:orders"
	defaultCancelWindow          = 24 * time.Hour
	defaultReturnWindow          = 30 * 24 * time.Hour
	defaultFreeCancelWindow      = time.Hour
	defaultStatusInferenceWindow = 48 * time.Hour
	defaultDeliveryEstimate      = 5 * 24 * time.Hour
	defaultFreeShippingThreshold = 100.0
	defaultFlatShippingFee       = 9.99
	defaultConfirmationPhrase    = "CANCEL"
	defaultCancelLatency         = 1500 * time.Millisecond
	defaultRefreshInterval       = time.Minute
	defaultShutdownTimeout       = 10 * time.Second
)

// Load parses configuration from flags and environment variables. A .env file
// in the working directory is honoured when present.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:            getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		StorageBackend:        getString(lookup, "STORAGE_BACKEND", defaultStorageBackend),
		StorageFile:           getString(lookup, "STORAGE_FILE", defaultStorageFile),
		DatabaseURI:           getString(lookup, "DATABASE_URI", ""),
		RedisAddr:             getString(lookup, "REDIS_ADDR", ""),
		OrdersKey:             getString(lookup, "ORDERS_KEY", defaultOrdersKey),
		CancelWindow:          getDuration(lookup, "CANCEL_WINDOW", defaultCancelWindow),
		ReturnWindow:          getDuration(lookup, "RETURN_WINDOW", defaultReturnWindow),
		FreeCancelWindow:      getDuration(lookup, "FREE_CANCEL_WINDOW", defaultFreeCancelWindow),
		StatusInferenceWindow: getDuration(lookup, "STATUS_INFERENCE_WINDOW", defaultStatusInferenceWindow),
		DeliveryEstimate:      getDuration(lookup, "DELIVERY_ESTIMATE", defaultDeliveryEstimate),
		FreeShippingThreshold: getFloat(lookup, "FREE_SHIPPING_THRESHOLD", defaultFreeShippingThreshold),
		FlatShippingFee:       getFloat(lookup, "FLAT_SHIPPING_FEE", defaultFlatShippingFee),
		ConfirmationPhrase:    getString(lookup, "CONFIRMATION_PHRASE", defaultConfirmationPhrase),
		CancelLatency:         getDuration(lookup, "CANCEL_LATENCY", defaultCancelLatency),
		RefreshInterval:       getDuration(lookup, "REFRESH_INTERVAL", defaultRefreshInterval),
		ShutdownTimeout:       getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("orderdesk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		cancelLatencyStr   = cfg.CancelLatency.String()
		refreshIntervalStr = cfg.RefreshInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "Blob storage backend: file, postgres or redis")
	fs.StringVar(&cfg.StorageFile, "f", cfg.StorageFile, "Path to the orders blob for the file backend")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN for the postgres backend")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "Redis address for the redis backend")
	fs.StringVar(&cfg.OrdersKey, "orders-key", cfg.OrdersKey, "Storage key of the orders collection blob")
	fs.StringVar(&cfg.ConfirmationPhrase, "confirmation-phrase", cfg.ConfirmationPhrase, "Phrase required to confirm a cancellation")
	fs.StringVar(&cancelLatencyStr, "cancel-latency", cancelLatencyStr, "Simulated latency applied to cancellations")
	fs.StringVar(&refreshIntervalStr, "refresh-interval", refreshIntervalStr, "Interval between eligibility flag refreshes")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.CancelLatency, err = time.ParseDuration(cancelLatencyStr); err != nil {
		return nil, fmt.Errorf("invalid cancel latency: %w", err)
	}

	if cfg.RefreshInterval, err = time.ParseDuration(refreshIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid refresh interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if phraseFile, ok := lookup("CONFIRMATION_PHRASE_FILE"); ok && phraseFile != "" {
		content, err := os.ReadFile(phraseFile)
		if err != nil {
			return nil, fmt.Errorf("read confirmation phrase file: %w", err)
		}
		cfg.ConfirmationPhrase = string(content)
	}

	if cfg.CancelWindow <= 0 {
		cfg.CancelWindow = defaultCancelWindow
	}
	if cfg.ReturnWindow <= 0 {
		cfg.ReturnWindow = defaultReturnWindow
	}
	if cfg.FreeCancelWindow <= 0 {
		cfg.FreeCancelWindow = defaultFreeCancelWindow
	}
	if cfg.StatusInferenceWindow <= 0 {
		cfg.StatusInferenceWindow = defaultStatusInferenceWindow
	}
	if cfg.DeliveryEstimate <= 0 {
		cfg.DeliveryEstimate = defaultDeliveryEstimate
	}
	if cfg.CancelLatency < 0 {
		cfg.CancelLatency = defaultCancelLatency
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = defaultRefreshInterval
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	switch cfg.StorageBackend {
	case BackendFile:
		if cfg.StorageFile == "" {
			return nil, fmt.Errorf("storage file path must be provided")
		}
	case BackendPostgres:
		if cfg.DatabaseURI == "" {
			return nil, fmt.Errorf("database URI must be provided for postgres backend")
		}
	case BackendRedis:
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("redis address must be provided for redis backend")
		}
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	if cfg.ConfirmationPhrase == "" {
		return nil, fmt.Errorf("confirmation phrase must not be empty")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getFloat(lookup envLookup, key string, def float64) float64 {
	if v, ok := lookup(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
