package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"vizoshop/internal/adapters/out/gatewayclient"
	"vizoshop/internal/adapters/out/partnerapi"
	"vizoshop/internal/pkg/errs"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort        = "8080"
	defaultGatewayHTTPPort = "8081"
	defaultOriginRegion    = "Alger"
	defaultPartnerName     = "yalidine"
	defaultGatewayTimeout  = 10 * time.Second
	defaultPartnerTimeout  = 15 * time.Second
	defaultIdempotencyTTL  = 24 * time.Hour
	defaultPurgeSchedule   = "0 */10 * * * *"
)

// Getenv reads one variable; os.Getenv in production.
type Getenv func(key string) string

// LoadEnvFile loads variables from dotenv files without overriding the
// environment. A missing file is not an error.
func LoadEnvFile(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SslMode  string
}

// DSN is the libpq keyword/value form accepted by the gorm postgres driver.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SslMode)
}

func (c DBConfig) validate() error {
	return errors.Join(
		required("DB_HOST", c.Host),
		required("DB_PORT", c.Port),
		required("DB_USER", c.User),
		required("DB_NAME", c.Name),
	)
}

// Config is the storefront configuration.
type Config struct {
	HTTPPort         string
	DB               DBConfig
	JWTSecret        string
	GatewayEndpoints []gatewayclient.Endpoint
	OriginRegion     string
	ProbeSchedule    string
}

// LoadConfig reads the storefront options. Invalid values fail; missing
// optional ones take their defaults.
func LoadConfig(getenv Getenv) (Config, error) {
	timeout, timeoutErr := duration(getenv, "GATEWAY_TIMEOUT", defaultGatewayTimeout)

	cfg := Config{
		HTTPPort:      orDefault(getenv("HTTP_PORT"), defaultHTTPPort),
		DB:            loadDBConfig(getenv),
		JWTSecret:     strings.TrimSpace(getenv("JWT_SECRET")),
		OriginRegion:  orDefault(getenv("ORIGIN_REGION"), defaultOriginRegion),
		ProbeSchedule: strings.TrimSpace(getenv("GATEWAY_PROBE_SCHEDULE")),
	}

	var endpointsErr error
	if timeoutErr == nil {
		cfg.GatewayEndpoints, endpointsErr = gatewayclient.ParseEndpoints(getenv("GATEWAY_ENDPOINTS"), timeout)
	}

	if err := errors.Join(
		timeoutErr,
		endpointsErr,
		cfg.DB.validate(),
		required("JWT_SECRET", cfg.JWTSecret),
	); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// GatewayConfig is the delivery partner gateway configuration. Partner
// credentials only ever come from here.
type GatewayConfig struct {
	HTTPPort            string
	PartnerName         string
	Partner             partnerapi.Config
	OriginRegion        string
	AllowedOrigins      []string
	RedisAddr           string
	IdempotencyTTL      time.Duration
	LedgerPurgeSchedule string
}

func LoadGatewayConfig(getenv Getenv) (GatewayConfig, error) {
	partnerTimeout, partnerTimeoutErr := duration(getenv, "PARTNER_TIMEOUT", defaultPartnerTimeout)
	ttl, ttlErr := duration(getenv, "IDEMPOTENCY_TTL", defaultIdempotencyTTL)

	cfg := GatewayConfig{
		HTTPPort:    orDefault(getenv("GATEWAY_HTTP_PORT"), defaultGatewayHTTPPort),
		PartnerName: strings.ToLower(orDefault(getenv("PARTNER_NAME"), defaultPartnerName)),
		Partner: partnerapi.Config{
			URL:       strings.TrimSpace(getenv("PARTNER_API_URL")),
			APIKey:    strings.TrimSpace(getenv("PARTNER_API_KEY")),
			APISecret: strings.TrimSpace(getenv("PARTNER_API_SECRET")),
			Timeout:   partnerTimeout,
		},
		OriginRegion:        orDefault(getenv("ORIGIN_REGION"), defaultOriginRegion),
		AllowedOrigins:      list(getenv("ALLOWED_ORIGINS")),
		RedisAddr:           strings.TrimSpace(getenv("REDIS_ADDR")),
		IdempotencyTTL:      ttl,
		LedgerPurgeSchedule: orDefault(getenv("LEDGER_PURGE_SCHEDULE"), defaultPurgeSchedule),
	}

	var partnerErr error
	if partnerTimeoutErr == nil {
		partnerErr = cfg.Partner.Validate()
	}

	if err := errors.Join(partnerTimeoutErr, ttlErr, partnerErr); err != nil {
		return GatewayConfig{}, err
	}
	return cfg, nil
}

func loadDBConfig(getenv Getenv) DBConfig {
	return DBConfig{
		Host:     strings.TrimSpace(getenv("DB_HOST")),
		Port:     strings.TrimSpace(getenv("DB_PORT")),
		User:     strings.TrimSpace(getenv("DB_USER")),
		Password: getenv("DB_PASSWORD"),
		Name:     strings.TrimSpace(getenv("DB_NAME")),
		SslMode:  orDefault(getenv("DB_SSLMODE"), "disable"),
	}
}

func duration(getenv Getenv, key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	if d <= 0 {
		return 0, errs.NewValueIsOutOfRangeError(key, d, "1ns", "unbounded")
	}
	return d, nil
}

func required(key, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(key)
	}
	return nil
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

func list(value string) []string {
	out := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
